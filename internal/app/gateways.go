package app

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/dig"

	"logistics-backoffice/internal/config"
	"logistics-backoffice/internal/gateway/geocoding"
	"logistics-backoffice/internal/gateway/postal"
	"logistics-backoffice/internal/gateway/retry"
	"logistics-backoffice/internal/gateway/routing"
	"logistics-backoffice/internal/logx"
)

const gatewayTimeout = 10 * time.Second

// countryNames spell out country codes for free-text geocoding queries.
var countryNames = map[string]string{"br": "Brasil"}

type gatewayDeps struct {
	dig.In

	Config  *config.Config
	Logger  logx.Logger
	Metrics *Metrics
	Client  *http.Client
}

func (d gatewayDeps) policy(name string) *retry.Policy {
	g := d.Config.Gateway
	return retry.NewPolicy(name, retry.Config{
		MaxAttempts: g.MaxAttempts,
		BaseDelay:   g.BaseDelay,
		MaxDelay:    g.MaxDelay,
	}, d.Logger, d.Metrics.GatewayRetries.WithLabelValues(name))
}

func registerGateways(container *dig.Container) error {
	return provideAll(container,
		func() *http.Client { return &http.Client{Timeout: gatewayTimeout} },
		newGeocoder,
		newPostalLookup,
		newRouteClient,
	)
}

func newGeocoder(d gatewayDeps) (*geocoding.Geocoder, error) {
	gc := d.Config.Geocoder
	client, err := geocoding.NewClient(gc.URL, gc.Country, d.Client)
	if err != nil {
		return nil, err
	}
	return geocoding.NewGeocoder(client, geocoding.Options{
		Country:  countryNames[strings.ToLower(gc.Country)],
		Delay:    gc.Delay,
		Policy:   d.policy("geocoding"),
		Logger:   d.Logger,
		Outcomes: d.Metrics.GeocodeRequests,
	}), nil
}

func newPostalLookup(d gatewayDeps) (*postal.RetryingLookup, error) {
	client, err := postal.NewClient(d.Config.Postal.URL, d.Client)
	if err != nil {
		return nil, err
	}
	return postal.NewRetryingLookup(client, d.policy("postal")), nil
}

func newRouteClient(d gatewayDeps) *routing.Client {
	return routing.NewClient(d.Config.Routing.URL, d.Client, d.policy("routing"))
}
