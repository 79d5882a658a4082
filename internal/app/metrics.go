package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/dig"

	"logistics-backoffice/internal/metrics"
)

// Metrics are the registered service collectors.
type Metrics struct {
	HTTP              metrics.HTTP
	RateLimitExceeded prometheus.Counter
	GatewayRetries    *prometheus.CounterVec
	BoardMoves        *prometheus.CounterVec
	GeocodeRequests   *prometheus.CounterVec
	ChangefeedEvents  *prometheus.CounterVec
}

func registerMetrics(container *dig.Container) error {
	return provideAll(container,
		newRegistry,
		func(r *prometheus.Registry) prometheus.Registerer { return r },
		func(r *prometheus.Registry) prometheus.Gatherer { return r },
		provideMetrics,
	)
}

func newRegistry() (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("register go collector: %w", err)
	}
	if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, fmt.Errorf("register process collector: %w", err)
	}
	return reg, nil
}

// register adds c to reg. When an equal collector is already registered the
// existing one is returned so counts keep accumulating in one place.
func register[C prometheus.Collector](reg prometheus.Registerer, name string, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}

func provideMetrics(reg prometheus.Registerer) (*Metrics, error) {
	var (
		m   Metrics
		err error
	)
	if m.RateLimitExceeded, err = register(reg, "rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal()); err != nil {
		return nil, err
	}
	if m.GatewayRetries, err = register(reg, "gateway_retries_total", metrics.NewGatewayRetriesTotal()); err != nil {
		return nil, err
	}
	if m.BoardMoves, err = register(reg, "board_moves_total", metrics.NewBoardMovesTotal()); err != nil {
		return nil, err
	}
	if m.GeocodeRequests, err = register(reg, "geocode_requests_total", metrics.NewGeocodeRequestsTotal()); err != nil {
		return nil, err
	}
	if m.ChangefeedEvents, err = register(reg, "changefeed_events_total", metrics.NewChangefeedEventsTotal()); err != nil {
		return nil, err
	}

	h := metrics.NewHTTP()
	if m.HTTP.Requests, err = register(reg, "http_requests_total", h.Requests); err != nil {
		return nil, err
	}
	if m.HTTP.Duration, err = register(reg, "http_request_duration_seconds", h.Duration); err != nil {
		return nil, err
	}
	return &m, nil
}
