package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/dig"

	"logistics-backoffice/internal/auth"
	"logistics-backoffice/internal/board"
	"logistics-backoffice/internal/changefeed"
	"logistics-backoffice/internal/config"
	"logistics-backoffice/internal/dashboard"
	"logistics-backoffice/internal/http/admin"
	"logistics-backoffice/internal/http/handlers"
	"logistics-backoffice/internal/http/middleware"
	"logistics-backoffice/internal/http/router"
	"logistics-backoffice/internal/logx"
	"logistics-backoffice/internal/service/courier"
	"logistics-backoffice/internal/service/customer"
	"logistics-backoffice/internal/service/delivery"
	"logistics-backoffice/internal/tracking"
)

type routerIn struct {
	dig.In

	Logger   logx.Logger
	Metrics  *Metrics
	Gatherer prometheus.Gatherer
	Limits   *limits
	Auth     *auth.Service

	Base       *handlers.Handlers
	AuthH      *handlers.AuthHandler
	Customers  *handlers.CustomerHandler
	Couriers   *handlers.CourierHandler
	Deliveries *handlers.DeliveryHandler
	Board      *handlers.BoardHandler
	Dashboard  *handlers.DashboardHandler
	Tracking   *handlers.TrackingHandler
}

type adminOut struct {
	dig.Out

	Server *http.Server `name:"admin_server"`
}

func registerHTTP(container *dig.Container) error {
	return provideAll(container,
		handlers.New,
		func(l logx.Logger, s *auth.Service) *handlers.AuthHandler { return handlers.NewAuthHandler(l, s) },
		func(l logx.Logger, s *customer.Service) *handlers.CustomerHandler {
			return handlers.NewCustomerHandler(l, s)
		},
		func(l logx.Logger, s *courier.Service) *handlers.CourierHandler {
			return handlers.NewCourierHandler(l, s)
		},
		func(l logx.Logger, s *delivery.Service) *handlers.DeliveryHandler {
			return handlers.NewDeliveryHandler(l, s)
		},
		func(l logx.Logger, b *board.Board) *handlers.BoardHandler { return handlers.NewBoardHandler(l, b) },
		func(l logx.Logger, s *dashboard.Service) *handlers.DashboardHandler {
			return handlers.NewDashboardHandler(l, s)
		},
		func(l logx.Logger, t *tracking.Tracker) *handlers.TrackingHandler {
			return handlers.NewTrackingHandler(l, t)
		},
		newLimits,
		newHTTPHandler,
		newServer,
		newAdminServer,
	)
}

func newHTTPHandler(in routerIn) http.Handler {
	return router.New(router.Deps{
		Base:       in.Base,
		Auth:       in.AuthH,
		Customers:  in.Customers,
		Couriers:   in.Couriers,
		Deliveries: in.Deliveries,
		Board:      in.Board,
		Dashboard:  in.Dashboard,
		Tracking:   in.Tracking,

		Metrics:       promhttp.HandlerFor(in.Gatherer, promhttp.HandlerOpts{}),
		Observability: middleware.Observability(in.Logger, in.Metrics.HTTP),
		RateLimit:     in.Limits.global.Handler(),
		PostalLimit:   in.Limits.postal.Handler(),
		RequireAuth:   auth.Middleware(in.Auth, in.Logger),
	})
}

// newServer has no write timeout: the tracking stream holds its response
// open and every other route is bounded by the router's request timeout.
// Request contexts derive from ctx so open streams end on shutdown.
func newServer(ctx context.Context, cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func newAdminServer(
	cfg *config.Config,
	g prometheus.Gatherer,
	hub *changefeed.Hub,
	l *limits,
	deliveries *deliveryCollection,
) adminOut {
	if cfg.Admin.Port == 0 {
		return adminOut{}
	}
	gauges := map[string]admin.Gauge{
		"changefeed_subscribers": hub.Len,
		"ratelimit_buckets":      l.buckets,
		"deliveries_cached":      func() int { return len(deliveries.Snapshot()) },
	}
	return adminOut{Server: &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Admin.Port),
		Handler:           admin.Handler(admin.Credentials{User: cfg.Admin.User, Pass: cfg.Admin.Pass}, g, gauges),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		// pprof profiles run for up to 30s by default.
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}}
}
