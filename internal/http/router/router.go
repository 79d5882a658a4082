// Package router assembles the public HTTP API.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"logistics-backoffice/internal/http/handlers"
)

const requestTimeout = 10 * time.Second

// Deps are the handlers and middleware the router mounts. Nil middleware
// is skipped.
type Deps struct {
	Base       *handlers.Handlers
	Auth       *handlers.AuthHandler
	Customers  *handlers.CustomerHandler
	Couriers   *handlers.CourierHandler
	Deliveries *handlers.DeliveryHandler
	Board      *handlers.BoardHandler
	Dashboard  *handlers.DashboardHandler
	Tracking   *handlers.TrackingHandler

	Metrics       http.Handler
	Observability func(http.Handler) http.Handler
	RateLimit     func(http.Handler) http.Handler
	PostalLimit   func(http.Handler) http.Handler
	RequireAuth   func(http.Handler) http.Handler
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	use(r, d.Observability)
	r.Use(middleware.Recoverer)
	use(r, d.RateLimit)

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	if d.Metrics != nil {
		r.Handle("/metrics", d.Metrics)
	}
	r.NotFound(d.Base.NotFound)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))
		r.Post("/auth/register", d.Auth.Register)
		r.Post("/auth/login", d.Auth.Login)
	})

	r.Group(func(r chi.Router) {
		use(r, d.RequireAuth)

		// The event stream outlives any request timeout.
		r.Get("/tracking/stream", d.Tracking.Stream)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(requestTimeout))

			r.Route("/customers", func(r chi.Router) {
				r.Get("/", d.Customers.List)
				r.Post("/", d.Customers.Create)
				r.Get("/{id}", d.Customers.GetByID)
				r.Patch("/{id}", d.Customers.Update)
				r.Delete("/{id}", d.Customers.Delete)
			})
			r.Route("/couriers", func(r chi.Router) {
				r.Get("/", d.Couriers.List)
				r.Post("/", d.Couriers.Create)
				r.Get("/{id}", d.Couriers.GetByID)
				r.Patch("/{id}", d.Couriers.Update)
				r.Delete("/{id}", d.Couriers.Delete)
			})
			r.Route("/deliveries", func(r chi.Router) {
				r.Get("/", d.Deliveries.List)
				r.Post("/", d.Deliveries.Create)
				r.Get("/search", d.Deliveries.Search)
				r.Get("/{id}", d.Deliveries.GetByID)
				r.Patch("/{id}", d.Deliveries.Update)
				r.Delete("/{id}", d.Deliveries.Delete)
			})

			r.Get("/board", d.Board.Get)
			r.Post("/board/move", d.Board.Move)
			r.Get("/dashboard", d.Dashboard.Get)
			r.Get("/tracking", d.Tracking.Get)

			r.With(optional(d.PostalLimit)).Get("/postal/{code}", d.Customers.LookupPostal)
		})
	})

	return r
}

func use(r chi.Router, mw func(http.Handler) http.Handler) {
	if mw != nil {
		r.Use(mw)
	}
}

func optional(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	if mw == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return mw
}
