// Package metrics holds constructors for the service's Prometheus collectors.
// Registration happens in the composition root.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a counter of HTTP requests rejected by rate limiting.
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewGatewayRetriesTotal returns a counter of retry attempts performed by outbound gateways.
func NewGatewayRetriesTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_retries_total",
		Help: "Total number of retry attempts performed by gateways",
	}, []string{"gateway"})
}

// NewBoardMovesTotal returns a counter of board drag-and-drop outcomes
// (moved, noop, reverted).
func NewBoardMovesTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "board_moves_total",
		Help: "Total number of board card moves by outcome",
	}, []string{"outcome"})
}

// NewGeocodeRequestsTotal returns a counter of geocoder lookups by outcome
// (hit, fallback, miss, error).
func NewGeocodeRequestsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "geocode_requests_total",
		Help: "Total number of geocoding lookups by outcome",
	}, []string{"outcome"})
}

// NewChangefeedEventsTotal returns a counter of changefeed notifications by table.
func NewChangefeedEventsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "changefeed_events_total",
		Help: "Total number of table change notifications received",
	}, []string{"table", "op"})
}

// HTTP holds the request collectors used by the observability middleware.
type HTTP struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewHTTP returns request count and latency collectors labelled by method,
// route pattern and status.
func NewHTTP() HTTP {
	labels := []string{"method", "path", "status"}
	return HTTP{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, labels),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, labels),
	}
}

// Collectors lists the collectors for registration.
func (h HTTP) Collectors() []prometheus.Collector {
	return []prometheus.Collector{h.Requests, h.Duration}
}
