// Package admin serves operator endpoints (pprof, metrics, runtime state)
// on a separate listener.
package admin

import (
	"crypto/subtle"
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Credentials protect the admin listener from non-loopback clients.
type Credentials struct {
	User string
	Pass string
}

// Gauge reports a point-in-time count for /debug/state.
type Gauge func() int

// Handler returns the admin router: /debug/pprof/*, /metrics from g and
// /debug/state with the current value of each gauge.
func Handler(creds Credentials, g prometheus.Gatherer, gauges map[string]Gauge) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(func(next http.Handler) http.Handler { return authOrLocalOnly(next, creds) })

	r.Mount("/debug", chimw.Profiler())
	r.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	r.Get("/state", func(w http.ResponseWriter, _ *http.Request) {
		out := make(map[string]int, len(gauges))
		for name, fn := range gauges {
			out[name] = fn()
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(out)
	})
	return r
}

func authOrLocalOnly(next http.Handler, creds Credentials) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isLoopback(r.RemoteAddr) {
			next.ServeHTTP(w, r)
			return
		}
		u, p, ok := r.BasicAuth()
		if creds.User == "" || creds.Pass == "" || !ok || !secureEq(u, creds.User) || !secureEq(p, creds.Pass) {
			w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func secureEq(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func isLoopback(remoteAddr string) bool {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	ip := net.ParseIP(strings.TrimSpace(host))
	return ip != nil && ip.IsLoopback()
}
