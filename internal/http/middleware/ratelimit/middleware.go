package ratelimit

import (
	"io"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"logistics-backoffice/internal/auth"
	"logistics-backoffice/internal/logx"
)

// KeyFunc identifies the caller a bucket belongs to.
type KeyFunc func(r *http.Request) string

// ByClientIP keys requests by remote address. Run it after chi's RealIP.
func ByClientIP(r *http.Request) string { return clientIP(r) }

// ByAccount keys authenticated requests by account and falls back to the
// client address.
func ByAccount(r *http.Request) string {
	if id, ok := auth.ActorFrom(r.Context()); ok {
		return "account:" + id.String()
	}
	return clientIP(r)
}

// Middleware rejects callers over their budget with 429.
type Middleware struct {
	logger     logx.Logger
	counter    prometheus.Counter
	limiter    Limiter
	key        KeyFunc
	retryAfter string
}

// New creates a Middleware. A nil limiter allows everything; a nil key
// uses ByClientIP.
func New(logger logx.Logger, counter prometheus.Counter, limiter Limiter, key KeyFunc) *Middleware {
	if logger == nil {
		logger = logx.Nop()
	}
	if limiter == nil {
		limiter = Unlimited{}
	}
	if key == nil {
		key = ByClientIP
	}
	retry := 1
	if tb, ok := limiter.(*TokenBucket); ok {
		retry = tb.Config().RetryAfter()
	}
	return &Middleware{
		logger:     logger,
		counter:    counter,
		limiter:    limiter,
		key:        key,
		retryAfter: strconv.Itoa(retry),
	}
}

// Handler returns chi-style middleware.
func (m *Middleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := m.key(r)
			if m.limiter.Allow(key) {
				next.ServeHTTP(w, r)
				return
			}
			if m.counter != nil {
				m.counter.Inc()
			}
			m.logger.Warn("rate limit exceeded",
				logx.String("key", key),
				logx.String("method", r.Method),
				logx.String("path", r.URL.Path),
			)
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.Header().Set("Retry-After", m.retryAfter)
			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := io.WriteString(w, `{"error":"too many requests"}`); err != nil {
				m.logger.Debug("rate limit response write failed", logx.String("key", key), logx.Err(err))
			}
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
