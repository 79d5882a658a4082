package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics-backoffice/internal/auth"
	"logistics-backoffice/internal/logx"
	"logistics-backoffice/internal/metrics"
)

type stubLimiter struct {
	allow bool
	keys  []string
}

func (s *stubLimiter) Allow(key string) bool {
	s.keys = append(s.keys, key)
	return s.allow
}

func TestMiddleware_AllowsRequest(t *testing.T) {
	t.Parallel()

	nextCalled := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		nextCalled++
		w.WriteHeader(http.StatusOK)
	})
	lim := &stubLimiter{allow: true}
	h := New(logx.Nop(), nil, lim, nil).Handler()(next)

	r := httptest.NewRequest(http.MethodGet, "http://example/test", nil)
	r.RemoteAddr = "1.2.3.4:5678"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, nextCalled)
	assert.Equal(t, []string{"1.2.3.4"}, lim.keys)
}

func TestMiddleware_BlocksWith429(t *testing.T) {
	t.Parallel()

	nextCalled := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { nextCalled++ })
	counter := metrics.NewRateLimitExceededTotal()
	lim := NewTokenBucket(nil, PerWindow(1, 30*time.Second, 0, 0))
	h := New(logx.Nop(), counter, lim, nil).Handler()(next)

	do := func() *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodGet, "http://example/test", nil)
		r.RemoteAddr = "1.2.3.4:5678"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w
	}
	do()
	w := do()

	require.Equal(t, 1, nextCalled)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "30", w.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"too many requests"}`, w.Body.String())
	assert.InDelta(t, 1, testutil.ToFloat64(counter), 0)
}

func TestByAccount(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "9.9.9.9:1"
	assert.Equal(t, "9.9.9.9", ByAccount(r))

	id := uuid.New()
	r = r.WithContext(auth.WithActor(r.Context(), id))
	assert.Equal(t, "account:"+id.String(), ByAccount(r))
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "http://example/", nil)
	r.RemoteAddr = "not-a-hostport"
	assert.Equal(t, "not-a-hostport", clientIP(r))

	r.RemoteAddr = ""
	assert.Equal(t, "unknown", clientIP(r))
}
