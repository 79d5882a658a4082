package routing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"logistics-backoffice/internal/domain"
	"logistics-backoffice/internal/gateway/retry"
)

func TestRoute_Success(t *testing.T) {
	t.Parallel()

	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = w.Write([]byte(`{"code":"Ok","routes":[{"distance":12345.6,"duration":3900,
			"geometry":{"coordinates":[[-46.63,-23.55],[-46.70,-23.60]]}}]}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, srv.Client(), nil)
	r, err := c.Route(context.Background(), domain.Point{Lat: -23.55, Lng: -46.63}, domain.Point{Lat: -23.6, Lng: -46.7})
	require.NoError(t, err)
	require.Equal(t, "/route/v1/driving/-46.630000,-23.550000;-46.700000,-23.600000", path)
	require.Equal(t, []domain.Point{{Lat: -23.55, Lng: -46.63}, {Lat: -23.6, Lng: -46.7}}, r.Path)
	require.Equal(t, "12.3 km", r.DistanceLabel())
	require.Equal(t, "1h 5min", r.DurationLabel())
}

func TestRoute_NoRoute(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"NoRoute","message":"Impossible route"}`))
	}))
	t.Cleanup(srv.Close)

	_, err := NewClient(srv.URL, srv.Client(), nil).Route(context.Background(), domain.Point{}, domain.Point{Lat: 1})
	require.ErrorIs(t, err, ErrNoRoute)
}

func TestRoute_RetriesServerError(t *testing.T) {
	t.Parallel()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"code":"Ok","routes":[{"distance":500,"duration":120,"geometry":{"coordinates":[]}}]}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, srv.Client(), retry.NewPolicy("routing", retry.Config{MaxAttempts: 3}, nil, nil))
	r, err := c.Route(context.Background(), domain.Point{}, domain.Point{Lat: 1})
	require.NoError(t, err)
	require.Equal(t, int32(2), atomic.LoadInt32(&calls))
	require.Equal(t, 2*time.Minute, r.Duration)
	require.Equal(t, "2min", r.DurationLabel())
	require.Equal(t, "0.5 km", r.DistanceLabel())
}
