package app

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"logistics-backoffice/internal/metrics"
)

func TestProvideMetrics_Success_RegistersCollectors(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	out, err := provideMetrics(reg)
	require.NoError(t, err)
	require.NotNil(t, out.RateLimitExceeded)
	require.NotNil(t, out.GatewayRetries)
	require.NotNil(t, out.BoardMoves)
	require.NotNil(t, out.GeocodeRequests)
	require.NotNil(t, out.ChangefeedEvents)
	require.NotNil(t, out.HTTP.Requests)
	require.NotNil(t, out.HTTP.Duration)

	out.BoardMoves.WithLabelValues("moved").Inc()
	n, err := testutil.GatherAndCount(reg, "board_moves_total")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestProvideMetrics_AlreadyRegistered_ReturnsExistingCollectors(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	existingRL := metrics.NewRateLimitExceededTotal()
	existingGR := metrics.NewGatewayRetriesTotal()
	require.NoError(t, reg.Register(existingRL))
	require.NoError(t, reg.Register(existingGR))

	out, err := provideMetrics(reg)
	require.NoError(t, err)

	require.Same(t, existingRL, out.RateLimitExceeded)
	require.Same(t, existingGR, out.GatewayRetries)
}

type errRegisterer struct{ err error }

func (e errRegisterer) Register(prometheus.Collector) error  { return e.err }
func (e errRegisterer) MustRegister(...prometheus.Collector) {}
func (e errRegisterer) Unregister(prometheus.Collector) bool { return false }

func TestProvideMetrics_RegisterError(t *testing.T) {
	t.Parallel()

	_, err := provideMetrics(errRegisterer{err: errors.New("boom")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "register rate_limit_exceeded_total")
}

func TestNewRegistry_IncludesRuntimeCollectors(t *testing.T) {
	t.Parallel()

	reg, err := newRegistry()
	require.NoError(t, err)

	n, err := testutil.GatherAndCount(reg, "go_goroutines")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
