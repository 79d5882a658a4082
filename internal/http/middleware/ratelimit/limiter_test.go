package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{now: t} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Add(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestTokenBucket_BurstThenBlocksThenRefills(t *testing.T) {
	t.Parallel()

	clk := newFakeClock(time.Unix(0, 0))
	l := NewTokenBucket(clk, Config{Rate: 1, Burst: 2})

	require.True(t, l.Allow("ip1"))
	require.True(t, l.Allow("ip1"))
	require.False(t, l.Allow("ip1"), "bucket empty")

	clk.Add(time.Second)
	require.True(t, l.Allow("ip1"), "one token refilled")
	require.False(t, l.Allow("ip1"))

	clk.Add(10 * time.Second)
	require.True(t, l.Allow("ip1"))
	require.True(t, l.Allow("ip1"))
	require.False(t, l.Allow("ip1"), "refill is capped by burst")
}

func TestTokenBucket_IsPerKey(t *testing.T) {
	t.Parallel()

	l := NewTokenBucket(newFakeClock(time.Unix(0, 0)), Config{Rate: 1, Burst: 1})

	require.True(t, l.Allow("keyA"))
	require.False(t, l.Allow("keyA"))
	require.True(t, l.Allow("keyB"))
	assert.Equal(t, 2, l.Len())
}

func TestTokenBucket_EvictsIdleBuckets(t *testing.T) {
	t.Parallel()

	clk := newFakeClock(time.Unix(0, 0))
	l := NewTokenBucket(clk, Config{Rate: 10, Burst: 1, TTL: 2 * time.Second})

	l.Allow("A")
	l.Allow("B")
	require.Equal(t, 2, l.Len())

	clk.Add(59 * time.Second)
	l.Allow("B")
	clk.Add(2 * time.Second)
	l.Allow("B")

	assert.Equal(t, 1, l.Len())
	_, kept := l.buckets["B"]
	assert.True(t, kept)
}

func TestTokenBucket_MaxBucketsRefusesNewKeys(t *testing.T) {
	t.Parallel()

	l := NewTokenBucket(newFakeClock(time.Unix(0, 0)), Config{Rate: 1, Burst: 5, MaxBuckets: 1})

	require.True(t, l.Allow("a"))
	assert.False(t, l.Allow("b"))
	assert.True(t, l.Allow("a"))
}

func TestPerWindow(t *testing.T) {
	t.Parallel()

	cfg := PerWindow(3, time.Second, 0, 0)
	l := NewTokenBucket(newFakeClock(time.Unix(0, 0)), cfg)
	for i := 1; i <= 3; i++ {
		require.True(t, l.Allow("k"), "allow #%d", i)
	}
	require.False(t, l.Allow("k"))
	assert.Equal(t, 1, cfg.RetryAfter())

	assert.Equal(t, 12, PerWindow(5, time.Minute, 0, 0).RetryAfter())
}
