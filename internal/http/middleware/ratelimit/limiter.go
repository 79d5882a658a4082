// Package ratelimit throttles HTTP requests with per-key token buckets.
package ratelimit

import (
	"math"
	"sync"
	"time"
)

// Limiter decides whether the caller identified by key may proceed.
type Limiter interface {
	Allow(key string) bool
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Unlimited allows everything. It stands in when limiting is disabled.
type Unlimited struct{}

// Allow always returns true.
func (Unlimited) Allow(string) bool { return true }

// Config stores TokenBucket settings.
type Config struct {
	Rate       float64       // tokens per second
	Burst      int           // bucket capacity
	TTL        time.Duration // idle buckets are evicted after this; 0 keeps them
	MaxBuckets int           // 0 means no cap; new keys are refused once reached
}

// PerWindow builds a Config allowing limit requests per window.
func PerWindow(limit int, window, ttl time.Duration, maxBuckets int) Config {
	if window <= 0 {
		window = time.Second
	}
	if limit <= 0 {
		limit = 1
	}
	return Config{
		Rate:       float64(limit) / window.Seconds(),
		Burst:      limit,
		TTL:        ttl,
		MaxBuckets: maxBuckets,
	}
}

// RetryAfter is the whole number of seconds until one token refills.
func (c Config) RetryAfter() int {
	if c.Rate <= 0 {
		return 1
	}
	return max(1, int(math.Ceil(1/c.Rate)))
}

// TokenBucket is a per-key token bucket limiter.
type TokenBucket struct {
	cfg   Config
	clock Clock

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

type bucket struct {
	tokens float64
	last   time.Time
}

// NewTokenBucket creates a limiter. A nil clock uses wall time.
func NewTokenBucket(clock Clock, cfg Config) *TokenBucket {
	if clock == nil {
		clock = realClock{}
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	cfg.MaxBuckets = max(cfg.MaxBuckets, 0)
	return &TokenBucket{cfg: cfg, clock: clock, buckets: make(map[string]*bucket)}
}

// Config returns the effective settings.
func (l *TokenBucket) Config() Config { return l.cfg }

// Allow takes one token from the bucket of key.
func (l *TokenBucket) Allow(key string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)
	b, ok := l.buckets[key]
	if !ok {
		if l.cfg.MaxBuckets > 0 && len(l.buckets) >= l.cfg.MaxBuckets {
			return false
		}
		b = &bucket{tokens: float64(l.cfg.Burst), last: now}
		l.buckets[key] = b
	}

	if dt := now.Sub(b.last); dt > 0 {
		b.tokens = min(float64(l.cfg.Burst), b.tokens+dt.Seconds()*l.cfg.Rate)
	}
	b.last = now
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// Len reports the number of tracked keys.
func (l *TokenBucket) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// sweep evicts idle buckets at most every max(TTL/2, 1m). l.mu must be held.
func (l *TokenBucket) sweep(now time.Time) {
	if l.cfg.TTL <= 0 {
		return
	}
	interval := max(l.cfg.TTL/2, time.Minute)
	if !l.lastSweep.IsZero() && now.Sub(l.lastSweep) < interval {
		return
	}
	l.lastSweep = now
	for k, b := range l.buckets {
		if now.Sub(b.last) > l.cfg.TTL {
			delete(l.buckets, k)
		}
	}
}
