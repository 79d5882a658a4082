package app

import (
	"time"

	"logistics-backoffice/internal/config"
	"logistics-backoffice/internal/http/middleware/ratelimit"
	"logistics-backoffice/internal/logx"
)

// limits are the two request budgets: a per-client one applied to every
// route and a per-account one on postal lookups.
type limits struct {
	global *ratelimit.Middleware
	postal *ratelimit.Middleware

	globalBucket *ratelimit.TokenBucket
}

func (l *limits) buckets() int {
	if l.globalBucket == nil {
		return 0
	}
	return l.globalBucket.Len()
}

func newLimits(cfg *config.Config, logger logx.Logger, m *Metrics) *limits {
	return buildLimits(cfg.RateLimit, nil, logger, m)
}

func buildLimits(rl config.RateLimit, clock ratelimit.Clock, logger logx.Logger, m *Metrics) *limits {
	if !rl.Enabled {
		return &limits{
			global: ratelimit.New(logger, m.RateLimitExceeded, ratelimit.Unlimited{}, ratelimit.ByClientIP),
			postal: ratelimit.New(logger, m.RateLimitExceeded, ratelimit.Unlimited{}, ratelimit.ByAccount),
		}
	}

	global := ratelimit.NewTokenBucket(clock, ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	})
	var postal ratelimit.Limiter = ratelimit.Unlimited{}
	if rl.PostalPerMinute > 0 {
		postal = ratelimit.NewTokenBucket(clock, ratelimit.PerWindow(rl.PostalPerMinute, time.Minute, rl.TTL, rl.MaxBuckets))
	}
	return &limits{
		global:       ratelimit.New(logger, m.RateLimitExceeded, global, ratelimit.ByClientIP),
		postal:       ratelimit.New(logger, m.RateLimitExceeded, postal, ratelimit.ByAccount),
		globalBucket: global,
	}
}
