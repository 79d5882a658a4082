package geocoding

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"logistics-backoffice/internal/domain"
	"logistics-backoffice/internal/gateway/retry"
	"logistics-backoffice/internal/logx"
)

type searcher interface {
	Search(ctx context.Context, q string) (*domain.Point, error)
}

type outcomeCounter interface {
	WithLabelValues(lvs ...string) prometheus.Counter
}

// Options configure a Geocoder.
type Options struct {
	// Country is appended to queries that do not mention it, e.g. "Brasil".
	Country string
	// Delay is the minimum gap between two upstream requests.
	Delay    time.Duration
	Policy   *retry.Policy
	Logger   logx.Logger
	Outcomes outcomeCounter
}

// Geocoder resolves addresses one request at a time with a fixed delay
// between upstream calls. Successful lookups are cached by address text.
type Geocoder struct {
	search searcher
	opts   Options

	mu    sync.Mutex
	last  time.Time
	cache map[string]domain.Point
	now   func() time.Time
}

// NewGeocoder creates a Geocoder over s.
func NewGeocoder(s searcher, opts Options) *Geocoder {
	if opts.Logger == nil {
		opts.Logger = logx.Nop()
	}
	if opts.Policy == nil {
		opts.Policy = retry.NewPolicy("geocoding", retry.Config{MaxAttempts: 1}, opts.Logger, nil)
	}
	return &Geocoder{search: s, opts: opts, cache: make(map[string]domain.Point), now: time.Now}
}

// Geocode returns the coordinate of address. When the full address has no
// match it retries with the trailing city/state segment. A nil point with
// a nil error means nothing matched.
func (g *Geocoder) Geocode(ctx context.Context, address string) (*domain.Point, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if p, ok := g.cache[address]; ok {
		return &p, nil
	}

	q := qualify(Normalize(address), g.opts.Country)
	p, err := g.lookup(ctx, q)
	if err != nil {
		g.count("error")
		g.opts.Logger.Warn("geocode failed", logx.String("address", address), logx.Err(err))
		return nil, err
	}
	if p != nil {
		g.count("hit")
		g.cache[address] = *p
		return p, nil
	}

	cityState, ok := coarse(address)
	if !ok {
		g.count("miss")
		return nil, nil
	}
	p, err = g.lookup(ctx, cityState)
	if err != nil {
		g.count("error")
		g.opts.Logger.Warn("geocode fallback failed", logx.String("address", address), logx.Err(err))
		return nil, err
	}
	if p == nil {
		g.count("miss")
		g.opts.Logger.Debug("geocode no match", logx.String("address", address))
		return nil, nil
	}
	g.count("fallback")
	g.opts.Logger.Info("geocode using city-level fallback",
		logx.String("address", address),
		logx.String("query", cityState),
	)
	g.cache[address] = *p
	return p, nil
}

// lookup waits out the delay since the previous request, then searches.
// Caller holds g.mu.
func (g *Geocoder) lookup(ctx context.Context, q string) (*domain.Point, error) {
	var p *domain.Point
	err := g.opts.Policy.Do(ctx, "Search", func(ctx context.Context) error {
		if err := g.throttle(ctx); err != nil {
			return err
		}
		var err error
		p, err = g.search.Search(ctx, q)
		return err
	})
	return p, err
}

func (g *Geocoder) throttle(ctx context.Context) error {
	if !g.last.IsZero() && g.opts.Delay > 0 {
		if wait := g.opts.Delay - g.now().Sub(g.last); wait > 0 {
			t := time.NewTimer(wait)
			defer t.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-t.C:
			}
		}
	}
	g.last = g.now()
	return nil
}

func (g *Geocoder) count(outcome string) {
	if g.opts.Outcomes != nil {
		g.opts.Outcomes.WithLabelValues(outcome).Inc()
	}
}
