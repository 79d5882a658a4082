// Package retry runs outbound gateway calls with capped exponential backoff.
package retry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"logistics-backoffice/internal/logx"
)

type counter interface {
	Inc()
}

// Config describes the retry behavior.
type Config struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// StatusError is a non-2xx response from an upstream HTTP service.
type StatusError struct {
	Service string
	Code    int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d %s", e.Service, e.Code, http.StatusText(e.Code))
}

// Policy retries retryable errors.
type Policy struct {
	name    string
	cfg     Config
	logger  logx.Logger
	retries counter
}

// NewPolicy creates a Policy. name labels log entries. retries may be nil.
func NewPolicy(name string, cfg Config, logger logx.Logger, retries counter) *Policy {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Policy{name: name, cfg: cfg, logger: logger, retries: retries}
}

// Do calls fn until it succeeds, fails with a non-retryable error, the
// attempts are exhausted or ctx is done. It returns the last error.
func (p *Policy) Do(ctx context.Context, op string, fn func(context.Context) error) error {
	var lastErr error
	for attempt := 1; attempt <= p.cfg.MaxAttempts; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err
		if ctx.Err() != nil || attempt == p.cfg.MaxAttempts || !IsRetryable(err) {
			break
		}
		delay := Backoff(p.cfg.BaseDelay, p.cfg.MaxDelay, attempt)
		if p.retries != nil {
			p.retries.Inc()
		}
		p.logger.Warn("gateway retry",
			logx.String("gateway", p.name),
			logx.String("method", op),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !sleepWithContext(ctx, delay) {
			break
		}
	}
	return lastErr
}

// IsRetryable reports whether err is worth another attempt: throttling,
// upstream 5xx, timeouts and dropped connections.
func IsRetryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code == http.StatusTooManyRequests || se.Code >= http.StatusInternalServerError
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF)
}

// Backoff is base doubled per attempt, capped at max.
func Backoff(base, max time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if attempt > 30 {
		return max
	}
	d := base << (attempt - 1)
	if d > max || d < 0 {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
