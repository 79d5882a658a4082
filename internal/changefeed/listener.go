package changefeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"logistics-backoffice/internal/logx"
)

// Channel is the NOTIFY channel the table triggers publish on.
const Channel = "table_changes"

// Publisher receives decoded events.
type Publisher interface {
	Publish(Event)
}

// NotifyConn is the subset of *pgx.Conn used for LISTEN.
type NotifyConn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
	Close(ctx context.Context) error
}

// DialFunc opens a dedicated connection for LISTEN.
type DialFunc func(ctx context.Context) (NotifyConn, error)

// PGDialer returns a DialFunc connecting to dsn.
func PGDialer(dsn string) DialFunc {
	return func(ctx context.Context) (NotifyConn, error) {
		return pgx.Connect(ctx, dsn)
	}
}

// PGListener forwards PostgreSQL notifications into a Publisher and
// reconnects with exponential backoff until its context is done.
type PGListener struct {
	dial      DialFunc
	pub       Publisher
	logger    logx.Logger
	baseDelay time.Duration
	maxDelay  time.Duration
}

// NewPGListener creates a listener.
func NewPGListener(dial DialFunc, pub Publisher, logger logx.Logger) *PGListener {
	if logger == nil {
		logger = logx.Nop()
	}
	return &PGListener{
		dial:      dial,
		pub:       pub,
		logger:    logger,
		baseDelay: 200 * time.Millisecond,
		maxDelay:  5 * time.Second,
	}
}

// Run blocks until ctx is done. It returns nil on cancellation.
func (l *PGListener) Run(ctx context.Context) error {
	attempt := 0
	for {
		err := l.listen(ctx, func() { attempt = 0 })
		if ctx.Err() != nil {
			return nil
		}
		attempt++
		delay := l.backoff(attempt)
		l.logger.Warn("changefeed connection lost, reconnecting",
			logx.Err(err),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
		)
		if err := sleepWithContext(ctx, delay); err != nil {
			return nil
		}
	}
}

func (l *PGListener) listen(ctx context.Context, connected func()) error {
	conn, err := l.dial(ctx)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = conn.Close(closeCtx)
	}()

	if _, err := conn.Exec(ctx, "LISTEN "+Channel); err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	connected()
	l.logger.Info("changefeed listening", logx.String("channel", Channel))

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait: %w", err)
		}
		e, err := decode(n.Payload)
		if err != nil {
			l.logger.Warn("changefeed bad payload, skipping", logx.Err(err))
			continue
		}
		l.pub.Publish(e)
	}
}

func decode(payload string) (Event, error) {
	var e Event
	if err := json.Unmarshal([]byte(payload), &e); err != nil {
		return Event{}, err
	}
	if e.Table == "" || e.Op == "" {
		return Event{}, errors.New("missing table or op")
	}
	return e, nil
}

func (l *PGListener) backoff(attempt int) time.Duration {
	if attempt > 16 {
		return l.maxDelay
	}
	d := l.baseDelay << (attempt - 1)
	if d > l.maxDelay || d <= 0 {
		return l.maxDelay
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
