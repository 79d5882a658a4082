package app

import (
	"context"
	"errors"
	"time"

	"logistics-backoffice/internal/apperr"
	"logistics-backoffice/internal/service/pings"
	"logistics-backoffice/internal/transport/kafka"
)

const pingHandleTimeout = 5 * time.Second

type pingHandler interface {
	Handle(ctx context.Context, e pings.Event) error
}

// makePingsKafka bounds each message to timeout so a stalled database
// cannot hold the partition forever. Invalid samples are rejected so the
// consumer skips them instead of redelivering.
func makePingsKafka(h pingHandler, timeout time.Duration) kafka.HandleFunc {
	return func(ctx context.Context, e pings.Event) error {
		hctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		err := h.Handle(hctx, e)
		if errors.Is(err, apperr.ErrInvalid) {
			return kafka.Reject(err)
		}
		return err
	}
}
