package kafka

import (
	"errors"
	"fmt"
)

// ErrRejected marks a ping the handler will never accept. The consumer
// commits past it instead of redelivering.
var ErrRejected = errors.New("ping rejected")

// Reject wraps err as ErrRejected.
func Reject(err error) error {
	if err == nil {
		return ErrRejected
	}
	return fmt.Errorf("%w: %w", ErrRejected, err)
}
