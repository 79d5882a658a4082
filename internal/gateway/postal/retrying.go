package postal

import (
	"context"

	"logistics-backoffice/internal/domain"
	"logistics-backoffice/internal/gateway/retry"
)

type lookup interface {
	Lookup(ctx context.Context, postalCode string) (*domain.Address, error)
}

// RetryingLookup retries transient postal lookup failures.
type RetryingLookup struct {
	next   lookup
	policy *retry.Policy
}

// NewRetryingLookup wraps next. It returns nil when next is nil.
func NewRetryingLookup(next lookup, policy *retry.Policy) *RetryingLookup {
	if next == nil {
		return nil
	}
	return &RetryingLookup{next: next, policy: policy}
}

// Lookup implements the postal lookup with retries.
func (r *RetryingLookup) Lookup(ctx context.Context, postalCode string) (*domain.Address, error) {
	var addr *domain.Address
	err := r.policy.Do(ctx, "Lookup", func(ctx context.Context) error {
		var err error
		addr, err = r.next.Lookup(ctx, postalCode)
		return err
	})
	if err != nil {
		return nil, err
	}
	return addr, nil
}
