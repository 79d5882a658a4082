//go:generate mockgen -source=contracts.go -destination=customer_mocks_test.go -package=customer

package customer

import (
	"context"

	"logistics-backoffice/internal/domain"
)

// customerCollection is the cached customer table.
type customerCollection interface {
	Refresh(ctx context.Context) error
	Loaded() bool
	Snapshot() []domain.Customer
	Get(id int64) (domain.Customer, bool)
	Create(ctx context.Context, c *domain.Customer) (int64, error)
	Update(ctx context.Context, id int64, u domain.PartialCustomerUpdate) error
	Delete(ctx context.Context, id int64) error
}

// addressLookup resolves a postal code into an address.
type addressLookup interface {
	Lookup(ctx context.Context, postalCode string) (*domain.Address, error)
}
