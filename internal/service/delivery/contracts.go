//go:generate mockgen -source=contracts.go -destination=delivery_mocks_test.go -package=delivery

package delivery

import (
	"context"

	"logistics-backoffice/internal/domain"
)

// deliveryCollection is the cached delivery table.
type deliveryCollection interface {
	Refresh(ctx context.Context) error
	Loaded() bool
	Snapshot() []domain.Delivery
	Get(id int64) (domain.Delivery, bool)
	Create(ctx context.Context, d *domain.Delivery) (int64, error)
	Update(ctx context.Context, id int64, u domain.PartialDeliveryUpdate) error
	Delete(ctx context.Context, id int64) error
}

// deliveryFinder runs filtered queries against the store.
type deliveryFinder interface {
	Find(ctx context.Context, f domain.DeliveryFilter) ([]domain.Delivery, error)
}

// courierChecker gates courier selection on license validity.
type courierChecker interface {
	CheckAssignable(ctx context.Context, id int64) error
}

// customerReader resolves the linked customer.
type customerReader interface {
	Get(ctx context.Context, id int64) (*domain.Customer, error)
}
