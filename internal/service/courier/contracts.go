package courier

import (
	"context"

	"logistics-backoffice/internal/domain"
)

// courierCollection is the cached courier table.
type courierCollection interface {
	Refresh(ctx context.Context) error
	Loaded() bool
	Snapshot() []domain.Courier
	Get(id int64) (domain.Courier, bool)
	Create(ctx context.Context, c *domain.Courier) (int64, error)
	Update(ctx context.Context, id int64, u domain.PartialCourierUpdate) error
	Delete(ctx context.Context, id int64) error
}
