//go:generate mockgen -source=contracts.go -destination=pings_mocks_test.go -package=pings

package pings

import (
	"context"

	"logistics-backoffice/internal/domain"
)

// deliveryReader loads the delivery a ping refers to.
type deliveryReader interface {
	Get(ctx context.Context, id int64) (*domain.Delivery, error)
}

// pingStore appends tracking pings.
type pingStore interface {
	Insert(ctx context.Context, p domain.TrackingPing) (int64, error)
}
