package tracking

import (
	"context"

	"logistics-backoffice/internal/domain"
	"logistics-backoffice/internal/gateway/routing"
)

type deliveryFinder interface {
	Find(ctx context.Context, f domain.DeliveryFilter) ([]domain.Delivery, error)
}

type pingReader interface {
	LatestFor(ctx context.Context, deliveryIDs []int64) (map[int64]domain.TrackingPing, error)
}

type geocoder interface {
	Geocode(ctx context.Context, address string) (*domain.Point, error)
}

type router interface {
	Route(ctx context.Context, a, b domain.Point) (*routing.Route, error)
}
