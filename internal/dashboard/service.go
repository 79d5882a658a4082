package dashboard

import (
	"context"
	"time"

	"logistics-backoffice/internal/domain"
)

type deliveryLister interface {
	List(ctx context.Context) ([]domain.Delivery, error)
}

type customerLister interface {
	List(ctx context.Context) ([]domain.Customer, error)
}

type courierLister interface {
	List(ctx context.Context) ([]domain.Courier, error)
}

// Service builds reports from the cached collections.
type Service struct {
	deliveries deliveryLister
	customers  customerLister
	couriers   courierLister
	now        func() time.Time
}

// NewService creates a dashboard Service.
func NewService(d deliveryLister, c customerLister, m courierLister) *Service {
	return &Service{deliveries: d, customers: c, couriers: m, now: time.Now}
}

// Report computes the dashboard for f.
func (s *Service) Report(ctx context.Context, f Filter) (Report, error) {
	ds, err := s.deliveries.List(ctx)
	if err != nil {
		return Report{}, err
	}
	cs, err := s.customers.List(ctx)
	if err != nil {
		return Report{}, err
	}
	ms, err := s.couriers.List(ctx)
	if err != nil {
		return Report{}, err
	}
	return Compute(ds, len(cs), len(ms), f, s.now()), nil
}
