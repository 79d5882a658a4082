package handlers

import (
	"context"

	"logistics-backoffice/internal/auth"
	"logistics-backoffice/internal/board"
	"logistics-backoffice/internal/dashboard"
	"logistics-backoffice/internal/domain"
	"logistics-backoffice/internal/tracking"
)

type customerUsecase interface {
	Get(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialCustomerUpdate) error
	Delete(ctx context.Context, id int64) error
	LookupAddress(ctx context.Context, postalCode string) (*domain.Address, error)
}

type courierUsecase interface {
	Get(ctx context.Context, id int64) (*domain.Courier, error)
	List(ctx context.Context) ([]domain.Courier, error)
	Eligible(ctx context.Context) ([]domain.Courier, error)
	Create(ctx context.Context, c *domain.Courier) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialCourierUpdate) error
	Delete(ctx context.Context, id int64) error
}

type deliveryUsecase interface {
	Get(ctx context.Context, id int64) (*domain.Delivery, error)
	List(ctx context.Context) ([]domain.Delivery, error)
	Search(ctx context.Context, term string) ([]domain.Delivery, error)
	Create(ctx context.Context, d *domain.Delivery) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialDeliveryUpdate) error
	Delete(ctx context.Context, id int64) error
}

type boardUsecase interface {
	Grouped() board.Grouped
	State(id int64) board.State
	Move(ctx context.Context, activeID int64, overID string) (board.MoveResult, error)
}

type reportUsecase interface {
	Report(ctx context.Context, f dashboard.Filter) (dashboard.Report, error)
}

type trackingView interface {
	View(courierID *int64) tracking.View
	Watch() (<-chan struct{}, func())
}

type authUsecase interface {
	Register(ctx context.Context, c auth.Credentials) (*domain.User, error)
	Login(ctx context.Context, c auth.Credentials) (string, error)
}
