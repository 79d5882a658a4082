package app

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/dig"

	"logistics-backoffice/internal/auth"
	"logistics-backoffice/internal/board"
	"logistics-backoffice/internal/changefeed"
	"logistics-backoffice/internal/collection"
	"logistics-backoffice/internal/config"
	"logistics-backoffice/internal/dashboard"
	"logistics-backoffice/internal/domain"
	"logistics-backoffice/internal/gateway/postal"
	"logistics-backoffice/internal/logx"
	"logistics-backoffice/internal/repository"
	"logistics-backoffice/internal/service/courier"
	"logistics-backoffice/internal/service/customer"
	"logistics-backoffice/internal/service/delivery"
)

const operationTimeout = 3 * time.Second

type (
	customerCollection = collection.Collection[domain.Customer, domain.PartialCustomerUpdate]
	courierCollection  = collection.Collection[domain.Courier, domain.PartialCourierUpdate]
	deliveryCollection = collection.Collection[domain.Delivery, domain.PartialDeliveryUpdate]
)

func registerCollections(container *dig.Container) error {
	return provideAll(container,
		newCustomerCollection,
		newCourierCollection,
		newDeliveryCollection,
	)
}

func newCustomerCollection(repo *repository.CustomerRepo, logger logx.Logger) *customerCollection {
	return collection.New[domain.Customer, domain.PartialCustomerUpdate](repo, collection.Options[domain.Customer]{
		Name:     changefeed.TableCustomers,
		ID:       func(c domain.Customer) int64 { return c.ID },
		SetOwner: func(c *domain.Customer, owner uuid.UUID) { c.OwnerID = owner },
		Logger:   logger,
	})
}

func newCourierCollection(repo *repository.CourierRepo, logger logx.Logger) *courierCollection {
	return collection.New[domain.Courier, domain.PartialCourierUpdate](repo, collection.Options[domain.Courier]{
		Name:     changefeed.TableCouriers,
		ID:       func(c domain.Courier) int64 { return c.ID },
		SetOwner: func(c *domain.Courier, owner uuid.UUID) { c.OwnerID = owner },
		Decorate: courier.Decorator(time.Now),
		Logger:   logger,
	})
}

func newDeliveryCollection(repo *repository.DeliveryRepo, logger logx.Logger) *deliveryCollection {
	return collection.New[domain.Delivery, domain.PartialDeliveryUpdate](repo, collection.Options[domain.Delivery]{
		Name:     changefeed.TableDeliveries,
		ID:       func(d domain.Delivery) int64 { return d.ID },
		SetOwner: func(d *domain.Delivery, owner uuid.UUID) { d.OwnerID = owner },
		Logger:   logger,
	})
}

func registerServices(container *dig.Container) error {
	return provideAll(container,
		func(c *courierCollection) *courier.Service {
			return courier.NewService(c, operationTimeout)
		},
		func(c *customerCollection, lookup *postal.RetryingLookup, logger logx.Logger) *customer.Service {
			return customer.NewService(c, lookup, logger, operationTimeout)
		},
		func(
			d *deliveryCollection,
			repo *repository.DeliveryRepo,
			couriers *courier.Service,
			customers *customer.Service,
			logger logx.Logger,
		) *delivery.Service {
			return delivery.NewService(d, repo, couriers, customers, logger, operationTimeout)
		},
		func(d *delivery.Service, c *customer.Service, m *courier.Service) *dashboard.Service {
			return dashboard.NewService(d, c, m)
		},
		func(d *deliveryCollection, svc *delivery.Service, logger logx.Logger, m *Metrics) *board.Board {
			return board.New(d, svc, logger, m.BoardMoves)
		},
		func(users *repository.UserRepo, cfg *config.Config, logger logx.Logger) *auth.Service {
			return auth.NewService(users, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, logger)
		},
	)
}
