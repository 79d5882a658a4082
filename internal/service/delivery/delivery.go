package delivery

import (
	"context"
	"errors"
	"strings"
	"time"

	"logistics-backoffice/internal/apperr"
	"logistics-backoffice/internal/domain"
	"logistics-backoffice/internal/logx"
	"logistics-backoffice/internal/validation"
)

// Service coordinates delivery business logic over the cached collection.
type Service struct {
	deliveries       deliveryCollection
	finder           deliveryFinder
	couriers         courierChecker
	customers        customerReader
	logger           logx.Logger
	operationTimeout time.Duration
	now              func() time.Time
}

// NewService creates and configures a delivery Service.
func NewService(
	d deliveryCollection,
	f deliveryFinder,
	couriers courierChecker,
	customers customerReader,
	logger logx.Logger,
	timeout time.Duration,
) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		deliveries:       d,
		finder:           f,
		couriers:         couriers,
		customers:        customers,
		logger:           logger,
		operationTimeout: timeout,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func (s *Service) ensureLoaded(ctx context.Context) error {
	if s.deliveries.Loaded() {
		return nil
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.deliveries.Refresh(ctx)
}

func trimOrNil(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}

func checkDates(order, promised time.Time) error {
	if promised.Before(order) {
		return apperr.NewValidation("promised_date", "must not be before order date")
	}
	return nil
}

func validateCreate(d *domain.Delivery) error {
	if d == nil {
		return apperr.ErrInvalid
	}
	if d.Status == "" {
		d.Status = domain.StatusConfirmed
	}
	d.Description = strings.TrimSpace(d.Description)
	d.Origin = trimOrNil(d.Origin)
	d.Destination = trimOrNil(d.Destination)
	d.TrackingCode = trimOrNil(d.TrackingCode)
	if err := validation.Struct(d); err != nil {
		return err
	}
	return checkDates(d.OrderDate, d.PromisedDate)
}

func validateUpdate(u *domain.PartialDeliveryUpdate) error {
	if u.ID <= 0 || u.Empty() {
		return apperr.ErrInvalid
	}
	if u.Origin != nil {
		v := strings.TrimSpace(*u.Origin)
		u.Origin = &v
	}
	if u.Destination != nil {
		v := strings.TrimSpace(*u.Destination)
		u.Destination = &v
	}
	return validation.Struct(u)
}

func (s *Service) checkCustomer(ctx context.Context, id int64) error {
	_, err := s.customers.Get(ctx, id)
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.NewValidation("customer_id", "unknown customer")
	}
	return err
}

// Get retrieves a delivery by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Delivery, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	d, ok := s.deliveries.Get(id)
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &d, nil
}

// List returns deliveries newest first.
func (s *Service) List(ctx context.Context) ([]domain.Delivery, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return s.deliveries.Snapshot(), nil
}

// Search matches the term against the order number or, case-insensitively,
// the customer name. A blank term lists everything.
func (s *Service) Search(ctx context.Context, term string) ([]domain.Delivery, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.List(ctx)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.finder.Find(ctx, domain.DeliveryFilter{Search: term})
}

// Create persists a new delivery and returns its generated ID. A courier,
// when set, must hold a license that is valid now.
func (s *Service) Create(ctx context.Context, d *domain.Delivery) (int64, error) {
	if err := validateCreate(d); err != nil {
		return 0, err
	}
	if err := s.checkCustomer(ctx, d.CustomerID); err != nil {
		return 0, err
	}
	if d.CourierID > 0 {
		if err := s.couriers.CheckAssignable(ctx, d.CourierID); err != nil {
			return 0, err
		}
	}
	if d.Status == domain.StatusDelivered && d.DeliveredAt == nil {
		now := s.now()
		d.DeliveredAt = &now
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	id, err := s.deliveries.Create(ctx, d)
	if err != nil {
		return 0, err
	}
	s.logger.Info("delivery created",
		logx.Int64("delivery_id", id),
		logx.Int64("order_number", d.OrderNumber),
		logx.String("status", string(d.Status)),
	)
	return id, nil
}

// UpdatePartial applies a partial update to a delivery. Moving a delivery to
// the delivered status stamps the final-delivery date unless one is given.
func (s *Service) UpdatePartial(ctx context.Context, u domain.PartialDeliveryUpdate) error {
	if err := validateUpdate(&u); err != nil {
		return err
	}
	if u.OrderDate != nil || u.PromisedDate != nil {
		cur, err := s.Get(ctx, u.ID)
		if err != nil {
			return err
		}
		next := u.Apply(*cur)
		if err := checkDates(next.OrderDate, next.PromisedDate); err != nil {
			return err
		}
	}
	if u.CustomerID != nil {
		if err := s.checkCustomer(ctx, *u.CustomerID); err != nil {
			return err
		}
	}
	if u.CourierID != nil && *u.CourierID > 0 {
		if err := s.couriers.CheckAssignable(ctx, *u.CourierID); err != nil {
			return err
		}
	}
	if u.Status != nil && *u.Status == domain.StatusDelivered && u.DeliveredAt == nil {
		now := s.now()
		u.DeliveredAt = &now
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.deliveries.Update(ctx, u.ID, u)
}

// Delete removes a delivery and its tracking history.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.deliveries.Delete(ctx, id)
}
