package courier

import (
	"context"
	"errors"
	"strings"
	"time"

	"logistics-backoffice/internal/apperr"
	"logistics-backoffice/internal/domain"
	"logistics-backoffice/internal/validation"
)

// Service coordinates courier business logic over the cached collection.
type Service struct {
	couriers         courierCollection
	operationTimeout time.Duration
	now              func() time.Time
}

// NewService creates and configures a courier Service.
func NewService(c courierCollection, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{couriers: c, operationTimeout: timeout, now: time.Now}
}

// Decorator returns the read-time hook computing the license status against now.
func Decorator(now func() time.Time) func(*domain.Courier) {
	return func(c *domain.Courier) {
		c.LicenseStatus = c.LicenseStatusAt(now())
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func (s *Service) ensureLoaded(ctx context.Context) error {
	if s.couriers.Loaded() {
		return nil
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.couriers.Refresh(ctx)
}

// validateCreate normalizes and validates a courier for creation.
func validateCreate(c *domain.Courier) error {
	if c == nil {
		return apperr.ErrInvalid
	}
	c.Name = strings.TrimSpace(c.Name)
	c.LicenseNumber = strings.TrimSpace(c.LicenseNumber)
	c.VehiclePlate = strings.ToUpper(strings.TrimSpace(c.VehiclePlate))
	if !c.LicenseExpiry.IsZero() {
		c.LicenseExpiry = dateOnly(c.LicenseExpiry)
	}
	return validation.Struct(c)
}

func validateUpdate(u *domain.PartialCourierUpdate) error {
	if u.ID <= 0 || u.Empty() {
		return apperr.ErrInvalid
	}
	if u.VehiclePlate != nil {
		p := strings.ToUpper(strings.TrimSpace(*u.VehiclePlate))
		u.VehiclePlate = &p
	}
	if u.LicenseExpiry != nil {
		d := dateOnly(*u.LicenseExpiry)
		u.LicenseExpiry = &d
	}
	return validation.Struct(u)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Get retrieves a courier by its ID with its license status.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Courier, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	c, ok := s.couriers.Get(id)
	if !ok {
		return nil, apperr.ErrNotFound
	}
	c.LicenseStatus = c.LicenseStatusAt(s.now())
	return &c, nil
}

// List returns couriers newest first. License status is derived per read,
// so a license expiring after the last fetch reads as expired.
func (s *Service) List(ctx context.Context) ([]domain.Courier, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	list := s.couriers.Snapshot()
	now := s.now()
	for i := range list {
		list[i].LicenseStatus = list[i].LicenseStatusAt(now)
	}
	return list, nil
}

// Eligible returns the couriers that may be assigned a delivery now.
func (s *Service) Eligible(ctx context.Context) ([]domain.Courier, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	out := make([]domain.Courier, 0, len(all))
	for _, c := range all {
		if c.LicenseStatusAt(now) == domain.LicenseValid {
			out = append(out, c)
		}
	}
	return out, nil
}

// CheckAssignable fails unless the courier exists and its license is valid now.
func (s *Service) CheckAssignable(ctx context.Context, id int64) error {
	c, err := s.Get(ctx, id)
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.NewValidation("courier_id", "unknown courier")
	}
	if err != nil {
		return err
	}
	if c.LicenseStatusAt(s.now()) == domain.LicenseExpired {
		return apperr.NewValidation("courier_id", "courier license expired")
	}
	return nil
}

// Create persists a new courier and returns its generated ID.
func (s *Service) Create(ctx context.Context, c *domain.Courier) (int64, error) {
	if err := validateCreate(c); err != nil {
		return 0, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.couriers.Create(ctx, c)
}

// UpdatePartial applies a partial update to a courier.
func (s *Service) UpdatePartial(ctx context.Context, u domain.PartialCourierUpdate) error {
	if err := validateUpdate(&u); err != nil {
		return err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.couriers.Update(ctx, u.ID, u)
}

// Delete removes a courier. Its deliveries become unassigned.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.couriers.Delete(ctx, id)
}
