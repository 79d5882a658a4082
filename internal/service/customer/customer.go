package customer

import (
	"context"
	"strings"
	"time"

	"logistics-backoffice/internal/apperr"
	"logistics-backoffice/internal/docnum"
	"logistics-backoffice/internal/domain"
	"logistics-backoffice/internal/logx"
	"logistics-backoffice/internal/validation"
)

// Service coordinates customer business logic over the cached collection.
type Service struct {
	customers        customerCollection
	postal           addressLookup
	logger           logx.Logger
	operationTimeout time.Duration
}

// NewService creates a customer Service. postal may be nil, which disables
// address auto-fill.
func NewService(c customerCollection, postal addressLookup, logger logx.Logger, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{customers: c, postal: postal, logger: logger, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func (s *Service) ensureLoaded(ctx context.Context) error {
	if s.customers.Loaded() {
		return nil
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.customers.Refresh(ctx)
}

// validateCreate normalizes document numbers to digits and requires
// exactly one of CPF or CNPJ.
func validateCreate(c *domain.Customer) error {
	if c == nil {
		return apperr.ErrInvalid
	}
	c.Name = strings.TrimSpace(c.Name)
	c.CPF = digitsOrNil(c.CPF)
	c.CNPJ = digitsOrNil(c.CNPJ)
	c.State = strings.ToUpper(strings.TrimSpace(c.State))
	c.PostalCode = docnum.Digits(c.PostalCode)

	if err := validation.Struct(c); err != nil {
		return err
	}
	switch {
	case c.CPF == nil && c.CNPJ == nil:
		return apperr.NewValidation("cpf", "CPF or CNPJ is required")
	case c.CPF != nil && c.CNPJ != nil:
		return errSingleTaxID()
	}
	return nil
}

func validateUpdate(u *domain.PartialCustomerUpdate) error {
	if u.ID <= 0 || u.Empty() {
		return apperr.ErrInvalid
	}
	if u.CPF != nil {
		d := docnum.Digits(*u.CPF)
		u.CPF = &d
	}
	if u.CNPJ != nil {
		d := docnum.Digits(*u.CNPJ)
		u.CNPJ = &d
	}
	if u.State != nil {
		st := strings.ToUpper(strings.TrimSpace(*u.State))
		u.State = &st
	}
	if u.PostalCode != nil {
		pc := docnum.Digits(*u.PostalCode)
		u.PostalCode = &pc
	}
	if err := validation.Struct(u); err != nil {
		return err
	}
	if u.CPF != nil && u.CNPJ != nil {
		return errSingleTaxID()
	}
	return nil
}

func errSingleTaxID() error {
	return apperr.NewValidation("cnpj", "only one of CPF or CNPJ may be set")
}

// checkTaxIDKind rejects an update that would give c a second kind of tax id.
func checkTaxIDKind(c *domain.Customer, u domain.PartialCustomerUpdate) error {
	hasCPF := c.CPF != nil && *c.CPF != ""
	if (u.CNPJ != nil && hasCPF) || (u.CPF != nil && c.IsCompany()) {
		return errSingleTaxID()
	}
	return nil
}

func digitsOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	d := docnum.Digits(*s)
	if d == "" && strings.TrimSpace(*s) == "" {
		return nil
	}
	return &d
}

// Get retrieves a customer by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	c, ok := s.customers.Get(id)
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &c, nil
}

// List returns customers newest first.
func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return s.customers.Snapshot(), nil
}

// Create persists a new customer and returns its generated ID.
func (s *Service) Create(ctx context.Context, c *domain.Customer) (int64, error) {
	if err := validateCreate(c); err != nil {
		return 0, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.customers.Create(ctx, c)
}

// UpdatePartial applies a partial update to a customer. A customer keeps
// the kind of tax id it was created with.
func (s *Service) UpdatePartial(ctx context.Context, u domain.PartialCustomerUpdate) error {
	if err := validateUpdate(&u); err != nil {
		return err
	}
	if u.CPF != nil || u.CNPJ != nil {
		cur, err := s.Get(ctx, u.ID)
		if err != nil {
			return err
		}
		if err := checkTaxIDKind(cur, u); err != nil {
			return err
		}
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.customers.Update(ctx, u.ID, u)
}

// Delete removes a customer. Customers with deliveries cannot be removed.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.customers.Delete(ctx, id)
}

// LookupAddress resolves a postal code for form auto-fill. A malformed code
// is a validation error; lookup failures degrade to (nil, nil) so the form
// stays usable.
func (s *Service) LookupAddress(ctx context.Context, postalCode string) (*domain.Address, error) {
	code := docnum.Digits(postalCode)
	if !docnum.ValidPostalCode(code) {
		return nil, apperr.NewValidation("postal_code", "invalid postal code")
	}
	if s.postal == nil {
		return nil, nil
	}
	addr, err := s.postal.Lookup(ctx, code)
	if err != nil {
		s.logger.Warn("postal lookup failed", logx.String("postal_code", code), logx.Err(err))
		return nil, nil
	}
	return addr, nil
}
