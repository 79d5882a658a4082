package pings

import (
	"context"
	"fmt"
	"time"

	"logistics-backoffice/internal/apperr"
	"logistics-backoffice/internal/domain"
	"logistics-backoffice/internal/logx"
)

// Processor stores courier position samples for tracked deliveries.
type Processor struct {
	deliveries deliveryReader
	pings      pingStore
	logger     logx.Logger
	now        func() time.Time
}

// NewProcessor creates a Processor.
func NewProcessor(deliveries deliveryReader, pings pingStore, logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Processor{
		deliveries: deliveries,
		pings:      pings,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func validate(e Event) error {
	switch {
	case e.DeliveryID <= 0:
		return apperr.NewValidation("delivery_id", "must be positive")
	case e.Lat < -90 || e.Lat > 90:
		return apperr.NewValidation("lat", "must be a valid latitude")
	case e.Lng < -180 || e.Lng > 180:
		return apperr.NewValidation("lng", "must be a valid longitude")
	}
	return nil
}

// Handle appends the sample. Malformed samples fail with apperr.ErrInvalid;
// samples for unknown or untracked deliveries are dropped without error.
// Any other error is transient and the sample should be redelivered.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	if err := validate(e); err != nil {
		return err
	}
	d, err := p.deliveries.Get(ctx, e.DeliveryID)
	if err != nil {
		return fmt.Errorf("load delivery %d: %w", e.DeliveryID, err)
	}
	if d == nil {
		p.logger.Warn("ping for unknown delivery dropped", logx.Int64("delivery_id", e.DeliveryID))
		return nil
	}
	if !d.TrackingEnabled {
		p.logger.Debug("ping for untracked delivery dropped", logx.Int64("delivery_id", e.DeliveryID))
		return nil
	}

	at := e.At
	if at.IsZero() {
		at = p.now()
	}
	id, err := p.pings.Insert(ctx, domain.TrackingPing{DeliveryID: e.DeliveryID, Lat: e.Lat, Lng: e.Lng, At: at})
	if err != nil {
		return err
	}
	p.logger.Debug("ping stored",
		logx.Int64("ping_id", id),
		logx.Int64("delivery_id", e.DeliveryID),
		logx.Float64("lat", e.Lat),
		logx.Float64("lng", e.Lng),
	)
	return nil
}
