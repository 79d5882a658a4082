package board

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"logistics-backoffice/internal/domain"
)

// deliveryCache is the locally cached delivery list.
type deliveryCache interface {
	Snapshot() []domain.Delivery
	Get(id int64) (domain.Delivery, bool)
	Replace(next domain.Delivery) (domain.Delivery, bool)
}

// statusWriter persists a single-row update.
type statusWriter interface {
	UpdatePartial(ctx context.Context, u domain.PartialDeliveryUpdate) error
}

type outcomeCounter interface {
	WithLabelValues(lvs ...string) prometheus.Counter
}
