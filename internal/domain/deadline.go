package domain

import (
	"math"
	"time"
)

// DeadlineStatus is the derived on-time/late classification of a delivery.
type DeadlineStatus string

// List of deadline statuses.
const (
	DeadlineOnTime          DeadlineStatus = "no_prazo"
	DeadlineLate            DeadlineStatus = "atrasado"
	DeadlineDeliveredOnTime DeadlineStatus = "entregue_prazo"
	DeadlineDeliveredLate   DeadlineStatus = "entregue_atraso"
)

// DeadlineStatus classifies the delivery at instant now. It is never stored.
// Dates are compared at day precision; a delivery without a final-delivery
// date that is marked delivered counts as delivered on time.
func (d *Delivery) DeadlineStatus(now time.Time) DeadlineStatus {
	promised := dateOf(d.PromisedDate)
	if d.Status == StatusDelivered {
		if d.DeliveredAt == nil || !dateOf(*d.DeliveredAt).After(promised) {
			return DeadlineDeliveredOnTime
		}
		return DeadlineDeliveredLate
	}
	if dateOf(now).After(promised) {
		return DeadlineLate
	}
	return DeadlineOnTime
}

// MaxDays is the number of days between order date and promised date.
func (d *Delivery) MaxDays() int {
	return ceilDays(d.PromisedDate.Sub(d.OrderDate))
}

// ElapsedDays is the number of days between order date and the final
// delivery date, or now if the delivery is still open.
func (d *Delivery) ElapsedDays(now time.Time) int {
	end := now
	if d.DeliveredAt != nil {
		end = *d.DeliveredAt
	}
	return ceilDays(end.Sub(d.OrderDate))
}

func ceilDays(dur time.Duration) int {
	return int(math.Ceil(dur.Hours() / 24))
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
