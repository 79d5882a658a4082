package domain

import (
	"time"

	"github.com/google/uuid"
)

// Delivery is an order in transit tracked through a fixed lifecycle.
type Delivery struct {
	ID              int64          `db:"id"`
	OwnerID         uuid.UUID      `db:"user_id"`
	OrderNumber     int64          `db:"order_number" validate:"gt=0"`
	OrderDate       time.Time      `db:"order_date" validate:"required"`
	PromisedDate    time.Time      `db:"promised_date" validate:"required"`
	CustomerID      int64          `db:"customer_id" validate:"gt=0"`
	CourierID       int64          `db:"courier_id" validate:"gte=0"`
	Description     string         `db:"description"`
	Value           float64        `db:"value" validate:"gte=0"`
	Status          DeliveryStatus `db:"status" validate:"delivery_status"`
	DeliveredAt     *time.Time     `db:"delivered_at"`
	Origin          *string        `db:"origin"`
	Destination     *string        `db:"destination"`
	DestLat         *float64       `db:"dest_lat" validate:"omitnil,latitude"`
	DestLng         *float64       `db:"dest_lng" validate:"omitnil,longitude"`
	TrackingEnabled bool           `db:"tracking_enabled"`
	TrackingCode    *string        `db:"tracking_code"`
	Note            *string        `db:"note"`
	CreatedAt       time.Time      `db:"created_at"`

	// Joined read-only fields.
	CustomerName  string `db:"customer_name"`
	CustomerState string `db:"customer_state"`
	CourierName   string `db:"courier_name"`
}

// DestinationPoint returns the stored destination coordinate, if any.
func (d *Delivery) DestinationPoint() (Point, bool) {
	if d.DestLat == nil || d.DestLng == nil {
		return Point{}, false
	}
	return Point{Lat: *d.DestLat, Lng: *d.DestLng}, true
}

// PartialDeliveryUpdate carries optional fields to update a delivery.
// A nil field means "do not change" that attribute.
type PartialDeliveryUpdate struct {
	ID              int64
	OrderDate       *time.Time
	PromisedDate    *time.Time
	CustomerID      *int64 `validate:"omitnil,gt=0"`
	CourierID       *int64 `validate:"omitnil,gte=0"`
	Description     *string
	Value           *float64        `validate:"omitnil,gte=0"`
	Status          *DeliveryStatus `validate:"omitnil,delivery_status"`
	DeliveredAt     *time.Time
	Origin          *string
	Destination     *string
	DestLat         *float64 `validate:"omitnil,latitude"`
	DestLng         *float64 `validate:"omitnil,longitude"`
	TrackingEnabled *bool
	TrackingCode    *string
	Note            *string
}

// Empty reports whether no field is set.
func (u PartialDeliveryUpdate) Empty() bool {
	return u.OrderDate == nil && u.PromisedDate == nil && u.CustomerID == nil && u.CourierID == nil &&
		u.Description == nil && u.Value == nil && u.Status == nil && u.DeliveredAt == nil &&
		u.Origin == nil && u.Destination == nil && u.DestLat == nil && u.DestLng == nil &&
		u.TrackingEnabled == nil && u.TrackingCode == nil && u.Note == nil
}

// Apply returns a copy of d with the non-nil fields of u applied.
func (u PartialDeliveryUpdate) Apply(d Delivery) Delivery {
	if u.OrderDate != nil {
		d.OrderDate = *u.OrderDate
	}
	if u.PromisedDate != nil {
		d.PromisedDate = *u.PromisedDate
	}
	if u.CustomerID != nil {
		d.CustomerID = *u.CustomerID
	}
	if u.CourierID != nil {
		d.CourierID = *u.CourierID
	}
	if u.Description != nil {
		d.Description = *u.Description
	}
	if u.Value != nil {
		d.Value = *u.Value
	}
	if u.Status != nil {
		d.Status = *u.Status
	}
	if u.DeliveredAt != nil {
		d.DeliveredAt = u.DeliveredAt
	}
	if u.Origin != nil {
		d.Origin = u.Origin
	}
	if u.Destination != nil {
		d.Destination = u.Destination
	}
	if u.DestLat != nil {
		d.DestLat = u.DestLat
	}
	if u.DestLng != nil {
		d.DestLng = u.DestLng
	}
	if u.TrackingEnabled != nil {
		d.TrackingEnabled = *u.TrackingEnabled
	}
	if u.TrackingCode != nil {
		d.TrackingCode = u.TrackingCode
	}
	if u.Note != nil {
		d.Note = u.Note
	}
	return d
}

// DeliveryFilter narrows a delivery listing. Zero values mean "no filter".
type DeliveryFilter struct {
	Statuses        []DeliveryStatus
	CourierID       *int64
	TrackingEnabled *bool
	OrderNumber     *int64
	Search          string
}
