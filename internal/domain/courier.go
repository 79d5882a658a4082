package domain

import (
	"time"

	"github.com/google/uuid"
)

// LicenseStatus is the derived validity of a courier's driver license.
type LicenseStatus string

// List of license statuses.
const (
	LicenseValid   LicenseStatus = "no_prazo"
	LicenseExpired LicenseStatus = "vencida"
)

// Courier represents a driver eligible for delivery assignment.
type Courier struct {
	ID            int64         `db:"id"`
	OwnerID       uuid.UUID     `db:"user_id"`
	Name          string        `db:"name" validate:"notblank"`
	Phone         string        `db:"phone"`
	Email         string        `db:"email" validate:"omitempty,email"`
	VehicleModel  string        `db:"vehicle_model"`
	VehiclePlate  string        `db:"vehicle_plate"`
	LicenseNumber string        `db:"license_number" validate:"notblank"`
	LicenseExpiry time.Time     `db:"license_expiry" validate:"required"`
	Note          *string       `db:"note"`
	CreatedAt     time.Time     `db:"created_at"`
	LicenseStatus LicenseStatus `db:"-"`
}

// LicenseStatusAt derives the license status at now: expired iff the expiry
// date is strictly before now.
func (c *Courier) LicenseStatusAt(now time.Time) LicenseStatus {
	if c.LicenseExpiry.Before(now) {
		return LicenseExpired
	}
	return LicenseValid
}

// PartialCourierUpdate carries optional fields to update a courier.
// A nil field means "do not change" that attribute.
type PartialCourierUpdate struct {
	ID            int64
	Name          *string `validate:"omitnil,notblank"`
	Phone         *string
	Email         *string `validate:"omitnil,email_or_blank"`
	VehicleModel  *string
	VehiclePlate  *string
	LicenseNumber *string `validate:"omitnil,notblank"`
	LicenseExpiry *time.Time
	Note          *string
}

// Empty reports whether no field is set.
func (u PartialCourierUpdate) Empty() bool {
	return u.Name == nil && u.Phone == nil && u.Email == nil && u.VehicleModel == nil &&
		u.VehiclePlate == nil && u.LicenseNumber == nil && u.LicenseExpiry == nil && u.Note == nil
}
