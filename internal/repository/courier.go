package repository

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"logistics-backoffice/internal/apperr"
	"logistics-backoffice/internal/domain"
)

// CourierRepo represents courier repository.
type CourierRepo struct{ db *pgxpool.Pool }

// NewCourierRepo creates a new CourierRepo.
func NewCourierRepo(db *pgxpool.Pool) *CourierRepo { return &CourierRepo{db: db} }

const courierSelect = `SELECT id, user_id, name, phone, email, vehicle_model, vehicle_plate,
       license_number, license_expiry, note, created_at
  FROM couriers`

// Get - returns courier by its ID, or nil when absent.
func (r *CourierRepo) Get(ctx context.Context, id int64) (*domain.Courier, error) {
	var c domain.Courier
	if err := pgxscan.Get(ctx, r.db, &c, courierSelect+` WHERE id = $1`, id); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get courier %d: %w", id, err)
	}
	return &c, nil
}

// List returns all couriers, newest first.
func (r *CourierRepo) List(ctx context.Context) ([]domain.Courier, error) {
	out := make([]domain.Courier, 0)
	if err := pgxscan.Select(ctx, r.db, &out, courierSelect+` ORDER BY created_at DESC, id DESC`); err != nil {
		return nil, fmt.Errorf("list couriers: %w", err)
	}
	return out, nil
}

// Create - inserts a courier and returns its id.
func (r *CourierRepo) Create(ctx context.Context, c *domain.Courier) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO couriers(user_id, name, phone, email, vehicle_model, vehicle_plate,
                             license_number, license_expiry, note)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id`,
		c.OwnerID, c.Name, c.Phone, c.Email, c.VehicleModel, c.VehiclePlate,
		c.LicenseNumber, c.LicenseExpiry, c.Note,
	).Scan(&id)
	if err != nil {
		return 0, mapWriteErr("create courier", err)
	}
	return id, nil
}

// UpdatePartial applies a partial update to a courier and returns true if a row was affected.
func (r *CourierRepo) UpdatePartial(ctx context.Context, u domain.PartialCourierUpdate) (bool, error) {
	if u.Empty() {
		return false, apperr.ErrInvalid
	}
	ct, err := r.db.Exec(ctx, `
        UPDATE couriers
        SET
            name           = COALESCE($2, name),
            phone          = COALESCE($3, phone),
            email          = COALESCE($4, email),
            vehicle_model  = COALESCE($5, vehicle_model),
            vehicle_plate  = COALESCE($6, vehicle_plate),
            license_number = COALESCE($7, license_number),
            license_expiry = COALESCE($8, license_expiry),
            note           = COALESCE($9, note)
        WHERE id = $1
    `, u.ID, u.Name, u.Phone, u.Email, u.VehicleModel, u.VehiclePlate,
		u.LicenseNumber, u.LicenseExpiry, u.Note)
	if err != nil {
		return false, mapWriteErr(fmt.Sprintf("update courier %d", u.ID), err)
	}
	return ct.RowsAffected() > 0, nil
}

// Delete removes a courier; its deliveries become unassigned.
func (r *CourierRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM couriers WHERE id = $1`, id)
	if err != nil {
		return false, mapWriteErr(fmt.Sprintf("delete courier %d", id), err)
	}
	return ct.RowsAffected() > 0, nil
}
