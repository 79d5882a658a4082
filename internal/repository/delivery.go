package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"logistics-backoffice/internal/apperr"
	"logistics-backoffice/internal/domain"
)

// DeliveryRepo represents delivery repository.
type DeliveryRepo struct{ db *pgxpool.Pool }

// NewDeliveryRepo creates a new DeliveryRepo.
func NewDeliveryRepo(db *pgxpool.Pool) *DeliveryRepo { return &DeliveryRepo{db: db} }

func deliverySelect() squirrel.SelectBuilder {
	return psql.Select(
		"d.id", "d.user_id", "d.order_number", "d.order_date", "d.promised_date",
		"d.customer_id", "COALESCE(d.courier_id, 0) AS courier_id", "d.description",
		"d.value::float8 AS value", "d.status", "d.delivered_at", "d.origin", "d.destination",
		"d.dest_lat", "d.dest_lng", "d.tracking_enabled", "d.tracking_code", "d.note", "d.created_at",
		"COALESCE(c.name, '') AS customer_name",
		"COALESCE(c.state, '') AS customer_state",
		"COALESCE(m.name, '') AS courier_name",
	).
		From("deliveries d").
		LeftJoin("customers c ON c.id = d.customer_id").
		LeftJoin("couriers m ON m.id = d.courier_id")
}

// Get - returns delivery by its ID with joined names, or nil when absent.
func (r *DeliveryRepo) Get(ctx context.Context, id int64) (*domain.Delivery, error) {
	sql, args, err := deliverySelect().Where(squirrel.Eq{"d.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get delivery: %w", err)
	}
	var d domain.Delivery
	if err := pgxscan.Get(ctx, r.db, &d, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery %d: %w", id, err)
	}
	return &d, nil
}

// List returns every delivery, newest first.
func (r *DeliveryRepo) List(ctx context.Context) ([]domain.Delivery, error) {
	return r.Find(ctx, domain.DeliveryFilter{})
}

// Find returns deliveries matching f, newest first.
func (r *DeliveryRepo) Find(ctx context.Context, f domain.DeliveryFilter) ([]domain.Delivery, error) {
	q := deliverySelect().OrderBy("d.created_at DESC", "d.id DESC")
	if len(f.Statuses) > 0 {
		statuses := make([]string, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			statuses = append(statuses, string(s))
		}
		q = q.Where(squirrel.Eq{"d.status": statuses})
	}
	if f.CourierID != nil {
		q = q.Where(squirrel.Eq{"d.courier_id": *f.CourierID})
	}
	if f.TrackingEnabled != nil {
		q = q.Where(squirrel.Eq{"d.tracking_enabled": *f.TrackingEnabled})
	}
	if f.OrderNumber != nil {
		q = q.Where(squirrel.Eq{"d.order_number": *f.OrderNumber})
	}
	if term := strings.TrimSpace(f.Search); term != "" {
		like := "%" + escapeLike(term) + "%"
		q = q.Where(squirrel.Or{
			squirrel.Expr("d.order_number::text LIKE ?", like),
			squirrel.ILike{"c.name": like},
		})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list deliveries: %w", err)
	}
	out := make([]domain.Delivery, 0)
	if err := pgxscan.Select(ctx, r.db, &out, sql, args...); err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	return out, nil
}

// Create - inserts a delivery and returns its id.
func (r *DeliveryRepo) Create(ctx context.Context, d *domain.Delivery) (int64, error) {
	sql, args, err := psql.Insert("deliveries").
		Columns("user_id", "order_number", "order_date", "promised_date", "customer_id", "courier_id",
			"description", "value", "status", "delivered_at", "origin", "destination",
			"dest_lat", "dest_lng", "tracking_enabled", "tracking_code", "note").
		Values(d.OwnerID, d.OrderNumber, d.OrderDate, d.PromisedDate, d.CustomerID, nullID(d.CourierID),
			d.Description, d.Value, string(d.Status), d.DeliveredAt, d.Origin, d.Destination,
			d.DestLat, d.DestLng, d.TrackingEnabled, d.TrackingCode, d.Note).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build create delivery: %w", err)
	}
	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, mapWriteErr("create delivery", err)
	}
	return id, nil
}

// UpdatePartial applies a partial update and returns true if a row was affected.
func (r *DeliveryRepo) UpdatePartial(ctx context.Context, u domain.PartialDeliveryUpdate) (bool, error) {
	set := map[string]any{}
	if u.OrderDate != nil {
		set["order_date"] = *u.OrderDate
	}
	if u.PromisedDate != nil {
		set["promised_date"] = *u.PromisedDate
	}
	if u.CustomerID != nil {
		set["customer_id"] = *u.CustomerID
	}
	if u.CourierID != nil {
		set["courier_id"] = nullID(*u.CourierID)
	}
	putString(set, "description", u.Description)
	if u.Value != nil {
		set["value"] = *u.Value
	}
	if u.Status != nil {
		set["status"] = string(*u.Status)
	}
	if u.DeliveredAt != nil {
		set["delivered_at"] = *u.DeliveredAt
	}
	putString(set, "origin", u.Origin)
	putString(set, "destination", u.Destination)
	if u.DestLat != nil {
		set["dest_lat"] = *u.DestLat
	}
	if u.DestLng != nil {
		set["dest_lng"] = *u.DestLng
	}
	if u.TrackingEnabled != nil {
		set["tracking_enabled"] = *u.TrackingEnabled
	}
	putString(set, "tracking_code", u.TrackingCode)
	putString(set, "note", u.Note)
	if len(set) == 0 {
		return false, apperr.ErrInvalid
	}

	sql, args, err := psql.Update("deliveries").SetMap(set).Where(squirrel.Eq{"id": u.ID}).ToSql()
	if err != nil {
		return false, fmt.Errorf("build update delivery: %w", err)
	}
	ct, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, mapWriteErr(fmt.Sprintf("update delivery %d", u.ID), err)
	}
	return ct.RowsAffected() > 0, nil
}

// Delete removes a delivery and its tracking pings.
func (r *DeliveryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM deliveries WHERE id = $1`, id)
	if err != nil {
		return false, mapWriteErr(fmt.Sprintf("delete delivery %d", id), err)
	}
	return ct.RowsAffected() > 0, nil
}

// nullID maps the zero id to SQL NULL.
func nullID(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
