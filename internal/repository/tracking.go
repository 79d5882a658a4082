package repository

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"logistics-backoffice/internal/domain"
)

// TrackingRepo stores courier position pings.
type TrackingRepo struct{ db *pgxpool.Pool }

// NewTrackingRepo creates a new TrackingRepo.
func NewTrackingRepo(db *pgxpool.Pool) *TrackingRepo { return &TrackingRepo{db: db} }

// Insert appends a ping and returns its id.
func (r *TrackingRepo) Insert(ctx context.Context, p domain.TrackingPing) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO tracking_pings(delivery_id, lat, lng, recorded_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		p.DeliveryID, p.Lat, p.Lng, p.At,
	).Scan(&id)
	if err != nil {
		return 0, mapWriteErr(fmt.Sprintf("insert ping for delivery %d", p.DeliveryID), err)
	}
	return id, nil
}

// Latest returns the newest ping of a delivery, or nil when it has none.
func (r *TrackingRepo) Latest(ctx context.Context, deliveryID int64) (*domain.TrackingPing, error) {
	var p domain.TrackingPing
	err := pgxscan.Get(ctx, r.db, &p, `
        SELECT id, delivery_id, lat, lng, recorded_at
          FROM tracking_pings
         WHERE delivery_id = $1
         ORDER BY recorded_at DESC, id DESC
         LIMIT 1`, deliveryID)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest ping for delivery %d: %w", deliveryID, err)
	}
	return &p, nil
}

// LatestFor returns the newest ping of each listed delivery, keyed by delivery id.
func (r *TrackingRepo) LatestFor(ctx context.Context, deliveryIDs []int64) (map[int64]domain.TrackingPing, error) {
	out := make(map[int64]domain.TrackingPing, len(deliveryIDs))
	if len(deliveryIDs) == 0 {
		return out, nil
	}
	var rows []domain.TrackingPing
	err := pgxscan.Select(ctx, r.db, &rows, `
        SELECT DISTINCT ON (delivery_id) id, delivery_id, lat, lng, recorded_at
          FROM tracking_pings
         WHERE delivery_id = ANY($1)
         ORDER BY delivery_id, recorded_at DESC, id DESC`, deliveryIDs)
	if err != nil {
		return nil, fmt.Errorf("latest pings: %w", err)
	}
	for _, p := range rows {
		out[p.DeliveryID] = p
	}
	return out, nil
}
