package domain

import "time"

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TrackingPing is a single timestamped courier position sample. Pings are
// append-only; the newest per delivery is the current position.
type TrackingPing struct {
	ID         int64     `db:"id"`
	DeliveryID int64     `db:"delivery_id"`
	Lat        float64   `db:"lat"`
	Lng        float64   `db:"lng"`
	At         time.Time `db:"recorded_at"`
}

// Point returns the ping position.
func (p TrackingPing) Point() Point { return Point{Lat: p.Lat, Lng: p.Lng} }
