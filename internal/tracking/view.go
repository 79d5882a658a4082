package tracking

import (
	"time"

	"logistics-backoffice/internal/domain"
)

// MarkerKind distinguishes map pins.
type MarkerKind string

// Marker kinds.
const (
	MarkerOrigin      MarkerKind = "origin"
	MarkerDestination MarkerKind = "destination"
	MarkerVehicle     MarkerKind = "vehicle"
)

// Marker is one pin on the map.
type Marker struct {
	Kind       MarkerKind   `json:"kind"`
	DeliveryID int64        `json:"delivery_id"`
	Position   domain.Point `json:"position"`
	Label      string       `json:"label"`
	UpdatedAt  *time.Time   `json:"updated_at,omitempty"`
}

// RouteView is a drawn path with its summary.
type RouteView struct {
	DeliveryID int64          `json:"delivery_id"`
	Distance   string         `json:"distance"`
	Duration   string         `json:"duration"`
	Path       []domain.Point `json:"path"`
}

// Bounds is the bounding box of the visible markers.
type Bounds struct {
	SouthWest domain.Point `json:"south_west"`
	NorthEast domain.Point `json:"north_east"`
}

// Item summarises a tracked delivery for the side panel.
type Item struct {
	DeliveryID  int64  `json:"delivery_id"`
	OrderNumber int64  `json:"order_number"`
	CourierID   int64  `json:"courier_id"`
	CourierName string `json:"courier_name"`
	Description string `json:"description"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Live        bool   `json:"live"`
}

// View is a render of the map.
type View struct {
	Version    uint64      `json:"version"`
	Deliveries []Item      `json:"deliveries"`
	Markers    []Marker    `json:"markers"`
	Routes     []RouteView `json:"routes"`
	Bounds     *Bounds     `json:"bounds,omitempty"`
}

func (v *View) extend(p domain.Point) {
	if v.Bounds == nil {
		v.Bounds = &Bounds{SouthWest: p, NorthEast: p}
		return
	}
	b := v.Bounds
	b.SouthWest.Lat = min(b.SouthWest.Lat, p.Lat)
	b.SouthWest.Lng = min(b.SouthWest.Lng, p.Lng)
	b.NorthEast.Lat = max(b.NorthEast.Lat, p.Lat)
	b.NorthEast.Lng = max(b.NorthEast.Lng, p.Lng)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
