package pings

import "time"

// Event is a courier position sample reported by the driver app.
type Event struct {
	DeliveryID int64
	Lat        float64
	Lng        float64
	At         time.Time
}
