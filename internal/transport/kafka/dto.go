package kafka

import (
	"time"

	"logistics-backoffice/internal/service/pings"
)

// PingDTO is the wire form of a courier position sample.
type PingDTO struct {
	DeliveryID int64     `json:"delivery_id"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	Timestamp  time.Time `json:"timestamp"`
}

// ToDomain converts PingDTO to pings.Event.
func ToDomain(dto PingDTO) pings.Event {
	return pings.Event{
		DeliveryID: dto.DeliveryID,
		Lat:        dto.Lat,
		Lng:        dto.Lng,
		At:         dto.Timestamp.UTC(),
	}
}
