package handlers

import (
	"time"

	"logistics-backoffice/internal/domain"
)

type deliveryDTO struct {
	ID              int64                 `json:"id"`
	OrderNumber     int64                 `json:"order_number"`
	OrderDate       Date                  `json:"order_date"`
	PromisedDate    Date                  `json:"promised_date"`
	CustomerID      int64                 `json:"customer_id"`
	CustomerName    string                `json:"customer_name"`
	CustomerState   string                `json:"customer_state"`
	CourierID       *int64                `json:"courier_id"`
	CourierName     string                `json:"courier_name,omitempty"`
	Description     string                `json:"description"`
	Value           float64               `json:"value"`
	Status          domain.DeliveryStatus `json:"status"`
	StatusLabel     string                `json:"status_label"`
	Deadline        domain.DeadlineStatus `json:"deadline_status"`
	MaxDays         int                   `json:"max_days"`
	ElapsedDays     int                   `json:"elapsed_days"`
	DeliveredAt     *Date                 `json:"delivered_at,omitempty"`
	Origin          *string               `json:"origin,omitempty"`
	Destination     *string               `json:"destination,omitempty"`
	DestLat         *float64              `json:"dest_lat,omitempty"`
	DestLng         *float64              `json:"dest_lng,omitempty"`
	TrackingEnabled bool                  `json:"tracking_enabled"`
	TrackingCode    *string               `json:"tracking_code,omitempty"`
	Note            *string               `json:"note,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
}

type createDeliveryRequest struct {
	OrderNumber     int64                 `json:"order_number"`
	OrderDate       Date                  `json:"order_date"`
	PromisedDate    Date                  `json:"promised_date"`
	CustomerID      int64                 `json:"customer_id"`
	CourierID       *int64                `json:"courier_id"`
	Description     string                `json:"description"`
	Value           float64               `json:"value"`
	Status          domain.DeliveryStatus `json:"status"`
	Origin          *string               `json:"origin"`
	Destination     *string               `json:"destination"`
	DestLat         *float64              `json:"dest_lat"`
	DestLng         *float64              `json:"dest_lng"`
	TrackingEnabled bool                  `json:"tracking_enabled"`
	TrackingCode    *string               `json:"tracking_code"`
	Note            *string               `json:"note"`
}

type updateDeliveryRequest struct {
	OrderDate       *Date                  `json:"order_date,omitempty"`
	PromisedDate    *Date                  `json:"promised_date,omitempty"`
	CustomerID      *int64                 `json:"customer_id,omitempty"`
	CourierID       *int64                 `json:"courier_id,omitempty"`
	Description     *string                `json:"description,omitempty"`
	Value           *float64               `json:"value,omitempty"`
	Status          *domain.DeliveryStatus `json:"status,omitempty"`
	DeliveredAt     *Date                  `json:"delivered_at,omitempty"`
	Origin          *string                `json:"origin,omitempty"`
	Destination     *string                `json:"destination,omitempty"`
	DestLat         *float64               `json:"dest_lat,omitempty"`
	DestLng         *float64               `json:"dest_lng,omitempty"`
	TrackingEnabled *bool                  `json:"tracking_enabled,omitempty"`
	TrackingCode    *string                `json:"tracking_code,omitempty"`
	Note            *string                `json:"note,omitempty"`
}

func (req createDeliveryRequest) toModel() *domain.Delivery {
	d := &domain.Delivery{
		OrderNumber:     req.OrderNumber,
		OrderDate:       req.OrderDate.Time,
		PromisedDate:    req.PromisedDate.Time,
		CustomerID:      req.CustomerID,
		Description:     req.Description,
		Value:           req.Value,
		Status:          req.Status,
		Origin:          req.Origin,
		Destination:     req.Destination,
		DestLat:         req.DestLat,
		DestLng:         req.DestLng,
		TrackingEnabled: req.TrackingEnabled,
		TrackingCode:    req.TrackingCode,
		Note:            req.Note,
	}
	if req.CourierID != nil {
		d.CourierID = *req.CourierID
	}
	return d
}

// toModel maps the body onto a partial update; courier_id 0 unassigns.
func (req updateDeliveryRequest) toModel(id int64) domain.PartialDeliveryUpdate {
	return domain.PartialDeliveryUpdate{
		ID:              id,
		OrderDate:       datePtr(req.OrderDate),
		PromisedDate:    datePtr(req.PromisedDate),
		CustomerID:      req.CustomerID,
		CourierID:       req.CourierID,
		Description:     req.Description,
		Value:           req.Value,
		Status:          req.Status,
		DeliveredAt:     datePtr(req.DeliveredAt),
		Origin:          req.Origin,
		Destination:     req.Destination,
		DestLat:         req.DestLat,
		DestLng:         req.DestLng,
		TrackingEnabled: req.TrackingEnabled,
		TrackingCode:    req.TrackingCode,
		Note:            req.Note,
	}
}

func deliveryToResponse(d domain.Delivery, now time.Time) deliveryDTO {
	out := deliveryDTO{
		ID:              d.ID,
		OrderNumber:     d.OrderNumber,
		OrderDate:       Date{d.OrderDate},
		PromisedDate:    Date{d.PromisedDate},
		CustomerID:      d.CustomerID,
		CustomerName:    d.CustomerName,
		CustomerState:   d.CustomerState,
		CourierName:     d.CourierName,
		Description:     d.Description,
		Value:           d.Value,
		Status:          d.Status,
		StatusLabel:     d.Status.Label(),
		Deadline:        d.DeadlineStatus(now),
		MaxDays:         d.MaxDays(),
		ElapsedDays:     d.ElapsedDays(now),
		DeliveredAt:     dateOrNil(d.DeliveredAt),
		Origin:          d.Origin,
		Destination:     d.Destination,
		DestLat:         d.DestLat,
		DestLng:         d.DestLng,
		TrackingEnabled: d.TrackingEnabled,
		TrackingCode:    d.TrackingCode,
		Note:            d.Note,
		CreatedAt:       d.CreatedAt,
	}
	if d.CourierID > 0 {
		id := d.CourierID
		out.CourierID = &id
	}
	return out
}

func deliveriesToResponse(list []domain.Delivery, now time.Time) []deliveryDTO {
	out := make([]deliveryDTO, 0, len(list))
	for _, d := range list {
		out = append(out, deliveryToResponse(d, now))
	}
	return out
}
