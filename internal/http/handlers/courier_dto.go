package handlers

import (
	"time"

	"logistics-backoffice/internal/domain"
)

type courierDTO struct {
	ID            int64                `json:"id"`
	Name          string               `json:"name"`
	Phone         string               `json:"phone"`
	Email         string               `json:"email"`
	VehicleModel  string               `json:"vehicle_model"`
	VehiclePlate  string               `json:"vehicle_plate"`
	LicenseNumber string               `json:"license_number"`
	LicenseExpiry Date                 `json:"license_expiry"`
	LicenseStatus domain.LicenseStatus `json:"license_status"`
	Note          *string              `json:"note,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

type createCourierRequest struct {
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	VehicleModel  string  `json:"vehicle_model"`
	VehiclePlate  string  `json:"vehicle_plate"`
	LicenseNumber string  `json:"license_number"`
	LicenseExpiry Date    `json:"license_expiry"`
	Note          *string `json:"note"`
}

type updateCourierRequest struct {
	Name          *string `json:"name,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	VehicleModel  *string `json:"vehicle_model,omitempty"`
	VehiclePlate  *string `json:"vehicle_plate,omitempty"`
	LicenseNumber *string `json:"license_number,omitempty"`
	LicenseExpiry *Date   `json:"license_expiry,omitempty"`
	Note          *string `json:"note,omitempty"`
}

func (req createCourierRequest) toModel() *domain.Courier {
	return &domain.Courier{
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		VehicleModel:  req.VehicleModel,
		VehiclePlate:  req.VehiclePlate,
		LicenseNumber: req.LicenseNumber,
		LicenseExpiry: req.LicenseExpiry.Time,
		Note:          req.Note,
	}
}

func (req updateCourierRequest) toModel(id int64) domain.PartialCourierUpdate {
	return domain.PartialCourierUpdate{
		ID:            id,
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		VehicleModel:  req.VehicleModel,
		VehiclePlate:  req.VehiclePlate,
		LicenseNumber: req.LicenseNumber,
		LicenseExpiry: datePtr(req.LicenseExpiry),
		Note:          req.Note,
	}
}

func courierToResponse(c domain.Courier) courierDTO {
	return courierDTO{
		ID:            c.ID,
		Name:          c.Name,
		Phone:         c.Phone,
		Email:         c.Email,
		VehicleModel:  c.VehicleModel,
		VehiclePlate:  c.VehiclePlate,
		LicenseNumber: c.LicenseNumber,
		LicenseExpiry: Date{c.LicenseExpiry},
		LicenseStatus: c.LicenseStatus,
		Note:          c.Note,
		CreatedAt:     c.CreatedAt,
	}
}

func couriersToResponse(list []domain.Courier) []courierDTO {
	out := make([]courierDTO, 0, len(list))
	for _, c := range list {
		out = append(out, courierToResponse(c))
	}
	return out
}
