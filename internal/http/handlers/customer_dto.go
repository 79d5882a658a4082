package handlers

import (
	"time"

	"logistics-backoffice/internal/domain"
)

type customerDTO struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	CPF        *string   `json:"cpf,omitempty"`
	CNPJ       *string   `json:"cnpj,omitempty"`
	Company    bool      `json:"company"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Address    string    `json:"address"`
	District   string    `json:"district"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postal_code"`
	Note       *string   `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type createCustomerRequest struct {
	Name       string  `json:"name"`
	CPF        *string `json:"cpf"`
	CNPJ       *string `json:"cnpj"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	Address    string  `json:"address"`
	District   string  `json:"district"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postal_code"`
	Note       *string `json:"note"`
}

type updateCustomerRequest struct {
	Name       *string `json:"name,omitempty"`
	CPF        *string `json:"cpf,omitempty"`
	CNPJ       *string `json:"cnpj,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
	Address    *string `json:"address,omitempty"`
	District   *string `json:"district,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Note       *string `json:"note,omitempty"`
}

func (req createCustomerRequest) toModel() *domain.Customer {
	return &domain.Customer{
		Name:       req.Name,
		CPF:        req.CPF,
		CNPJ:       req.CNPJ,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		District:   req.District,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Note:       req.Note,
	}
}

func (req updateCustomerRequest) toModel(id int64) domain.PartialCustomerUpdate {
	return domain.PartialCustomerUpdate{
		ID:         id,
		Name:       req.Name,
		CPF:        req.CPF,
		CNPJ:       req.CNPJ,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		District:   req.District,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Note:       req.Note,
	}
}

func customerToResponse(c domain.Customer) customerDTO {
	return customerDTO{
		ID:         c.ID,
		Name:       c.Name,
		CPF:        c.CPF,
		CNPJ:       c.CNPJ,
		Company:    c.IsCompany(),
		Phone:      c.Phone,
		Email:      c.Email,
		Address:    c.Address,
		District:   c.District,
		City:       c.City,
		State:      c.State,
		PostalCode: c.PostalCode,
		Note:       c.Note,
		CreatedAt:  c.CreatedAt,
	}
}

func customersToResponse(list []domain.Customer) []customerDTO {
	out := make([]customerDTO, 0, len(list))
	for _, c := range list {
		out = append(out, customerToResponse(c))
	}
	return out
}
