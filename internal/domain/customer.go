package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a delivery recipient, either a person (CPF) or a company (CNPJ).
type Customer struct {
	ID         int64     `db:"id"`
	OwnerID    uuid.UUID `db:"user_id"`
	Name       string    `db:"name" validate:"notblank"`
	CPF        *string   `db:"cpf" validate:"omitnil,cpf"`
	CNPJ       *string   `db:"cnpj" validate:"omitnil,cnpj"`
	Phone      string    `db:"phone"`
	Email      string    `db:"email" validate:"omitempty,email"`
	Address    string    `db:"address"`
	District   string    `db:"district"`
	City       string    `db:"city"`
	State      string    `db:"state" validate:"omitempty,uf"`
	PostalCode string    `db:"postal_code" validate:"omitempty,cep"`
	Note       *string   `db:"note"`
	CreatedAt  time.Time `db:"created_at"`
}

// IsCompany reports whether the customer is identified by a company tax id.
func (c *Customer) IsCompany() bool {
	return c.CNPJ != nil && *c.CNPJ != ""
}

// PartialCustomerUpdate carries optional fields to update a customer.
type PartialCustomerUpdate struct {
	ID         int64
	Name       *string `validate:"omitnil,notblank"`
	CPF        *string `validate:"omitnil,cpf"`
	CNPJ       *string `validate:"omitnil,cnpj"`
	Phone      *string
	Email      *string `validate:"omitnil,email_or_blank"`
	Address    *string
	District   *string
	City       *string
	State      *string `validate:"omitnil,uf_or_blank"`
	PostalCode *string `validate:"omitnil,cep_or_blank"`
	Note       *string
}

// Empty reports whether no field is set.
func (u PartialCustomerUpdate) Empty() bool {
	return u.Name == nil && u.CPF == nil && u.CNPJ == nil && u.Phone == nil && u.Email == nil &&
		u.Address == nil && u.District == nil && u.City == nil && u.State == nil &&
		u.PostalCode == nil && u.Note == nil
}

// Address is a postal address resolved from a postal code.
type Address struct {
	Street     string `json:"street"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}
