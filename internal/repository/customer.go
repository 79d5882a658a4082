package repository

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"logistics-backoffice/internal/apperr"
	"logistics-backoffice/internal/domain"
)

var customerColumns = []string{
	"id", "user_id", "name", "cpf", "cnpj", "phone", "email", "address",
	"district", "city", "state", "postal_code", "note", "created_at",
}

// CustomerRepo represents customer repository.
type CustomerRepo struct{ db *pgxpool.Pool }

// NewCustomerRepo creates a new CustomerRepo.
func NewCustomerRepo(db *pgxpool.Pool) *CustomerRepo { return &CustomerRepo{db: db} }

// Get - returns customer by its ID, or nil when absent.
func (r *CustomerRepo) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	sql, args, err := psql.Select(customerColumns...).From("customers").Where("id = ?", id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get customer: %w", err)
	}
	var c domain.Customer
	if err := pgxscan.Get(ctx, r.db, &c, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer %d: %w", id, err)
	}
	return &c, nil
}

// List returns all customers, newest first.
func (r *CustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	sql, args, err := psql.Select(customerColumns...).From("customers").OrderBy("created_at DESC", "id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list customers: %w", err)
	}
	out := make([]domain.Customer, 0)
	if err := pgxscan.Select(ctx, r.db, &out, sql, args...); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return out, nil
}

// Create - inserts a customer and returns its id.
func (r *CustomerRepo) Create(ctx context.Context, c *domain.Customer) (int64, error) {
	sql, args, err := psql.Insert("customers").
		Columns("user_id", "name", "cpf", "cnpj", "phone", "email", "address",
			"district", "city", "state", "postal_code", "note").
		Values(c.OwnerID, c.Name, c.CPF, c.CNPJ, c.Phone, c.Email, c.Address,
			c.District, c.City, c.State, c.PostalCode, c.Note).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build create customer: %w", err)
	}
	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, mapWriteErr("create customer", err)
	}
	return id, nil
}

// UpdatePartial applies a partial update and returns true if a row was affected.
func (r *CustomerRepo) UpdatePartial(ctx context.Context, u domain.PartialCustomerUpdate) (bool, error) {
	set := map[string]any{}
	putString(set, "name", u.Name)
	putString(set, "cpf", u.CPF)
	putString(set, "cnpj", u.CNPJ)
	putString(set, "phone", u.Phone)
	putString(set, "email", u.Email)
	putString(set, "address", u.Address)
	putString(set, "district", u.District)
	putString(set, "city", u.City)
	putString(set, "state", u.State)
	putString(set, "postal_code", u.PostalCode)
	putString(set, "note", u.Note)
	if len(set) == 0 {
		return false, apperr.ErrInvalid
	}

	sql, args, err := psql.Update("customers").SetMap(set).Where("id = ?", u.ID).ToSql()
	if err != nil {
		return false, fmt.Errorf("build update customer: %w", err)
	}
	ct, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, mapWriteErr(fmt.Sprintf("update customer %d", u.ID), err)
	}
	return ct.RowsAffected() > 0, nil
}

// Delete removes a customer and reports whether it existed.
func (r *CustomerRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return false, mapWriteErr(fmt.Sprintf("delete customer %d", id), err)
	}
	return ct.RowsAffected() > 0, nil
}

func putString(set map[string]any, col string, v *string) {
	if v != nil {
		set[col] = *v
	}
}
