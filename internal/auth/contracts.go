//go:generate mockgen -source=contracts.go -destination=auth_mocks_test.go -package=auth

package auth

import (
	"context"

	"logistics-backoffice/internal/domain"
)

type userStore interface {
	Create(ctx context.Context, u *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
