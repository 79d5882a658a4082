//go:build integration

package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"logistics-backoffice/internal/apperr"
	"logistics-backoffice/internal/domain"
	"logistics-backoffice/internal/repository"
)

func TestUserRepo_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserRepo(tcPool)

	email := "user-" + uuid.NewString() + "@example.com"
	u := &domain.User{ID: uuid.New(), Email: email, PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.FindByEmail(ctx, email)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, u.ID, got.ID)

	err = repo.Create(ctx, &domain.User{ID: uuid.New(), Email: email, PasswordHash: "hash"})
	require.ErrorIs(t, err, apperr.ErrConflict)

	missing, err := repo.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, missing)
}
