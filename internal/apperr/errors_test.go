package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidationError_IsInvalid(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("create customer: %w", NewValidation("cpf", "invalid"))
	require.ErrorIs(t, err, ErrInvalid)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Equal(t, "invalid", ve.Fields["cpf"])
}

func TestValidationError_MessageIsSorted(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Fields: map[string]string{"b": "two", "a": "one"}}
	require.Equal(t, "invalid input: a: one; b: two", err.Error())
	require.Equal(t, "invalid input", (&ValidationError{}).Error())
}
