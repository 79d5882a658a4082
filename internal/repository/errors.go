package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"logistics-backoffice/internal/apperr"
)

// IsDuplicate - signals that the error is a duplicate key violation.
func IsDuplicate(err error) bool {
	return hasCode(err, pgerrcode.UniqueViolation)
}

// IsForeignKey - signals that the error references a missing or still-referenced row.
func IsForeignKey(err error) bool {
	return hasCode(err, pgerrcode.ForeignKeyViolation)
}

// IsCheck - signals a check constraint violation.
func IsCheck(err error) bool {
	return hasCode(err, pgerrcode.CheckViolation)
}

// IsNotFound - signals that the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func hasCode(err error, code string) bool {
	var pgerr *pgconn.PgError
	return errors.As(err, &pgerr) && pgerr.Code == code
}

// mapWriteErr translates constraint violations into apperr sentinels.
func mapWriteErr(op string, err error) error {
	switch {
	case IsDuplicate(err):
		return fmt.Errorf("%s: %w", op, apperr.ErrConflict)
	case IsForeignKey(err), IsCheck(err):
		return fmt.Errorf("%s: %w", op, apperr.ErrInvalid)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
