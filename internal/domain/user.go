package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an authenticated back-office account. Customers, couriers and
// deliveries are owned by the account that created them.
type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
