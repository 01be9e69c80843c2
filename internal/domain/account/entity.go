package account

import (
	"time"

	"github.com/google/uuid"
)

// Account holds a prepaid credit balance. Credit is denominated in the
// ledger's base unit and never goes negative at any committed state.
type Account struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FullName     string    `db:"full_name"`
	IsActive     bool      `db:"is_active"`
	IsSuperuser  bool      `db:"is_superuser"`
	Credit       int64     `db:"credit"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
