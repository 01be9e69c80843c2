package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Repository defines account data access.
//
// Credit is only ever mutated through a row held via GetForUpdate inside
// the caller's transaction; plain reads may observe slightly stale data.
type Repository interface {
	Create(ctx context.Context, acct *Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetForUpdate(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*Account, error)
	SaveCredit(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, credit int64) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new account repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const pqUniqueViolation = "23505"

func (r *repository) Create(ctx context.Context, acct *Account) error {
	query := `
		INSERT INTO accounts (id, email, password_hash, full_name, is_active, is_superuser, credit)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		acct.ID,
		acct.Email,
		acct.PasswordHash,
		acct.FullName,
		acct.IsActive,
		acct.IsSuperuser,
		acct.Credit,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return ErrEmailTaken
		}
		return fmt.Errorf("account repository create: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	query := `
		SELECT id, email, password_hash, full_name, is_active, is_superuser, credit, created_at, updated_at
		FROM accounts WHERE id = $1
	`
	var acct Account
	err := r.db.GetContext(ctx, &acct, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("account repository get: %w", err)
	}

	return &acct, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	query := `
		SELECT id, email, password_hash, full_name, is_active, is_superuser, credit, created_at, updated_at
		FROM accounts WHERE email = $1
	`
	var acct Account
	err := r.db.GetContext(ctx, &acct, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("account repository get by email: %w", err)
	}

	return &acct, nil
}

// GetForUpdate loads the account while holding an exclusive lock on its
// row until the enclosing transaction commits or rolls back.
func (r *repository) GetForUpdate(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*Account, error) {
	query := `
		SELECT id, email, password_hash, full_name, is_active, is_superuser, credit, created_at, updated_at
		FROM accounts WHERE id = $1
		FOR UPDATE
	`
	var acct Account
	err := tx.GetContext(ctx, &acct, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("account repository lock row: %w", err)
	}

	return &acct, nil
}

// SaveCredit persists a new credit balance within the caller's transaction.
func (r *repository) SaveCredit(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, credit int64) error {
	result, err := tx.ExecContext(ctx, `
		UPDATE accounts SET credit = $2, updated_at = now() WHERE id = $1
	`, id, credit)
	if err != nil {
		return fmt.Errorf("account repository save credit: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("account repository rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
