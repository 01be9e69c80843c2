package phone

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Repository defines phone number data access.
//
// CurrentCharge is only ever mutated through a row held via GetForUpdate
// inside the caller's transaction.
type Repository interface {
	Create(ctx context.Context, p *PhoneNumber) error
	ListActive(ctx context.Context) ([]PhoneNumber, error)
	GetByID(ctx context.Context, id int64) (*PhoneNumber, error)
	GetForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (*PhoneNumber, error)
	SaveCharge(ctx context.Context, tx *sqlx.Tx, id int64, charge int64) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new phone number repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const pqUniqueViolation = "23505"

func (r *repository) Create(ctx context.Context, p *PhoneNumber) error {
	query := `
		INSERT INTO phone_numbers (number, title, is_active, current_charge)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query, p.Number, p.Title, p.IsActive, p.CurrentCharge).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return ErrNumberTaken
		}
		return fmt.Errorf("phone repository create: %w", err)
	}

	return nil
}

func (r *repository) ListActive(ctx context.Context) ([]PhoneNumber, error) {
	phones := make([]PhoneNumber, 0)
	err := r.db.SelectContext(ctx, &phones, `
		SELECT id, number, title, is_active, current_charge, created_at, updated_at
		FROM phone_numbers
		WHERE is_active = TRUE
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("phone repository list active: %w", err)
	}

	return phones, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*PhoneNumber, error) {
	var p PhoneNumber
	err := r.db.GetContext(ctx, &p, `
		SELECT id, number, title, is_active, current_charge, created_at, updated_at
		FROM phone_numbers WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("phone repository get: %w", err)
	}

	return &p, nil
}

// GetForUpdate loads the phone number while holding an exclusive lock on
// its row until the enclosing transaction commits or rolls back.
func (r *repository) GetForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (*PhoneNumber, error) {
	var p PhoneNumber
	err := tx.GetContext(ctx, &p, `
		SELECT id, number, title, is_active, current_charge, created_at, updated_at
		FROM phone_numbers WHERE id = $1
		FOR UPDATE
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("phone repository lock row: %w", err)
	}

	return &p, nil
}

// SaveCharge persists a new accrued charge within the caller's transaction.
func (r *repository) SaveCharge(ctx context.Context, tx *sqlx.Tx, id int64, charge int64) error {
	result, err := tx.ExecContext(ctx, `
		UPDATE phone_numbers SET current_charge = $2, updated_at = now() WHERE id = $1
	`, id, charge)
	if err != nil {
		return fmt.Errorf("phone repository save charge: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("phone repository rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
