package sale

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines charge sale data access
type Repository interface {
	Insert(ctx context.Context, tx *sqlx.Tx, s *ChargeSale) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]ChargeSale, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new charge sale repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Insert records a sale within the caller's transaction so the record,
// the debit and the phone credit become visible together or not at all.
func (r *repository) Insert(ctx context.Context, tx *sqlx.Tx, s *ChargeSale) error {
	err := tx.QueryRowContext(ctx, `
		INSERT INTO charge_sales (user_id, phone_number_id, amount, status, processed, api_response, admin_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, s.UserID, s.PhoneNumberID, s.Amount, s.Status, s.Processed, s.APIResponse, s.AdminNotes).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("sale repository insert: %w", err)
	}

	return nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]ChargeSale, error) {
	sales := make([]ChargeSale, 0)
	err := r.db.SelectContext(ctx, &sales, `
		SELECT id, user_id, phone_number_id, amount, status, processed, api_response, admin_notes, created_at, updated_at
		FROM charge_sales
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("sale repository list by user: %w", err)
	}

	return sales, nil
}
