package credit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines credit request data access
type Repository interface {
	Insert(ctx context.Context, userID uuid.UUID, amount int64) (*CreditRequest, error)
	GetByID(ctx context.Context, id int64) (*CreditRequest, error)
	GetForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (*CreditRequest, error)
	MarkApproved(ctx context.Context, tx *sqlx.Tx, id int64, notes string) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]CreditRequest, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new credit request repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Insert creates a new PENDING, unprocessed request. Pure insert, no lock.
func (r *repository) Insert(ctx context.Context, userID uuid.UUID, amount int64) (*CreditRequest, error) {
	req := CreditRequest{
		UserID:    userID,
		Amount:    amount,
		Status:    StatusPending,
		Processed: false,
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO credit_requests (user_id, amount, status, processed)
		VALUES ($1, $2, $3, FALSE)
		RETURNING id, admin_notes, created_at, updated_at
	`, userID, amount, StatusPending).Scan(&req.ID, &req.AdminNotes, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("credit repository insert: %w", err)
	}

	return &req, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*CreditRequest, error) {
	var req CreditRequest
	err := r.db.GetContext(ctx, &req, `
		SELECT id, user_id, amount, status, processed, admin_notes, created_at, updated_at
		FROM credit_requests WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("credit repository get: %w", err)
	}

	return &req, nil
}

// GetForUpdate loads the request while holding an exclusive lock on its
// row until the enclosing transaction commits or rolls back.
func (r *repository) GetForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (*CreditRequest, error) {
	var req CreditRequest
	err := tx.GetContext(ctx, &req, `
		SELECT id, user_id, amount, status, processed, admin_notes, created_at, updated_at
		FROM credit_requests WHERE id = $1
		FOR UPDATE
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("credit repository lock row: %w", err)
	}

	return &req, nil
}

// MarkApproved moves the request to its terminal state within the
// caller's transaction.
func (r *repository) MarkApproved(ctx context.Context, tx *sqlx.Tx, id int64, notes string) error {
	result, err := tx.ExecContext(ctx, `
		UPDATE credit_requests
		SET status = $2, processed = TRUE, admin_notes = $3, updated_at = now()
		WHERE id = $1
	`, id, StatusApproved, notes)
	if err != nil {
		return fmt.Errorf("credit repository mark approved: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("credit repository rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]CreditRequest, error) {
	requests := make([]CreditRequest, 0)
	err := r.db.SelectContext(ctx, &requests, `
		SELECT id, user_id, amount, status, processed, admin_notes, created_at, updated_at
		FROM credit_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("credit repository list by user: %w", err)
	}

	return requests, nil
}
