package credit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/telcharge/telcharge-api/internal/domain/account"
	"github.com/telcharge/telcharge-api/internal/pkg/database"
)

// Service creates pending credit requests and approves them, crediting
// the requesting account exactly once per request.
type Service struct {
	db          *sqlx.DB
	repo        Repository
	accountRepo account.Repository
}

// NewService creates credit request service
func NewService(db *sqlx.DB, repo Repository, accountRepo account.Repository) *Service {
	return &Service{db: db, repo: repo, accountRepo: accountRepo}
}

// Create inserts a new PENDING credit request. No lock is taken.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, amount int64) (*CreditRequest, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	req, err := s.repo.Insert(ctx, userID, amount)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("request_id", req.ID).
		Str("user_id", userID.String()).
		Int64("amount", amount).
		Msg("credit request created")

	return req, nil
}

// Approve moves a request to APPROVED and credits the owning account,
// all in one transaction. A request is credited at most once: a second
// approval, concurrent or repeated, gets ErrAlreadyProcessed.
//
// Lock order is fixed for every caller: request row, then account row.
func (s *Service) Approve(ctx context.Context, requestID int64, approverID uuid.UUID) (*CreditRequest, error) {
	var approved *CreditRequest

	err := database.Transact(ctx, s.db, func(tx *sqlx.Tx) error {
		req, err := s.repo.GetForUpdate(ctx, tx, requestID)
		if err != nil {
			return err
		}

		if req.Processed {
			return ErrAlreadyProcessed
		}

		acct, err := s.accountRepo.GetForUpdate(ctx, tx, req.UserID)
		if err != nil {
			return err
		}

		notes := fmt.Sprintf("approved by %s", approverID)
		if err := s.repo.MarkApproved(ctx, tx, req.ID, notes); err != nil {
			return err
		}

		if err := s.accountRepo.SaveCredit(ctx, tx, acct.ID, acct.Credit+req.Amount); err != nil {
			return err
		}

		req.Status = StatusApproved
		req.Processed = true
		req.AdminNotes = notes
		approved = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("request_id", approved.ID).
		Str("user_id", approved.UserID.String()).
		Str("approver_id", approverID.String()).
		Int64("amount", approved.Amount).
		Msg("credit request approved")

	return approved, nil
}

// ListByUser returns the user's credit requests, newest first.
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) ([]CreditRequest, error) {
	return s.repo.ListByUser(ctx, userID)
}
