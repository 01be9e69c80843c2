package sale

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/telcharge/telcharge-api/internal/domain/account"
	"github.com/telcharge/telcharge-api/internal/domain/phone"
	"github.com/telcharge/telcharge-api/internal/pkg/database"
)

// Service atomically debits an account and credits a phone number,
// recording the sale. The amount debited always equals the amount
// credited; a sale never creates or destroys credit.
type Service struct {
	db          *sqlx.DB
	repo        Repository
	accountRepo account.Repository
	phoneRepo   phone.Repository
}

// NewService creates charge sale service
func NewService(db *sqlx.DB, repo Repository, accountRepo account.Repository, phoneRepo phone.Repository) *Service {
	return &Service{db: db, repo: repo, accountRepo: accountRepo, phoneRepo: phoneRepo}
}

// Create performs one charge sale as a single transaction.
//
// Lock order is fixed for every caller: account row, then phone row.
// The approval path locks its account last as well, so the two services
// cannot deadlock on a shared account.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, amount int64, phoneNumberID int64) (*ChargeSale, error) {
	// Checked before any lock is taken
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var created *ChargeSale

	err := database.Transact(ctx, s.db, func(tx *sqlx.Tx) error {
		acct, err := s.accountRepo.GetForUpdate(ctx, tx, userID)
		if err != nil {
			return err
		}

		// Race-free under the account lock: no mutation has happened yet
		if acct.Credit < amount {
			return ErrInsufficientCredit
		}

		p, err := s.phoneRepo.GetForUpdate(ctx, tx, phoneNumberID)
		if err != nil {
			return err
		}

		if err := s.accountRepo.SaveCredit(ctx, tx, acct.ID, acct.Credit-amount); err != nil {
			return err
		}

		if err := s.phoneRepo.SaveCharge(ctx, tx, p.ID, p.CurrentCharge+amount); err != nil {
			return err
		}

		record := &ChargeSale{
			UserID:        userID,
			PhoneNumberID: phoneNumberID,
			Amount:        amount,
			Status:        StatusApproved,
			Processed:     true,
		}
		if err := s.repo.Insert(ctx, tx, record); err != nil {
			return err
		}

		created = record
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("sale_id", created.ID).
		Str("user_id", userID.String()).
		Int64("phone_number_id", phoneNumberID).
		Int64("amount", amount).
		Msg("charge sale completed")

	return created, nil
}

// ListByUser returns the user's charge sales, newest first.
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) ([]ChargeSale, error) {
	return s.repo.ListByUser(ctx, userID)
}
