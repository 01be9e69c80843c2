package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/telcharge/telcharge-api/internal/domain/account"
	"github.com/telcharge/telcharge-api/internal/pkg/jwt"
	"github.com/telcharge/telcharge-api/internal/pkg/password"
)

// Service handles registration and login
type Service struct {
	accountRepo account.Repository
	jwtService  *jwt.Service
}

// NewService creates auth service
func NewService(accountRepo account.Repository, jwtService *jwt.Service) *Service {
	return &Service{accountRepo: accountRepo, jwtService: jwtService}
}

// Register creates a new account with a zero credit balance
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*account.Account, error) {
	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	acct := &account.Account{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		FullName:     req.FullName,
		IsActive:     true,
		Credit:       0,
	}

	if err := s.accountRepo.Create(ctx, acct); err != nil {
		return nil, err
	}

	log.Info().Str("account_id", acct.ID.String()).Msg("account registered")
	return acct, nil
}

// Login verifies credentials and issues an access token
func (s *Service) Login(ctx context.Context, req *LoginRequest) (string, error) {
	acct, err := s.accountRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return "", account.ErrInvalidCredentials
		}
		return "", err
	}

	if !acct.IsActive || !password.Verify(req.Password, acct.PasswordHash) {
		return "", account.ErrInvalidCredentials
	}

	return s.jwtService.GenerateAccessToken(acct.ID, acct.IsSuperuser)
}

// Me returns the authenticated account
func (s *Service) Me(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return s.accountRepo.GetByID(ctx, id)
}
