package auth

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/telcharge/telcharge-api/internal/domain/account"
	"github.com/telcharge/telcharge-api/internal/middleware"
	"github.com/telcharge/telcharge-api/internal/pkg/response"
	"github.com/telcharge/telcharge-api/internal/pkg/validator"
)

// Handler handles auth HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates auth handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register creates a new account
// POST /auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	acct, err := h.service.Register(r.Context(), &req)
	if err != nil {
		if errors.Is(err, account.ErrEmailTaken) {
			response.Conflict(w, "Email already registered")
			return
		}
		response.InternalError(w)
		return
	}

	response.Created(w, toAccountResponse(acct))
}

// Login issues an access token
// POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	token, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			response.Unauthorized(w, "Invalid email or password")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me returns the authenticated account
// GET /auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetAccountID(r.Context())
	if userID == uuid.Nil {
		response.Unauthorized(w, "unauthorized")
		return
	}

	acct, err := h.service.Me(r.Context(), userID)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			response.NotFound(w, "Account not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, toAccountResponse(acct))
}

func toAccountResponse(acct *account.Account) AccountResponse {
	return AccountResponse{
		ID:       acct.ID.String(),
		Email:    acct.Email,
		FullName: acct.FullName,
		IsActive: acct.IsActive,
		Credit:   acct.Credit,
	}
}
