package sale

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/telcharge/telcharge-api/internal/domain/account"
	"github.com/telcharge/telcharge-api/internal/domain/phone"
	"github.com/telcharge/telcharge-api/internal/middleware"
	"github.com/telcharge/telcharge-api/internal/pkg/database"
	"github.com/telcharge/telcharge-api/internal/pkg/response"
	"github.com/telcharge/telcharge-api/internal/pkg/validator"
)

// Handler handles charge sale HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates charge sale handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create performs a charge sale
// POST /charge-sales
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetAccountID(r.Context())
	if userID == uuid.Nil {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var req CreateRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	created, err := h.service.Create(r.Context(), userID, req.Amount, req.PhoneNumberID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAmount):
			response.BadRequest(w, "Amount must be greater than zero")
		case errors.Is(err, ErrInsufficientCredit):
			response.Conflict(w, "Insufficient credit")
		case errors.Is(err, account.ErrNotFound):
			response.NotFound(w, "Account not found")
		case errors.Is(err, phone.ErrNotFound):
			response.NotFound(w, "Phone number not found")
		case errors.Is(err, database.ErrLockTimeout):
			response.ServiceUnavailable(w, "Operation timed out waiting for a lock, please retry")
		default:
			response.InternalError(w)
		}
		return
	}

	response.Created(w, created)
}

// ListMine returns the caller's charge sales
// GET /charge-sales
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetAccountID(r.Context())
	if userID == uuid.Nil {
		response.Unauthorized(w, "unauthorized")
		return
	}

	sales, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, sales)
}
