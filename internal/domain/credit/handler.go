package credit

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/telcharge/telcharge-api/internal/domain/account"
	"github.com/telcharge/telcharge-api/internal/middleware"
	"github.com/telcharge/telcharge-api/internal/pkg/database"
	"github.com/telcharge/telcharge-api/internal/pkg/response"
	"github.com/telcharge/telcharge-api/internal/pkg/validator"
)

// Handler handles credit request HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates credit request handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create creates a pending credit request
// POST /credit-requests
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

	created, err := h.service.Create(r.Context(), userID, req.Amount)
	if err != nil {
		if errors.Is(err, ErrInvalidAmount) {
			response.BadRequest(w, "Amount must be greater than zero")
			return
		}
		response.InternalError(w)
		return
	}

	response.Created(w, created)
}

// Approve approves a pending credit request
// POST /credit-requests/{id}/approve
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	approverID := middleware.GetAccountID(r.Context())
	if approverID == uuid.Nil {
		response.Unauthorized(w, "unauthorized")
		return
	}

	requestID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid credit request id")
		return
	}

	approved, err := h.service.Approve(r.Context(), requestID, approverID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.NotFound(w, "Credit request not found")
		case errors.Is(err, account.ErrNotFound):
			response.NotFound(w, "Account not found")
		case errors.Is(err, ErrAlreadyProcessed):
			response.Conflict(w, "Credit request already processed")
		case errors.Is(err, database.ErrLockTimeout):
			response.ServiceUnavailable(w, "Operation timed out waiting for a lock, please retry")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, approved)
}

// ListMine returns the caller's credit requests
// GET /credit-requests
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetAccountID(r.Context())
	if userID == uuid.Nil {
		response.Unauthorized(w, "unauthorized")
		return
	}

	requests, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, requests)
}
