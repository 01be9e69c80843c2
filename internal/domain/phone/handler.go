package phone

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/telcharge/telcharge-api/internal/middleware"
	"github.com/telcharge/telcharge-api/internal/pkg/response"
	"github.com/telcharge/telcharge-api/internal/pkg/validator"
)

// Handler handles phone number HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates phone handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List returns active phone numbers
// GET /phone-numbers
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	phones, err := h.service.ListActive(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, phones)
}

// Get returns a single phone number
// GET /phone-numbers/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid phone number id")
		return
	}

	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "Phone number not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, p)
}

// Create registers a new phone number, superusers only
// POST /phone-numbers
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsSuperuser(r.Context()) {
		response.Error(w, http.StatusForbidden, "FORBIDDEN", "Superuser access required")
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

	p := &PhoneNumber{
		Number:   req.Number,
		Title:    req.Title,
		IsActive: req.IsActive,
	}
	if err := h.service.Create(r.Context(), p); err != nil {
		if errors.Is(err, ErrNumberTaken) {
			response.Conflict(w, "Phone number already exists")
			return
		}
		response.InternalError(w)
		return
	}

	response.Created(w, p)
}

// Routes returns phone number routes
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Post("/", h.Create)
	return r
}
