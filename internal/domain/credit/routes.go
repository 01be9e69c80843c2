package credit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns credit request routes
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	// All routes require authentication
	r.Use(authMiddleware)

	r.Post("/", h.Create)
	r.Get("/", h.ListMine)
	r.Post("/{id}/approve", h.Approve)

	return r
}
