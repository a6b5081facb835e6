package catalog

import (
	"github.com/go-chi/chi/v5"
)

// MountRoutes registers the catalog endpoints under the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/", h.Update)
}
