package sales

import (
	"github.com/go-chi/chi/v5"
)

// MountRoutes registers the sales endpoints under the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/annul", h.Annul)
	r.Put("/{saleID}/annul", h.AnnulByID)
}
