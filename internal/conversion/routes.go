package conversion

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the unit listing and conversion endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/units", func(r chi.Router) {
		r.Get("/", h.ListUnits)
		r.Get("/{category}", h.GetCategory)
	})
	r.Route("/convert", func(r chi.Router) {
		r.Post("/", h.Convert)
		r.Post("/chain", h.Chain)
	})
}
