package analytics

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all analytics endpoints onto the given router under
// the /analytics prefix.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/analytics", func(r chi.Router) {
		r.Get("/summary", h.Summary)
		r.Get("/trends", h.Trends)
		r.Get("/samples", h.Samples)
		r.Get("/export", h.Export)
	})
}
