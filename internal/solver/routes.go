package solver

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the solve and history endpoints onto the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/solve", h.Solve)
	r.Post("/solve/batch", h.SolveBatch)

	r.Route("/equations", func(r chi.Router) {
		r.Get("/", h.ListEquations)
		r.Delete("/", h.ClearEquations)
		r.Get("/{id}", h.GetEquation)
	})
}
