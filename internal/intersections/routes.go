package intersections

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the intersection endpoint onto the given router.
func RegisterRoutes(r chi.Router) {
	r.Post("/intersections", Analyze)
}
