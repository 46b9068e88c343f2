package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"quadratic-api/internal/analytics"
	"quadratic-api/internal/handlers"
	"quadratic-api/internal/history"
	"quadratic-api/internal/intersections"
	"quadratic-api/internal/observability"
	"quadratic-api/internal/solvecache"
	"quadratic-api/internal/solver"
)

func NewRouter(store *history.Store, cache *solvecache.Cache) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	solver.NewHandler(store, cache).RegisterRoutes(r)
	intersections.RegisterRoutes(r)
	analytics.NewHandler(store).RegisterRoutes(r)

	return r
}
