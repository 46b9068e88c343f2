package main

import (
	"context"

	"quadratic-api/internal/analytics"
	"quadratic-api/internal/intersections"
	"quadratic-api/internal/observability"
	"quadratic-api/internal/solver"
)

// initMetrics initialises all metric providers and application-specific
// metric instruments. Add new domain InitMetrics calls here as the project grows.
func initMetrics(ctx context.Context) (func(context.Context) error, error) {
	shutdown, err := observability.InitMetrics(ctx)
	if err != nil {
		return nil, err
	}

	if err := solver.InitMetrics(); err != nil {
		return nil, err
	}
	if err := intersections.InitMetrics(); err != nil {
		return nil, err
	}
	if err := analytics.InitMetrics(); err != nil {
		return nil, err
	}

	return shutdown, nil
}
