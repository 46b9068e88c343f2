package solver

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments — initialized once via InitMetrics().
var (
	solvesCounter     metric.Int64Counter
	solveHistogram    metric.Float64Histogram
	cacheHitCounter   metric.Int64Counter
	errorCounter      metric.Int64Counter
	discriminantGauge metric.Float64Gauge
)

// InitMetrics registers custom OTel metric instruments for the solver domain.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("solver")

	var err error

	solvesCounter, err = meter.Int64Counter("solver.solves.total",
		metric.WithDescription("Total number of equations solved, by root classification"),
		metric.WithUnit("{equation}"),
	)
	if err != nil {
		return fmt.Errorf("creating solves counter: %w", err)
	}

	solveHistogram, err = meter.Float64Histogram("solver.solve.duration",
		metric.WithDescription("Duration of solve operations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating solve histogram: %w", err)
	}

	cacheHitCounter, err = meter.Int64Counter("solver.cache.hits.total",
		metric.WithDescription("Total number of solve requests served from the memo cache"),
		metric.WithUnit("{hit}"),
	)
	if err != nil {
		return fmt.Errorf("creating cache hit counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("solver.errors.total",
		metric.WithDescription("Total number of solver errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	discriminantGauge, err = meter.Float64Gauge("solver.last_discriminant",
		metric.WithDescription("The discriminant of the last solved equation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating discriminant gauge: %w", err)
	}

	return nil
}
