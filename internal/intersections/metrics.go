package intersections

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments — initialized once via InitMetrics().
var (
	pairsCounter  metric.Int64Counter
	opsHistogram  metric.Float64Histogram
	errorCounter  metric.Int64Counter
	equationGauge metric.Float64Gauge
)

// InitMetrics registers custom OTel metric instruments for the intersections
// domain. Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("intersections")

	var err error

	pairsCounter, err = meter.Int64Counter("intersections.pairs.total",
		metric.WithDescription("Total number of equation pairs analysed, by relationship"),
		metric.WithUnit("{pair}"),
	)
	if err != nil {
		return fmt.Errorf("creating pairs counter: %w", err)
	}

	opsHistogram, err = meter.Float64Histogram("intersections.operation.duration",
		metric.WithDescription("Duration of intersection operations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating ops histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("intersections.errors.total",
		metric.WithDescription("Total number of intersection errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	equationGauge, err = meter.Float64Gauge("intersections.last_equation_count",
		metric.WithDescription("Number of equations in the last intersection request"),
		metric.WithUnit("{equation}"),
	)
	if err != nil {
		return fmt.Errorf("creating equation gauge: %w", err)
	}

	return nil
}
