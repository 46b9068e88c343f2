package analytics

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments — initialized once via InitMetrics().
var (
	requestsCounter metric.Int64Counter
	opsHistogram    metric.Float64Histogram
	errorCounter    metric.Int64Counter
	recordsGauge    metric.Float64Gauge
)

// InitMetrics registers custom OTel metric instruments for the analytics
// domain. Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("analytics")

	var err error

	requestsCounter, err = meter.Int64Counter("analytics.requests.total",
		metric.WithDescription("Total number of analytics requests, by operation"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return fmt.Errorf("creating requests counter: %w", err)
	}

	opsHistogram, err = meter.Float64Histogram("analytics.operation.duration",
		metric.WithDescription("Duration of analytics operations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating ops histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("analytics.errors.total",
		metric.WithDescription("Total number of analytics errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	recordsGauge, err = meter.Float64Gauge("analytics.last_record_count",
		metric.WithDescription("Number of history records behind the last analytics response"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return fmt.Errorf("creating records gauge: %w", err)
	}

	return nil
}
