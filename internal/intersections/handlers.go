package intersections

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"quadratic-api/internal/handlers"
	"quadratic-api/internal/observability"
	"quadratic-api/internal/quadratic"
)

// tracer is the intersections domain's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("intersections")

// Analyze handles POST /intersections. Two equations produce the pair
// response; three or more produce the aggregated multi response.
func Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "intersections.analyze",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req IntersectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "intersect", "invalid request body", err, http.StatusBadRequest, w)
		return
	}
	if err := req.Validate(); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "intersect", "invalid request", err, http.StatusBadRequest, w)
		return
	}
	if len(req.Equations) < 2 {
		msg := fmt.Sprintf("need at least 2 equations, got %d", len(req.Equations))
		observability.RecordError(ctx, span, logger, errorCounter, "intersect", msg, fmt.Errorf("%d equations", len(req.Equations)), http.StatusBadRequest, w)
		return
	}

	// Reject bad inputs before any pairwise work, naming the offending index.
	eqs := make([]quadratic.Equation, len(req.Equations))
	for i, e := range req.Equations {
		if !finiteCoefficients(e.A, e.B, e.C) {
			msg := fmt.Sprintf("equation %d: coefficients must be finite numbers", i)
			observability.RecordError(ctx, span, logger, errorCounter, "intersect", msg, fmt.Errorf("a=%g b=%g c=%g", e.A, e.B, e.C), http.StatusBadRequest, w)
			return
		}
		if e.A == 0 {
			invalid := &quadratic.InvalidEquationError{Index: i}
			observability.RecordError(ctx, span, logger, errorCounter, "intersect", invalid.Error(), invalid, http.StatusBadRequest, w)
			return
		}
		eqs[i] = quadratic.Equation{A: e.A, B: e.B, C: e.C}
	}

	span.SetAttributes(attribute.Int("intersections.equations", len(eqs)))

	if len(eqs) == 2 {
		analyzePair(ctx, span, logger, requestID, eqs, w)
		return
	}
	analyzeMulti(ctx, span, logger, requestID, eqs, w)
}

func analyzePair(ctx context.Context, span trace.Span, logger *zap.Logger, requestID string, eqs []quadratic.Equation, w http.ResponseWriter) {
	start := time.Now()
	pi, err := quadratic.Intersect(eqs[0], eqs[1])
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "pair", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("operation", "pair"),
		attribute.String("relationship", string(pi.Relationship)),
	)
	pairsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, metric.WithAttributes(attribute.String("operation", "pair")))
	equationGauge.Record(ctx, 2, metric.WithAttributes(attribute.String("operation", "pair")))

	span.AddEvent("intersection.complete", trace.WithAttributes(
		attribute.String("relationship", string(pi.Relationship)),
		attribute.Int("points", len(pi.Points)),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.String("intersections.relationship", string(pi.Relationship)))
	span.SetStatus(codes.Ok, "")

	logger.Info("pair intersection analysed",
		zap.String("relationship", string(pi.Relationship)),
		zap.Int("points", len(pi.Points)),
		zap.Bool("infinite", pi.Infinite),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, NewPairResponse(pi))
}

func analyzeMulti(ctx context.Context, span trace.Span, logger *zap.Logger, requestID string, eqs []quadratic.Equation, w http.ResponseWriter) {
	start := time.Now()
	multi, err := quadratic.IntersectAll(eqs)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "multi", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	for rel, count := range multi.Relationships {
		pairsCounter.Add(ctx, int64(count), metric.WithAttributes(
			attribute.String("operation", "multi"),
			attribute.String("relationship", string(rel)),
		))
	}
	opsHistogram.Record(ctx, elapsed, metric.WithAttributes(attribute.String("operation", "multi")))
	equationGauge.Record(ctx, float64(len(eqs)), metric.WithAttributes(attribute.String("operation", "multi")))

	span.AddEvent("intersection.complete", trace.WithAttributes(
		attribute.Int("pairs", len(multi.Pairs)),
		attribute.Int("unique_points", len(multi.UniquePoints)),
		attribute.Int("concurrent_points", len(multi.Concurrent)),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("multi intersection analysed",
		zap.Int("equations", len(eqs)),
		zap.Int("pairs", len(multi.Pairs)),
		zap.Int("unique_points", len(multi.UniquePoints)),
		zap.Int("concurrent_points", len(multi.Concurrent)),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, NewMultiResponse(multi))
}

// finiteCoefficients reports whether every value is a usable number.
func finiteCoefficients(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
