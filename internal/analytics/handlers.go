package analytics

import (
	"bytes"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"quadratic-api/internal/handlers"
	"quadratic-api/internal/history"
	"quadratic-api/internal/observability"
	"quadratic-api/internal/quadratic"
)

// tracer is the analytics domain's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("analytics")

const (
	defaultTrendDays = 30
	maxTrendDays     = 365

	defaultSampleCount = 10
	maxSampleCount     = 100
)

// Handler serves descriptive statistics, trends, sample generation, and
// export over the history store.
type Handler struct {
	store *history.Store
}

// NewHandler builds a Handler around an open store.
func NewHandler(store *history.Store) *Handler {
	return &Handler{store: store}
}

// Summary handles GET /analytics/summary. Every stored record is re-solved
// from its coefficients; an empty history yields the zero-state body.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "analytics.summary",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	start := time.Now()
	records, err := h.store.All(ctx)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "summary", "failed to read history", err, http.StatusInternalServerError, w)
		return
	}

	analyses := make([]quadratic.Analysis, 0, len(records))
	for _, rec := range records {
		if an, err := quadratic.Solve(rec.A, rec.B, rec.C); err == nil {
			analyses = append(analyses, an)
		}
	}

	resp := SummaryResponse{
		Summary:       quadratic.Summarize(analyses),
		Relationships: quadratic.Relationships(analyses),
	}
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	opAttrs := metric.WithAttributes(attribute.String("operation", "summary"))
	requestsCounter.Add(ctx, 1, opAttrs)
	opsHistogram.Record(ctx, elapsed, opAttrs)
	recordsGauge.Record(ctx, float64(len(records)), opAttrs)

	span.AddEvent("summary.complete", trace.WithAttributes(
		attribute.Int("records", len(records)),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Int("analytics.records", len(records)))
	span.SetStatus(codes.Ok, "")

	logger.Info("analytics summary computed",
		zap.Int("records", len(records)),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, resp)
}

// Trends handles GET /analytics/trends. The window always ends today (UTC);
// days without solves appear with a zero count.
func (h *Handler) Trends(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "analytics.trends",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	days := defaultTrendDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			observability.RecordError(ctx, span, logger, errorCounter, "trends", "invalid days parameter", fmt.Errorf("days=%q", raw), http.StatusBadRequest, w)
			return
		}
		days = min(parsed, maxTrendDays)
	}
	span.SetAttributes(attribute.Int("analytics.days", days))

	start := time.Now()
	records, err := h.store.All(ctx)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "trends", "failed to read history", err, http.StatusInternalServerError, w)
		return
	}

	perDay := make(map[string]int, days)
	for _, rec := range records {
		perDay[rec.SolvedAt.UTC().Format("2006-01-02")]++
	}

	today := time.Now().UTC()
	trends := make([]TrendPoint, 0, days)
	total := 0
	for d := days - 1; d >= 0; d-- {
		date := today.AddDate(0, 0, -d).Format("2006-01-02")
		count := perDay[date]
		trends = append(trends, TrendPoint{Date: date, Count: count})
		total += count
	}
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	opAttrs := metric.WithAttributes(attribute.String("operation", "trends"))
	requestsCounter.Add(ctx, 1, opAttrs)
	opsHistogram.Record(ctx, elapsed, opAttrs)
	recordsGauge.Record(ctx, float64(len(records)), opAttrs)

	span.SetStatus(codes.Ok, "")

	logger.Info("analytics trends computed",
		zap.Int("days", days),
		zap.Int("total", total),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, TrendsResponse{Days: days, Total: total, Trends: trends})
}

// Samples handles GET /analytics/samples.
func (h *Handler) Samples(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "analytics.samples",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	count := defaultSampleCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			observability.RecordError(ctx, span, logger, errorCounter, "samples", "invalid count parameter", fmt.Errorf("count=%q", raw), http.StatusBadRequest, w)
			return
		}
		count = min(parsed, maxSampleCount)
	}

	difficulty, err := quadratic.ParseDifficulty(r.URL.Query().Get("difficulty"))
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "samples", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.Int("analytics.sample_count", count),
		attribute.String("analytics.difficulty", string(difficulty)),
	)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	samples := quadratic.GenerateSamples(rng, count, difficulty)

	opAttrs := metric.WithAttributes(attribute.String("operation", "samples"))
	requestsCounter.Add(ctx, 1, opAttrs)

	span.SetStatus(codes.Ok, "")

	logger.Info("sample equations generated",
		zap.Int("count", count),
		zap.String("difficulty", string(difficulty)),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, SamplesResponse{
		Count:      count,
		Difficulty: string(difficulty),
		Samples:    samples,
	})
}

// Export handles GET /analytics/export. The whole history is rendered into a
// buffer before any byte is sent, so a storage failure still gets a clean
// error status.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "analytics.export",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	span.SetAttributes(attribute.String("analytics.format", format))

	start := time.Now()
	var (
		buf         bytes.Buffer
		n           int
		err         error
		contentType string
	)
	switch format {
	case "json":
		n, err = h.store.ExportJSON(ctx, &buf)
		contentType = "application/json"
	case "csv":
		n, err = h.store.ExportCSV(ctx, &buf)
		contentType = "text/csv"
	default:
		msg := fmt.Sprintf("unknown export format %q (want json or csv)", format)
		observability.RecordError(ctx, span, logger, errorCounter, "export", msg, fmt.Errorf("format=%q", format), http.StatusBadRequest, w)
		return
	}
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "export", "failed to export history", err, http.StatusInternalServerError, w)
		return
	}
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	opAttrs := metric.WithAttributes(attribute.String("operation", "export"))
	requestsCounter.Add(ctx, 1, opAttrs)
	opsHistogram.Record(ctx, elapsed, opAttrs)
	recordsGauge.Record(ctx, float64(n), opAttrs)

	span.AddEvent("export.complete", trace.WithAttributes(
		attribute.Int("records", n),
		attribute.String("format", format),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	filename := history.ExportFilename(format, time.Now().UTC())
	logger.Info("history exported",
		zap.Int("records", n),
		zap.String("format", format),
		zap.String("filename", filename),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
