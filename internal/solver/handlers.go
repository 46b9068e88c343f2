package solver

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"quadratic-api/internal/handlers"
	"quadratic-api/internal/history"
	"quadratic-api/internal/observability"
	"quadratic-api/internal/quadratic"
	"quadratic-api/internal/solvecache"
)

// tracer is the solver's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("solver")

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 100

	// batchParallelism bounds the errgroup fan-out for batch solves.
	batchParallelism = 8
)

// Handler serves the solve and history endpoints. It owns the memo cache and
// writes every successful solve to the history store.
type Handler struct {
	store *history.Store
	cache *solvecache.Cache
}

// NewHandler builds a Handler around an open store and cache.
func NewHandler(store *history.Store, cache *solvecache.Cache) *Handler {
	return &Handler{store: store, cache: cache}
}

// ---------------------------------------------------------------------------
// Handlers — solving
// ---------------------------------------------------------------------------

// Solve handles POST /solve.
func (h *Handler) Solve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "solver.solve",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "solve", "invalid request body", err, http.StatusBadRequest, w)
		return
	}
	if err := req.Validate(); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "solve", "invalid request", err, http.StatusBadRequest, w)
		return
	}
	if !finiteCoefficients(req.A, req.B, req.C) {
		observability.RecordError(ctx, span, logger, errorCounter, "solve", "coefficients must be finite numbers", fmt.Errorf("a=%g b=%g c=%g", req.A, req.B, req.C), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.Float64("solver.coefficient.a", req.A),
		attribute.Float64("solver.coefficient.b", req.B),
		attribute.Float64("solver.coefficient.c", req.C),
	)

	// --- Solve, consulting the memo cache (timed for histogram) ---
	start := time.Now()
	key := solvecache.KeyFor(req.A, req.B, req.C)
	an, cached := h.cache.Get(key)
	if !cached {
		var err error
		an, err = quadratic.Solve(req.A, req.B, req.C)
		if err != nil {
			observability.RecordError(ctx, span, logger, errorCounter, "solve", err.Error(), err, http.StatusBadRequest, w)
			return
		}
		h.cache.Put(key, an)
	}
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	resp := NewSolveResponse(an)
	resp.Cached = cached

	// Every successful solve is archived. A storage failure downgrades the
	// response (no record_id) rather than failing the solve.
	rec := history.NewRecord(an, req.ClientID)
	if err := h.store.Put(ctx, rec); err != nil {
		logger.Warn("failed to persist solve",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
	} else {
		resp.RecordID = rec.ID
	}

	// --- Record metrics ---
	solvesCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", "solve"),
		attribute.String("classification", an.RootsType),
	))
	opAttrs := metric.WithAttributes(attribute.String("operation", "solve"))
	solveHistogram.Record(ctx, elapsed, opAttrs)
	discriminantGauge.Record(ctx, an.Discriminant, opAttrs)
	if cached {
		cacheHitCounter.Add(ctx, 1, opAttrs)
	}

	span.AddEvent("solve.complete", trace.WithAttributes(
		attribute.Float64("discriminant", an.Discriminant),
		attribute.String("classification", an.RootsType),
		attribute.Bool("cache.hit", cached),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("solver.discriminant", an.Discriminant))
	span.SetStatus(codes.Ok, "")

	logger.Info("equation solved",
		zap.Float64("a", req.A),
		zap.Float64("b", req.B),
		zap.Float64("c", req.C),
		zap.Float64("discriminant", an.Discriminant),
		zap.String("classification", an.RootsType),
		zap.Bool("cached", cached),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, resp)
}

// SolveBatch handles POST /solve/batch. Equations are solved concurrently
// with bounded parallelism; results and errors keep their request positions.
func (h *Handler) SolveBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "solver.batch",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "batch", "invalid request body", err, http.StatusBadRequest, w)
		return
	}
	if len(req.Equations) == 0 {
		observability.RecordError(ctx, span, logger, errorCounter, "batch", "batch must contain at least one equation", errors.New("equations array is empty"), http.StatusBadRequest, w)
		return
	}
	if err := req.Validate(); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "batch", "invalid request", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.Int("batch.size", len(req.Equations)))

	start := time.Now()

	// Index-addressed slice: each worker writes only its own slot, so the
	// output order is fixed no matter how the goroutines interleave.
	type outcome struct {
		an     quadratic.Analysis
		cached bool
		err    error
	}
	outcomes := make([]outcome, len(req.Equations))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(batchParallelism)
	for i, eq := range req.Equations {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			if !finiteCoefficients(eq.A, eq.B, eq.C) {
				outcomes[i].err = errors.New("coefficients must be finite numbers")
				return nil
			}

			key := solvecache.KeyFor(eq.A, eq.B, eq.C)
			an, cached := h.cache.Get(key)
			if !cached {
				var err error
				an, err = quadratic.Solve(eq.A, eq.B, eq.C)
				if err != nil {
					outcomes[i].err = err
					return nil
				}
				h.cache.Put(key, an)
			}

			outcomes[i].an = an
			outcomes[i].cached = cached
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "batch", "batch aborted", err, http.StatusInternalServerError, w)
		return
	}

	results := make([]BatchResult, 0, len(outcomes))
	batchErrors := make([]BatchError, 0)
	for i, out := range outcomes {
		if out.err != nil {
			batchErrors = append(batchErrors, BatchError{Index: i, Error: out.err.Error()})
			errorCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "batch_item")))
			continue
		}

		resp := NewSolveResponse(out.an)
		resp.Cached = out.cached
		rec := history.NewRecord(out.an, req.ClientID)
		if err := h.store.Put(ctx, rec); err != nil {
			logger.Warn("failed to persist batch solve",
				zap.Int("index", i),
				zap.Error(err),
				zap.String("request_id", requestID),
			)
		} else {
			resp.RecordID = rec.ID
		}

		solvesCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", "batch"),
			attribute.String("classification", resp.RootsType),
		))
		results = append(results, BatchResult{Index: i, SolveResponse: resp})
	}

	elapsed := float64(time.Since(start).Microseconds()) / 1000.0
	solveHistogram.Record(ctx, elapsed, metric.WithAttributes(attribute.String("operation", "batch")))

	rate := math.Round(float64(len(results))/float64(len(outcomes))*10000) / 100

	span.AddEvent("batch.complete", trace.WithAttributes(
		attribute.Int("succeeded", len(results)),
		attribute.Int("failed", len(batchErrors)),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("batch solve completed",
		zap.Int("total", len(outcomes)),
		zap.Int("succeeded", len(results)),
		zap.Int("failed", len(batchErrors)),
		zap.Float64("success_rate", rate),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, BatchResponse{
		Results:        results,
		Errors:         batchErrors,
		TotalProcessed: len(outcomes),
		SuccessRate:    rate,
	})
}

// ---------------------------------------------------------------------------
// Handlers — history
// ---------------------------------------------------------------------------

// ListEquations handles GET /equations.
func (h *Handler) ListEquations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "solver.history.list",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			observability.RecordError(ctx, span, logger, errorCounter, "history_list", "invalid limit parameter", fmt.Errorf("limit=%q", raw), http.StatusBadRequest, w)
			return
		}
		limit = min(parsed, maxHistoryLimit)
	}

	records, err := h.store.Recent(ctx, limit)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "history_list", "failed to read history", err, http.StatusInternalServerError, w)
		return
	}
	if records == nil {
		records = []history.Record{}
	}

	span.SetAttributes(attribute.Int("history.count", len(records)))
	span.SetStatus(codes.Ok, "")

	logger.Info("history listed",
		zap.Int("count", len(records)),
		zap.Int("limit", limit),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, HistoryResponse{Equations: records, Count: len(records)})
}

// GetEquation handles GET /equations/{id}.
func (h *Handler) GetEquation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	id := chi.URLParam(r, "id")

	ctx, span := tracer.Start(ctx, "solver.history.get",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
			attribute.String("equation.id", id),
		),
	)
	defer span.End()

	rec, err := h.store.Get(ctx, id)
	if errors.Is(err, history.ErrNotFound) {
		observability.RecordError(ctx, span, logger, errorCounter, "history_get", "equation not found", err, http.StatusNotFound, w)
		return
	}
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "history_get", "failed to read history", err, http.StatusInternalServerError, w)
		return
	}

	span.SetStatus(codes.Ok, "")

	logger.Info("history record fetched",
		zap.String("equation_id", id),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, rec)
}

// ClearEquations handles DELETE /equations.
func (h *Handler) ClearEquations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "solver.history.clear",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	deleted, err := h.store.Clear(ctx)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "history_clear", "failed to clear history", err, http.StatusInternalServerError, w)
		return
	}

	span.SetAttributes(attribute.Int("history.deleted", deleted))
	span.SetStatus(codes.Ok, "")

	logger.Info("history cleared",
		zap.Int("deleted", deleted),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, DeleteResponse{Deleted: deleted})
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
