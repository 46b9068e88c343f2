package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quadratic-api/internal/analytics"
	"quadratic-api/internal/history"
	"quadratic-api/internal/intersections"
	"quadratic-api/internal/observability"
	"quadratic-api/internal/solvecache"
	"quadratic-api/internal/solver"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	observability.Logger = zap.NewNop()
	if err := solver.InitMetrics(); err != nil {
		t.Fatalf("initializing solver metrics: %v", err)
	}
	if err := intersections.InitMetrics(); err != nil {
		t.Fatalf("initializing intersections metrics: %v", err)
	}
	if err := analytics.InitMetrics(); err != nil {
		t.Fatalf("initializing analytics metrics: %v", err)
	}

	store, err := history.OpenInMemory()
	if err != nil {
		t.Fatalf("opening in-memory store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	return NewRouter(store, solvecache.New(time.Hour))
}

func TestNewRouterHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	if body := w.Body.String(); body != "ok" {
		t.Fatalf("expected body %q, got %q", "ok", body)
	}
}

func TestNewRouterSolveSetsHeaderAndOmitsRequestIDInBody(t *testing.T) {
	router := newTestRouter(t)

	body := []byte(`{"a":1,"b":-3,"c":2}`)
	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewReader(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	requestID := w.Result().Header.Get("X-Request-ID")
	if requestID == "" {
		t.Fatal("expected X-Request-ID header to be set")
	}
	if _, err := uuid.Parse(requestID); err != nil {
		t.Fatalf("expected valid UUID in X-Request-ID, got %q: %v", requestID, err)
	}

	var payload map[string]any
	if err := json.NewDecoder(w.Result().Body).Decode(&payload); err != nil {
		t.Fatalf("decoding JSON response: %v", err)
	}

	if _, ok := payload["request_id"]; ok {
		t.Fatal("did not expect request_id field in success JSON body")
	}

	if got, ok := payload["equation"].(string); !ok || got != "x² - 3x + 2 = 0" {
		t.Fatalf("expected equation %q, got %#v", "x² - 3x + 2 = 0", payload["equation"])
	}
}

func TestNewRouterMountsAllDomains(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/solve", `{"a":1,"b":0,"c":-4}`},
		{http.MethodPost, "/solve/batch", `{"equations":[{"a":1,"b":0,"c":-4}]}`},
		{http.MethodGet, "/equations", ""},
		{http.MethodPost, "/intersections", `{"equations":[{"a":1,"b":0,"c":-1},{"a":-1,"b":0,"c":1}]}`},
		{http.MethodGet, "/analytics/summary", ""},
		{http.MethodGet, "/analytics/trends", ""},
		{http.MethodGet, "/analytics/samples", ""},
		{http.MethodGet, "/analytics/export", ""},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			var req *http.Request
			if tc.body != "" {
				req = httptest.NewRequest(tc.method, tc.path, bytes.NewReader([]byte(tc.body)))
			} else {
				req = httptest.NewRequest(tc.method, tc.path, nil)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
			}
		})
	}
}
