package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"afl-tipping-service/internal/metrics"
)

func TestLoggingMiddlewarePropagatesRequestID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	h := LoggingMiddleware(nil, nil, next)

	req := httptest.NewRequest("GET", "/tipsheet", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if seen != "abc-123" {
		t.Fatalf("context request id = %q", seen)
	}
	if got := rr.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("header request id = %q", got)
	}
}

func TestLoggingMiddlewareReplacesInvalidRequestID(t *testing.T) {
	h := LoggingMiddleware(nil, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest("GET", "/tipsheet", nil)
	req.Header.Set("X-Request-ID", "bad id with spaces\n")
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	got := rr.Header().Get("X-Request-ID")
	if got == "" || got == "bad id with spaces\n" {
		t.Fatalf("expected a generated id, got %q", got)
	}
}

func TestLoggingMiddlewareRecordsMetrics(t *testing.T) {
	recorder := metrics.NewRecorder()
	h := LoggingMiddleware(nil, recorder, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/tipsheet?round=2", nil))

	if rr.Code != http.StatusTeapot {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestRequestIDFromContextMissing(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestSanitizeRequestID(t *testing.T) {
	if got := sanitizeRequestID("valid_ID-42"); got != "valid_ID-42" {
		t.Fatalf("valid id rewritten to %q", got)
	}
	if got := sanitizeRequestID(""); got == "" {
		t.Fatal("empty id should be generated")
	}
	long := make([]byte, 65)
	for i := range long {
		long[i] = 'a'
	}
	if got := sanitizeRequestID(string(long)); got == string(long) {
		t.Fatal("over-long id should be replaced")
	}
}

func TestGenerateRequestIDUnique(t *testing.T) {
	a, b := generateRequestID(), generateRequestID()
	if a == "" || a == b {
		t.Fatalf("ids not unique: %q %q", a, b)
	}
}

func TestNormalizePath(t *testing.T) {
	if got := normalizePath("/tipsheet"); got != "/tipsheet" {
		t.Fatalf("got %q", got)
	}
	if got := normalizePath("/tipsheet?round=2"); got != "/tipsheet" {
		t.Fatalf("got %q", got)
	}
}
