package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	apptipsheet "afl-tipping-service/internal/app/tipsheet"
	"afl-tipping-service/internal/http/handlers"
	"afl-tipping-service/internal/store"
)

func TestRouterRoutes(t *testing.T) {
	svc := apptipsheet.NewService(store.NewMemoryStore())
	router := NewRouter(handlers.NewHandler(svc, nil, nil, ""))

	for _, path := range []string{
		"/health",
		"/ready",
		"/tipsheet",
		"/tipsheet/summary",
		"/tipsheet/export",
		"/tipsheet/export/datauri",
		"/rounds",
		"/teams",
	} {
		req := httptest.NewRequest("GET", path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code == nethttp.StatusNotFound {
			t.Fatalf("%s not routed", path)
		}
	}
}

func TestRouterUnknownPath(t *testing.T) {
	svc := apptipsheet.NewService(store.NewMemoryStore())
	router := NewRouter(handlers.NewHandler(svc, nil, nil, ""))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/nope", nil))
	if rr.Code != nethttp.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}
