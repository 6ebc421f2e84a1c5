package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubRefresher struct {
	calls int
	err   error
}

func (s *stubRefresher) RefreshNow(ctx context.Context) error {
	s.calls++
	return s.err
}

func TestAdminRefresh(t *testing.T) {
	refresher := &stubRefresher{}
	h := NewAdminHandler(refresher, "sekrit", nil)

	req := httptest.NewRequest("POST", "/admin/refresh", nil)
	req.Header.Set("Authorization", "Bearer sekrit")
	rr := httptest.NewRecorder()

	h.Refresh(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if refresher.calls != 1 {
		t.Fatalf("expected one refresh, got %d", refresher.calls)
	}
}

func TestAdminRefreshRejectsBadToken(t *testing.T) {
	refresher := &stubRefresher{}
	h := NewAdminHandler(refresher, "sekrit", nil)

	for _, auth := range []string{"", "Bearer wrong", "sekrit", "Basic sekrit"} {
		req := httptest.NewRequest("POST", "/admin/refresh", nil)
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		rr := httptest.NewRecorder()

		h.Refresh(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("auth %q: expected 401, got %d", auth, rr.Code)
		}
	}
	if refresher.calls != 0 {
		t.Fatalf("unauthorized requests must not refresh, got %d calls", refresher.calls)
	}
}

func TestAdminRefreshEmptyTokenAlwaysUnauthorized(t *testing.T) {
	h := NewAdminHandler(&stubRefresher{}, "", nil)

	req := httptest.NewRequest("POST", "/admin/refresh", nil)
	req.Header.Set("Authorization", "Bearer ")
	rr := httptest.NewRecorder()

	h.Refresh(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestAdminRefreshMethodNotAllowed(t *testing.T) {
	h := NewAdminHandler(&stubRefresher{}, "sekrit", nil)

	rr := httptest.NewRecorder()
	h.Refresh(rr, httptest.NewRequest("GET", "/admin/refresh", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
}

func TestAdminRefreshUpstreamFailure(t *testing.T) {
	refresher := &stubRefresher{err: errors.New("fixture feed down")}
	h := NewAdminHandler(refresher, "sekrit", nil)

	req := httptest.NewRequest("POST", "/admin/refresh", nil)
	req.Header.Set("Authorization", "Bearer sekrit")
	rr := httptest.NewRecorder()

	h.Refresh(rr, req)
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
}

func TestAdminRefreshNilRefresher(t *testing.T) {
	h := NewAdminHandler(nil, "sekrit", nil)

	req := httptest.NewRequest("POST", "/admin/refresh", nil)
	req.Header.Set("Authorization", "Bearer sekrit")
	rr := httptest.NewRecorder()

	h.Refresh(rr, req)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
}
