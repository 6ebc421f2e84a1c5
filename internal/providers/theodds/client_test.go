package theodds

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"afl-tipping-service/internal/providers"
)

func TestFetchOddsRequestShape(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`[{"home_team":"Carlton","away_team":"Richmond","commence_time":"2026-03-19T08:30:00Z","bookmakers":[{"key":"tab","title":"TAB","markets":[{"key":"h2h","outcomes":[{"name":"Carlton","price":1.55},{"name":"Richmond","price":2.8}]}]}]}]`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "secret"}, nil)
	odds, err := c.FetchOdds(context.Background())
	if err != nil {
		t.Fatalf("FetchOdds returned error: %v", err)
	}

	if gotPath != "/v4/sports/aussierules_afl/odds" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	for key, want := range map[string]string{
		"apiKey":     "secret",
		"regions":    "au",
		"markets":    "h2h",
		"oddsFormat": "decimal",
	} {
		if got := gotQuery[key]; len(got) != 1 || got[0] != want {
			t.Fatalf("param %s = %v, want %q", key, got, want)
		}
	}
	if len(odds) != 1 || odds[0].AwayOdds != 2.8 {
		t.Fatalf("unexpected odds: %+v", odds)
	}
}

func TestFetchOddsRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Requests-Remaining", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "secret"}, nil)
	_, err := c.FetchOdds(context.Background())

	var rle *providers.RateLimitError
	if !errors.As(err, &rle) {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if rle.QuotaRemaining != "0" {
		t.Fatalf("QuotaRemaining = %q", rle.QuotaRemaining)
	}
}

func TestFetchOddsUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "wrong"}, nil)
	if _, err := c.FetchOdds(context.Background()); err == nil {
		t.Fatal("expected error for 401")
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Config{APIKey: "k"}, nil)
	if c.baseURL != defaultBaseURL {
		t.Fatalf("baseURL = %q", c.baseURL)
	}
	if c.sportKey != defaultSport || c.region != defaultRegion || c.market != defaultMarket {
		t.Fatalf("defaults not applied: %+v", c)
	}
}
