package tipsheet

import (
	"testing"

	"afl-tipping-service/internal/domain"
	"afl-tipping-service/internal/store"
)

func TestServiceRoundTripsSnapshot(t *testing.T) {
	svc := NewService(store.NewMemoryStore())

	svc.Replace(domain.Snapshot{
		Season: 2026,
		Teams:  []domain.Team{{ID: 3, Name: "Carlton"}},
		Rows:   []domain.Row{{GameID: 2001}, {GameID: 2002}},
	})

	if got := svc.Snapshot(); got.Season != 2026 {
		t.Fatalf("season = %d", got.Season)
	}
	if rows := svc.Rows(); len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if teams := svc.Teams(); len(teams) != 1 || teams[0].Name != "Carlton" {
		t.Fatalf("unexpected teams: %+v", teams)
	}
}

func TestServiceEmptyStore(t *testing.T) {
	svc := NewService(store.NewMemoryStore())
	if rows := svc.Rows(); len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}
