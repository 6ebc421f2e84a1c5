package poller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	apptipsheet "afl-tipping-service/internal/app/tipsheet"
	"afl-tipping-service/internal/domain"
	"afl-tipping-service/internal/store"
)

type stubProvider struct {
	calls    atomic.Int32
	gamesErr error
	tipsErr  error
	notify   chan struct{}
}

func (s *stubProvider) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	return []domain.Team{{ID: 3, Name: "Carlton"}, {ID: 14, Name: "Richmond"}}, nil
}

func (s *stubProvider) FetchGames(ctx context.Context, season int) ([]domain.Game, error) {
	s.calls.Add(1)
	if s.notify != nil {
		select {
		case s.notify <- struct{}{}:
		default:
		}
	}
	if s.gamesErr != nil {
		return nil, s.gamesErr
	}
	return []domain.Game{{
		ID: 2001, Round: 1, HomeTeamID: 3, AwayTeamID: 14,
		Start: time.Date(2026, 3, 19, 19, 30, 0, 0, time.UTC),
	}}, nil
}

func (s *stubProvider) FetchTips(ctx context.Context, season int) ([]domain.Tip, error) {
	if s.tipsErr != nil {
		return nil, s.tipsErr
	}
	conf := 61.5
	return []domain.Tip{{GameID: 2001, Source: "Squiggle", TippedTeam: "Carlton", Confidence: &conf}}, nil
}

func (s *stubProvider) FetchScores(ctx context.Context, season int) ([]domain.ScoreUpdate, error) {
	return nil, nil
}

type stubOdds struct {
	err error
}

func (s *stubOdds) FetchOdds(ctx context.Context) ([]domain.MatchOdds, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []domain.MatchOdds{{HomeTeam: "Carlton", AwayTeam: "Richmond", HomeOdds: 1.5, AwayOdds: 2.6}}, nil
}

func newTestService() *apptipsheet.Service {
	return apptipsheet.NewService(store.NewMemoryStore())
}

func TestRefreshNowBuildsSnapshot(t *testing.T) {
	svc := newTestService()
	p := New(&stubProvider{}, &stubOdds{}, svc, nil, nil, 2026, time.Hour)
	p.now = func() time.Time { return time.Date(2026, 3, 19, 12, 0, 0, 0, time.UTC) }

	if err := p.RefreshNow(context.Background()); err != nil {
		t.Fatalf("RefreshNow returned error: %v", err)
	}

	snap := svc.Snapshot()
	if snap.Season != 2026 || len(snap.Rows) != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	row := snap.Rows[0]
	if row.HomeTeam != "Carlton" || !row.HasTip || row.AwayOdds == nil {
		t.Fatalf("row not fully joined: %+v", row)
	}
	if !p.Status().IsReady() {
		t.Fatal("poller should be ready after a successful refresh")
	}
}

func TestRefreshKeepsPreviousSnapshotOnGamesFailure(t *testing.T) {
	svc := newTestService()
	provider := &stubProvider{}
	p := New(provider, nil, svc, nil, nil, 2026, time.Hour)

	if err := p.RefreshNow(context.Background()); err != nil {
		t.Fatalf("warm-up refresh: %v", err)
	}

	provider.gamesErr = errors.New("fixture feed down")
	if err := p.RefreshNow(context.Background()); err == nil {
		t.Fatal("expected refresh error")
	}

	if len(svc.Rows()) != 1 {
		t.Fatal("previous snapshot should survive a failed cycle")
	}
	status := p.Status()
	if status.ConsecutiveFailures != 1 || status.LastError == "" {
		t.Fatalf("unexpected status: %+v", status)
	}
}

func TestRefreshDegradesWithoutTipsAndOdds(t *testing.T) {
	svc := newTestService()
	provider := &stubProvider{tipsErr: errors.New("tips down")}
	p := New(provider, &stubOdds{err: errors.New("odds down")}, svc, nil, nil, 2026, time.Hour)

	if err := p.RefreshNow(context.Background()); err != nil {
		t.Fatalf("refresh should succeed without tips/odds: %v", err)
	}

	row := svc.Rows()[0]
	if row.HasTip || row.AwayOdds != nil {
		t.Fatalf("expected bare row, got %+v", row)
	}
}

func TestStartRunsInitialRefreshAndTicks(t *testing.T) {
	svc := newTestService()
	provider := &stubProvider{notify: make(chan struct{}, 4)}
	p := New(provider, nil, svc, nil, nil, 2026, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)

	select {
	case <-provider.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial refresh")
	}
	select {
	case <-provider.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for ticker refresh")
	}

	cancel()
	_ = p.Stop(context.Background())
}

func TestStopHaltsRefreshes(t *testing.T) {
	svc := newTestService()
	provider := &stubProvider{notify: make(chan struct{}, 1)}
	p := New(provider, nil, svc, nil, nil, 2026, 5*time.Millisecond)

	ctx := context.Background()
	p.Start(ctx)

	select {
	case <-provider.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial refresh")
	}

	if err := p.Stop(ctx); err != nil {
		t.Fatalf("Stop returned error: %v", err)
	}

	// One tick may already be pending when Stop lands; anything beyond that
	// means the loop kept running.
	calls := provider.calls.Load()
	time.Sleep(30 * time.Millisecond)
	if got := provider.calls.Load(); got > calls+1 {
		t.Fatalf("refreshes continued after stop: before=%d after=%d", calls, got)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	p := New(&stubProvider{}, nil, newTestService(), nil, nil, 2026, time.Hour)
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("first stop: %v", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("second stop: %v", err)
	}
}

func TestStatusNotReadyBeforeFirstSuccess(t *testing.T) {
	p := New(&stubProvider{}, nil, newTestService(), nil, nil, 2026, time.Hour)
	if p.Status().IsReady() {
		t.Fatal("poller must not be ready before any refresh")
	}
}

func TestStatusNotReadyAfterRepeatedFailures(t *testing.T) {
	svc := newTestService()
	provider := &stubProvider{}
	p := New(provider, nil, svc, nil, nil, 2026, time.Hour)

	if err := p.RefreshNow(context.Background()); err != nil {
		t.Fatalf("warm-up refresh: %v", err)
	}

	provider.gamesErr = errors.New("down")
	for i := 0; i < 3; i++ {
		_ = p.RefreshNow(context.Background())
	}

	if p.Status().IsReady() {
		t.Fatal("three consecutive failures should mark the poller unready")
	}
}
