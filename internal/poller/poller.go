// Package poller drives the refresh cycle: fetch -> normalize -> merge ->
// swap snapshot, on a fixed interval.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	apptipsheet "afl-tipping-service/internal/app/tipsheet"
	"afl-tipping-service/internal/domain"
	"afl-tipping-service/internal/logging"
	"afl-tipping-service/internal/merge"
	"afl-tipping-service/internal/metrics"
	"afl-tipping-service/internal/providers"
)

const (
	defaultInterval = 60 * time.Second
	// cycleTimeout bounds one whole refresh so a hanging upstream cannot
	// stall the loop past the next tick indefinitely.
	cycleTimeout = 45 * time.Second
)

// Poller rebuilds the tip sheet on an interval.
type Poller struct {
	provider providers.DataProvider
	odds     providers.OddsProvider
	service  *apptipsheet.Service
	logger   *slog.Logger
	metrics  *metrics.Recorder
	season   int
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	refreshMu sync.Mutex

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults. odds may be nil when the
// aggregator is not configured.
func New(provider providers.DataProvider, odds providers.OddsProvider, service *apptipsheet.Service, logger *slog.Logger, recorder *metrics.Recorder, season int, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	if season <= 0 {
		season = time.Now().Year()
	}
	return &Poller{
		provider: provider,
		odds:     odds,
		service:  service,
		logger:   logger,
		metrics:  recorder,
		season:   season,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "poller started",
			slog.Int(logging.FieldSeason, p.season),
			slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()),
		)
		// Initial refresh to warm data on boot.
		p.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// RefreshNow runs one refresh cycle synchronously. Used by the admin
// endpoint; concurrent calls serialize on the refresh mutex.
func (p *Poller) RefreshNow(ctx context.Context) error {
	return p.refreshOnce(ctx)
}

func (p *Poller) refreshOnce(ctx context.Context) error {
	p.refreshMu.Lock()
	defer p.refreshMu.Unlock()

	start := time.Now()
	p.recordAttempt(start)

	ctx, cancel := context.WithTimeout(ctx, cycleTimeout)
	defer cancel()

	snap, err := p.buildSnapshot(ctx)
	if p.metrics != nil {
		p.metrics.RecordRefreshCycle(time.Since(start), err)
	}
	if err != nil {
		logging.Error(p.logger, "refresh cycle failed", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		p.recordFailure(err, start)
		return err
	}

	p.service.Replace(snap)
	if p.metrics != nil {
		p.metrics.RecordSnapshot(len(snap.Rows))
	}
	p.recordSuccess(start)
	logging.Info(p.logger, "refreshed tip sheet",
		slog.Int(logging.FieldCount, len(snap.Rows)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return nil
}

// buildSnapshot runs one fetch/normalize/merge pass. Games are required;
// teams, tips, scores, and odds degrade to empty on failure so a partial
// upstream outage still produces a usable sheet.
func (p *Poller) buildSnapshot(ctx context.Context) (domain.Snapshot, error) {
	games, err := p.provider.FetchGames(ctx, p.season)
	if err != nil {
		return domain.Snapshot{}, err
	}

	teams, err := p.provider.FetchTeams(ctx)
	if err != nil {
		logging.Warn(p.logger, "teams fetch failed, falling back to feed names", "err", err)
		teams = nil
	}

	tips, err := p.provider.FetchTips(ctx, p.season)
	if err != nil {
		logging.Warn(p.logger, "tips fetch failed, building sheet without tips", "err", err)
		tips = nil
	}

	scores, err := p.provider.FetchScores(ctx, p.season)
	if err != nil {
		logging.Warn(p.logger, "scores fetch failed, building sheet without scores", "err", err)
		scores = nil
	}

	var odds []domain.MatchOdds
	if p.odds != nil {
		odds, err = p.odds.FetchOdds(ctx)
		if err != nil {
			logging.Warn(p.logger, "odds fetch failed, building sheet without odds", "err", err)
			odds = nil
		}
	}

	rows := merge.Build(games, tips, scores, odds, teams, merge.Options{})
	return domain.Snapshot{
		Season:    p.season,
		FetchedAt: p.now().UTC(),
		Teams:     teams,
		Rows:      rows,
	}, nil
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
