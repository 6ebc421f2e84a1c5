package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"afl-tipping-service/internal/domain"
	"afl-tipping-service/internal/logging"
)

// rateLimitedOdds wraps an OddsProvider and enforces a minimum interval
// between aggregator calls, serving the previous result in between. The odds
// feed is quota-bound, unlike the fixture feed.
type rateLimitedOdds struct {
	next     OddsProvider
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time

	mu       sync.Mutex
	lastCall time.Time
	cached   []domain.MatchOdds
	haveData bool
}

// NewRateLimitedOdds returns an OddsProvider that calls upstream at most once
// per interval, returning cached odds for calls in between.
func NewRateLimitedOdds(next OddsProvider, interval time.Duration, logger *slog.Logger) OddsProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedOdds{
		next:     next,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

func (p *rateLimitedOdds) FetchOdds(ctx context.Context) ([]domain.MatchOdds, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.haveData && p.now().Sub(p.lastCall) < p.interval {
		return p.cached, nil
	}

	odds, err := p.next.FetchOdds(ctx)
	if err != nil {
		if p.haveData {
			logging.Warn(p.logger, "odds fetch failed, serving cached odds", "err", err)
			return p.cached, nil
		}
		return nil, err
	}

	p.lastCall = p.now()
	p.cached = odds
	p.haveData = true
	return odds, nil
}
