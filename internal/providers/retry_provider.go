package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"afl-tipping-service/internal/domain"
	"afl-tipping-service/internal/logging"
	"afl-tipping-service/internal/metrics"
)

const (
	defaultMaxRetries     = 2
	defaultInitialBackoff = 200 * time.Millisecond
)

// retryingProvider wraps a DataProvider with exponential-backoff retries and
// per-attempt metrics.
type retryingProvider struct {
	inner      DataProvider
	logger     *slog.Logger
	metrics    *metrics.Recorder
	name       string
	maxRetries uint64
	initial    time.Duration
}

// NewRetryingProvider wraps the given provider with retries. Non-positive
// maxRetries/initial fall back to defaults.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxRetries int, initial time.Duration) DataProvider {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	if initial <= 0 {
		initial = defaultInitialBackoff
	}
	return &retryingProvider{
		inner:      inner,
		logger:     logger,
		metrics:    recorder,
		name:       name,
		maxRetries: uint64(maxRetries),
		initial:    initial,
	}
}

func (r *retryingProvider) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	return retryFetch(ctx, r, "teams", func() ([]domain.Team, error) {
		return r.inner.FetchTeams(ctx)
	})
}

func (r *retryingProvider) FetchGames(ctx context.Context, season int) ([]domain.Game, error) {
	return retryFetch(ctx, r, "games", func() ([]domain.Game, error) {
		return r.inner.FetchGames(ctx, season)
	})
}

func (r *retryingProvider) FetchTips(ctx context.Context, season int) ([]domain.Tip, error) {
	return retryFetch(ctx, r, "tips", func() ([]domain.Tip, error) {
		return r.inner.FetchTips(ctx, season)
	})
}

func (r *retryingProvider) FetchScores(ctx context.Context, season int) ([]domain.ScoreUpdate, error) {
	return retryFetch(ctx, r, "scores", func() ([]domain.ScoreUpdate, error) {
		return r.inner.FetchScores(ctx, season)
	})
}

func retryFetch[T any](ctx context.Context, r *retryingProvider, op string, fn func() ([]T, error)) ([]T, error) {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = r.initial
	policy := backoff.WithContext(backoff.WithMaxRetries(expo, r.maxRetries), ctx)

	attempt := 0
	result, err := backoff.RetryWithData(func() ([]T, error) {
		attempt++
		start := time.Now()
		out, err := fn()
		if r.metrics != nil {
			r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		}
		if err == nil {
			return out, nil
		}
		if rl, ok := AsRateLimitError(err); ok {
			if r.metrics != nil {
				r.metrics.RecordRateLimit(r.name, rl.RetryAfter)
			}
			// Respect the upstream's Retry-After instead of hammering it.
			return nil, backoff.Permanent(err)
		}
		logging.Warn(r.logger, "provider fetch retry",
			slog.String(logging.FieldProvider, r.name),
			slog.String("op", op),
			slog.Int("attempt", attempt),
			"err", err,
		)
		return nil, err
	}, policy)
	if err != nil {
		logging.Warn(r.logger, "provider fetch failed",
			slog.String(logging.FieldProvider, r.name),
			slog.String("op", op),
			slog.Int("attempts", attempt),
			"err", err,
		)
		return nil, err
	}
	return result, nil
}
