// Package providers defines how upstream tipping data is fetched and
// normalized, plus shared decorators (retry, rate limiting).
package providers

import (
	"context"
	"errors"

	"afl-tipping-service/internal/domain"
)

// ErrProviderUnavailable signals a missing or misconfigured provider.
var ErrProviderUnavailable = errors.New("provider unavailable")

// TeamProvider fetches the normalized team list.
type TeamProvider interface {
	FetchTeams(ctx context.Context) ([]domain.Team, error)
}

// GameProvider fetches normalized fixture records for a season.
type GameProvider interface {
	FetchGames(ctx context.Context, season int) ([]domain.Game, error)
}

// TipProvider fetches normalized tip records for a season.
type TipProvider interface {
	FetchTips(ctx context.Context, season int) ([]domain.Tip, error)
}

// ScoreProvider fetches normalized score updates for a season.
type ScoreProvider interface {
	FetchScores(ctx context.Context, season int) ([]domain.ScoreUpdate, error)
}

// DataProvider combines the fixture-feed capabilities one refresh cycle needs.
type DataProvider interface {
	TeamProvider
	GameProvider
	TipProvider
	ScoreProvider
}

// OddsProvider fetches head-to-head odds from the aggregator. Kept separate
// from DataProvider: the odds feed is optional and quota-bound.
type OddsProvider interface {
	FetchOdds(ctx context.Context) ([]domain.MatchOdds, error)
}
