// Package fixture provides a static sample season for local testing and
// bootstrapping without hitting upstream APIs.
package fixture

import (
	"context"
	"time"

	"afl-tipping-service/internal/domain"
)

// Provider returns a deterministic slice of the season: teams, games, tips,
// scores, and odds that exercise the whole pipeline.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

const (
	richmondID    = 14
	geelongID     = 6
	goldCoastID   = 7
	collingwoodID = 4
	carltonID     = 3
	essendonID    = 5
)

// FetchTeams returns a deterministic set of teams.
func (p *Provider) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	_ = ctx
	return []domain.Team{
		{ID: carltonID, Name: "Carlton", Abbrev: "CAR"},
		{ID: collingwoodID, Name: "Collingwood", Abbrev: "COL"},
		{ID: essendonID, Name: "Essendon", Abbrev: "ESS"},
		{ID: geelongID, Name: "Geelong", Abbrev: "GEE"},
		{ID: goldCoastID, Name: "Gold Coast", Abbrev: "GCS"},
		{ID: richmondID, Name: "Richmond", Abbrev: "RIC"},
	}, nil
}

// FetchGames returns two rounds of example games: one already played, one
// upcoming relative to the provider's clock.
func (p *Provider) FetchGames(ctx context.Context, season int) ([]domain.Game, error) {
	_ = ctx
	base := p.now().UTC().Truncate(time.Hour)

	return []domain.Game{
		{
			ID: 2001, Round: 1, Start: base.Add(-72 * time.Hour), Venue: "M.C.G.",
			HomeTeamID: richmondID, AwayTeamID: carltonID,
			HomeTeam: "Richmond", AwayTeam: "Carlton",
			Preview: domain.MissingPreview, Winner: "Richmond", Complete: 100,
		},
		{
			ID: 2002, Round: 1, Start: base.Add(-48 * time.Hour), Venue: "Kardinia Park",
			HomeTeamID: geelongID, AwayTeamID: essendonID,
			HomeTeam: "Geelong", AwayTeam: "Essendon",
			Preview: domain.MissingPreview, Winner: "Geelong", Complete: 100,
		},
		{
			ID: 2003, Round: 2, Start: base.Add(2 * time.Hour), Venue: "Carrara",
			HomeTeamID: goldCoastID, AwayTeamID: collingwoodID,
			HomeTeam: "Gold Coast", AwayTeam: "Collingwood",
			Preview: "Top-four clash on the coast.", Complete: 0,
		},
		{
			ID: 2004, Round: 2, Start: base.Add(26 * time.Hour), Venue: "M.C.G.",
			HomeTeamID: collingwoodID, AwayTeamID: richmondID,
			HomeTeam: "Collingwood", AwayTeam: "Richmond",
			Preview: domain.MissingPreview, Complete: 0,
		},
	}, nil
}

// FetchTips returns tips from multiple sources, including a competing tip for
// game 2003 to exercise source-priority resolution.
func (p *Provider) FetchTips(ctx context.Context, season int) ([]domain.Tip, error) {
	_ = ctx
	conf := func(v float64) *float64 { return &v }
	return []domain.Tip{
		{GameID: 2001, Source: "Squiggle", HomeTeam: "Richmond", AwayTeam: "Carlton", TippedTeam: "Richmond", Confidence: conf(61.5)},
		{GameID: 2002, Source: "Squiggle", HomeTeam: "Geelong", AwayTeam: "Essendon", TippedTeam: "Geelong", Confidence: conf(70.2)},
		{GameID: 2003, Source: "Matter", HomeTeam: "Gold Coast", AwayTeam: "Collingwood", TippedTeam: "Collingwood", Confidence: conf(55.0)},
		{GameID: 2003, Source: "Squiggle", HomeTeam: "Gold Coast", AwayTeam: "Collingwood", TippedTeam: "Collingwood", Confidence: conf(58.4)},
		{GameID: 0, Source: "Mooseheads", HomeTeam: "Collingwood", AwayTeam: "Richmond", TippedTeam: "Collingwood", Confidence: conf(52.1)},
	}, nil
}

// FetchScores returns final scores for the completed round.
func (p *Provider) FetchScores(ctx context.Context, season int) ([]domain.ScoreUpdate, error) {
	_ = ctx
	return []domain.ScoreUpdate{
		{GameID: 2001, HomeScore: 95, AwayScore: 71, Complete: 100, Winner: "Richmond"},
		{GameID: 2002, HomeScore: 88, AwayScore: 80, Complete: 100, Winner: "Geelong"},
	}, nil
}

// FetchOdds returns head-to-head prices for the upcoming round, with one
// away side at long odds so upset detection has something to find.
func (p *Provider) FetchOdds(ctx context.Context) ([]domain.MatchOdds, error) {
	_ = ctx
	base := p.now().UTC().Truncate(time.Hour)
	return []domain.MatchOdds{
		{HomeTeam: "Gold Coast", AwayTeam: "Collingwood", Start: base.Add(2 * time.Hour), HomeOdds: 1.45, AwayOdds: 2.80, Bookmaker: "SampleBook"},
		{HomeTeam: "Collingwood", AwayTeam: "Richmond", Start: base.Add(26 * time.Hour), HomeOdds: 1.70, AwayOdds: 2.20, Bookmaker: "SampleBook"},
	}, nil
}
