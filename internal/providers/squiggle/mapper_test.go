package squiggle

import (
	"testing"
	"time"

	"afl-tipping-service/internal/domain"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestMapGamesDropsInvalidRecords(t *testing.T) {
	records := []gameRecord{
		{ID: intPtr(1), Round: intPtr(1), Date: "2026-03-19 19:30:00", HomeTeamID: intPtr(3), AwayTeamID: intPtr(14)},
		{Round: intPtr(1), Date: "2026-03-20 19:10:00", HomeTeamID: intPtr(6), AwayTeamID: intPtr(3)},  // no id
		{ID: intPtr(3), Round: intPtr(1), Date: "2026-03-20 19:10:00", AwayTeamID: intPtr(3)},          // no home id
		{ID: intPtr(4), Round: intPtr(1), Date: "next thursday", HomeTeamID: intPtr(6), AwayTeamID: intPtr(3)}, // bad date
	}

	games := mapGames(records)
	if len(games) != 1 {
		t.Fatalf("expected 1 game to survive, got %d", len(games))
	}
	if games[0].ID != 1 {
		t.Fatalf("wrong survivor: %+v", games[0])
	}
}

func TestMapGamesNormalizesVenueLocalDates(t *testing.T) {
	// The feed serves dates in venue-local time with the offset in tz.
	records := []gameRecord{{
		ID: intPtr(1), Round: intPtr(1), Date: "2026-03-19 19:30:00", TZ: "+11:00",
		HomeTeamID: intPtr(3), AwayTeamID: intPtr(14),
	}}

	games := mapGames(records)
	want := time.Date(2026, 3, 19, 8, 30, 0, 0, time.UTC)
	if !games[0].Start.Equal(want) {
		t.Fatalf("start = %v, want instant %v", games[0].Start, want)
	}
}

func TestMapGamesMissingTZFallsBackToUTC(t *testing.T) {
	records := []gameRecord{{
		ID: intPtr(1), Date: "2026-03-19 19:30:00",
		HomeTeamID: intPtr(3), AwayTeamID: intPtr(14),
	}}

	games := mapGames(records)
	want := time.Date(2026, 3, 19, 19, 30, 0, 0, time.UTC)
	if !games[0].Start.Equal(want) {
		t.Fatalf("start = %v, want %v", games[0].Start, want)
	}
}

func TestMapGamesDefaultsVenueAndPreview(t *testing.T) {
	records := []gameRecord{{
		ID: intPtr(1), Date: "2026-03-19T19:30:00Z", HomeTeamID: intPtr(3), AwayTeamID: intPtr(14),
		Venue: "  ", Preview: "",
	}}

	games := mapGames(records)
	if games[0].Venue != domain.UnknownVenue {
		t.Fatalf("venue = %q", games[0].Venue)
	}
	if games[0].Preview != domain.MissingPreview {
		t.Fatalf("preview = %q", games[0].Preview)
	}
}

func TestMapGamesMissingRoundDefaultsToZero(t *testing.T) {
	records := []gameRecord{{
		ID: intPtr(9), Date: "2026-03-19T19:30:00Z", HomeTeamID: intPtr(3), AwayTeamID: intPtr(14),
	}}
	games := mapGames(records)
	if games[0].Round != 0 {
		t.Fatalf("round = %d", games[0].Round)
	}
}

func TestMapTeamsDropsUnnamed(t *testing.T) {
	records := []teamRecord{
		{ID: intPtr(3), Name: "Carlton", Abbrev: "CAR"},
		{ID: intPtr(4), Name: "   "},
		{Name: "Ghost"},
	}
	teams := mapTeams(records)
	if len(teams) != 1 || teams[0].Name != "Carlton" {
		t.Fatalf("unexpected teams: %+v", teams)
	}
}

func TestMapTipsKeepsNameOnlyTips(t *testing.T) {
	records := []tipRecord{
		{GameID: intPtr(2001), Source: "Squiggle", Tip: "Carlton", Confidence: floatPtr(61)},
		{Source: "Mooseheads", HomeTeam: "Carlton", AwayTeam: "Richmond", Tip: "Richmond"},
		{Source: "", Tip: "Carlton"},        // no source
		{Source: "Matter", Tip: "   "},      // no predicted winner
	}

	tips := mapTips(records)
	if len(tips) != 2 {
		t.Fatalf("expected 2 tips, got %d", len(tips))
	}
	if tips[1].GameID != 0 || tips[1].HomeTeam != "Carlton" {
		t.Fatalf("name-only tip mangled: %+v", tips[1])
	}
}

func TestMapTipsPreservesAbsentConfidence(t *testing.T) {
	tips := mapTips([]tipRecord{{GameID: intPtr(1), Source: "Squiggle", Tip: "Carlton"}})
	if tips[0].Confidence != nil {
		t.Fatalf("absent confidence should stay nil, got %v", *tips[0].Confidence)
	}
}

func TestMapScoresRequiresBothScores(t *testing.T) {
	records := []scoreRecord{
		{GameID: intPtr(2001), HomeScore: intPtr(88), AwayScore: intPtr(74), Complete: 100, Winner: "Carlton"},
		{GameID: intPtr(2002), HomeScore: intPtr(10)},
		{HomeScore: intPtr(1), AwayScore: intPtr(2)},
	}

	scores := mapScores(records)
	if len(scores) != 1 {
		t.Fatalf("expected 1 score, got %d", len(scores))
	}
	if scores[0].GameID != 2001 || scores[0].Winner != "Carlton" {
		t.Fatalf("unexpected score: %+v", scores[0])
	}
}
