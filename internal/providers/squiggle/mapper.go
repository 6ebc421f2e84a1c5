package squiggle

import (
	"strings"

	"afl-tipping-service/internal/domain"
	"afl-tipping-service/internal/timeutil"
)

// mapGames normalizes raw fixture records. Records missing a home/away team
// id or carrying an unparseable date are dropped, not errored: one bad row
// must not cost the whole fetch. Dates are local to the venue's tz offset;
// the stored instant is normalized to UTC.
func mapGames(records []gameRecord) []domain.Game {
	games := make([]domain.Game, 0, len(records))
	for _, rec := range records {
		if rec.ID == nil || rec.HomeTeamID == nil || rec.AwayTeamID == nil {
			continue
		}
		start, err := timeutil.ParseKickoff(rec.Date, timeutil.KickoffLocation(rec.TZ))
		if err != nil {
			continue
		}
		start = start.UTC()

		round := 0
		if rec.Round != nil {
			round = *rec.Round
		}

		games = append(games, domain.Game{
			ID:         *rec.ID,
			Round:      round,
			Start:      start,
			Venue:      orDefault(rec.Venue, domain.UnknownVenue),
			HomeTeamID: *rec.HomeTeamID,
			AwayTeamID: *rec.AwayTeamID,
			HomeTeam:   strings.TrimSpace(rec.HomeTeam),
			AwayTeam:   strings.TrimSpace(rec.AwayTeam),
			Preview:    orDefault(rec.Preview, domain.MissingPreview),
			Winner:     strings.TrimSpace(rec.Winner),
			Complete:   rec.Complete,
		})
	}
	return games
}

func mapTeams(records []teamRecord) []domain.Team {
	teams := make([]domain.Team, 0, len(records))
	for _, rec := range records {
		if rec.ID == nil || strings.TrimSpace(rec.Name) == "" {
			continue
		}
		teams = append(teams, domain.Team{
			ID:     *rec.ID,
			Name:   strings.TrimSpace(rec.Name),
			Abbrev: rec.Abbrev,
		})
	}
	return teams
}

// mapTips keeps tips that identify both a source and a predicted winner.
// Tips without a game id survive: the merger falls back to the name-pair key.
func mapTips(records []tipRecord) []domain.Tip {
	tips := make([]domain.Tip, 0, len(records))
	for _, rec := range records {
		if strings.TrimSpace(rec.Source) == "" || strings.TrimSpace(rec.Tip) == "" {
			continue
		}
		gameID := 0
		if rec.GameID != nil {
			gameID = *rec.GameID
		}
		tips = append(tips, domain.Tip{
			GameID:     gameID,
			Source:     strings.TrimSpace(rec.Source),
			HomeTeam:   strings.TrimSpace(rec.HomeTeam),
			AwayTeam:   strings.TrimSpace(rec.AwayTeam),
			TippedTeam: strings.TrimSpace(rec.Tip),
			Confidence: rec.Confidence,
			Margin:     rec.Margin,
		})
	}
	return tips
}

func mapScores(records []scoreRecord) []domain.ScoreUpdate {
	scores := make([]domain.ScoreUpdate, 0, len(records))
	for _, rec := range records {
		if rec.GameID == nil || rec.HomeScore == nil || rec.AwayScore == nil {
			continue
		}
		scores = append(scores, domain.ScoreUpdate{
			GameID:    *rec.GameID,
			HomeScore: *rec.HomeScore,
			AwayScore: *rec.AwayScore,
			Complete:  rec.Complete,
			Winner:    strings.TrimSpace(rec.Winner),
		})
	}
	return scores
}

func orDefault(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}
