// Package merge combines normalized games, tips, scores, and odds into the
// tip-sheet rows the filter and presentation layers consume.
package merge

import (
	"sort"
	"strconv"
	"strings"

	"afl-tipping-service/internal/domain"
)

// DefaultSourcePriority orders tip sources when several tip the same game.
// Earlier wins; sources not listed rank after all listed ones, first seen.
var DefaultSourcePriority = []string{"Squiggle", "Matter", "Mooseheads"}

// Options tunes join behavior.
type Options struct {
	SourcePriority []string
}

// Build left-joins games with tips, scores, and odds. Games are the preserved
// side: every game yields exactly one row whether or not anything matches.
// Tips join by game id first, then by the synthesized "home v away" name key;
// scores join by game id; odds join by name key only.
func Build(games []domain.Game, tips []domain.Tip, scores []domain.ScoreUpdate, odds []domain.MatchOdds, teams []domain.Team, opts Options) []domain.Row {
	priority := opts.SourcePriority
	if len(priority) == 0 {
		priority = DefaultSourcePriority
	}
	rank := sourceRank(priority)

	names := domain.TeamNames(teams)

	tipsByID := make(map[int][]domain.Tip)
	tipsByKey := make(map[string][]domain.Tip)
	for _, tip := range tips {
		if tip.GameID != 0 {
			tipsByID[tip.GameID] = append(tipsByID[tip.GameID], tip)
			continue
		}
		if tip.HomeTeam != "" && tip.AwayTeam != "" {
			key := domain.MatchKey(tip.HomeTeam, tip.AwayTeam)
			tipsByKey[key] = append(tipsByKey[key], tip)
		}
	}

	scoresByID := make(map[int]domain.ScoreUpdate, len(scores))
	for _, s := range scores {
		scoresByID[s.GameID] = s
	}

	oddsByKey := make(map[string]domain.MatchOdds, len(odds))
	for _, o := range odds {
		oddsByKey[domain.MatchKey(o.HomeTeam, o.AwayTeam)] = o
	}

	rows := make([]domain.Row, 0, len(games))
	for _, game := range games {
		row := baseRow(game, names)

		candidates := tipsByID[game.ID]
		if len(candidates) == 0 {
			candidates = tipsByKey[row.MatchKey()]
		}
		if tip, ok := pickTip(candidates, rank); ok {
			row.HasTip = true
			row.TipSource = tip.Source
			row.TippedTeam = tip.TippedTeam
			row.Confidence = tip.Confidence
			row.Margin = tip.Margin
		}

		if score, ok := scoresByID[game.ID]; ok {
			home, away := score.HomeScore, score.AwayScore
			row.HomeScore = &home
			row.AwayScore = &away
			if score.Complete > row.Complete {
				row.Complete = score.Complete
			}
			if score.Winner != "" {
				row.Winner = score.Winner
			}
		}

		if o, ok := oddsByKey[row.MatchKey()]; ok {
			home, away := o.HomeOdds, o.AwayOdds
			row.HomeOdds = &home
			row.AwayOdds = &away
			row.Bookmaker = o.Bookmaker
		}

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Start.Equal(rows[j].Start) {
			return rows[i].Start.Before(rows[j].Start)
		}
		return rows[i].GameID < rows[j].GameID
	})
	return rows
}

// baseRow projects a game into a row, resolving team names through the team
// map with the record's own name as fallback, then the raw id.
func baseRow(game domain.Game, names map[int]string) domain.Row {
	return domain.Row{
		GameID:     game.ID,
		Round:      game.Round,
		Start:      game.Start,
		Venue:      game.Venue,
		HomeTeamID: game.HomeTeamID,
		AwayTeamID: game.AwayTeamID,
		HomeTeam:   resolveName(names, game.HomeTeamID, game.HomeTeam),
		AwayTeam:   resolveName(names, game.AwayTeamID, game.AwayTeam),
		Preview:    game.Preview,
		Winner:     game.Winner,
		Complete:   game.Complete,
	}
}

func resolveName(names map[int]string, id int, fallback string) string {
	if name, ok := names[id]; ok {
		return name
	}
	if fallback != "" {
		return fallback
	}
	return strconv.Itoa(id)
}

// pickTip selects one tip per game by source priority; among equally ranked
// sources the first seen wins.
func pickTip(candidates []domain.Tip, rank map[string]int) (domain.Tip, bool) {
	if len(candidates) == 0 {
		return domain.Tip{}, false
	}
	best := candidates[0]
	bestRank := sourceRankOf(rank, best.Source)
	for _, tip := range candidates[1:] {
		if r := sourceRankOf(rank, tip.Source); r < bestRank {
			best = tip
			bestRank = r
		}
	}
	return best, true
}

func sourceRank(priority []string) map[string]int {
	rank := make(map[string]int, len(priority))
	for i, source := range priority {
		rank[strings.ToLower(source)] = i
	}
	return rank
}

func sourceRankOf(rank map[string]int, source string) int {
	if r, ok := rank[strings.ToLower(source)]; ok {
		return r
	}
	return len(rank)
}
