// Package tipsheet holds the pure filter and aggregate functions applied to
// combined rows. Every function tolerates an empty input and returns an
// empty (never nil-panicking) result.
package tipsheet

import (
	"sort"
	"strings"
	"time"

	"afl-tipping-service/internal/domain"
)

// FilterRound keeps rows scheduled in the given round.
func FilterRound(rows []domain.Row, round int) []domain.Row {
	out := make([]domain.Row, 0, len(rows))
	for _, row := range rows {
		if row.Round == round {
			out = append(out, row)
		}
	}
	return out
}

// FilterTeam keeps rows where team matches home or away (case-insensitive).
func FilterTeam(rows []domain.Row, team string) []domain.Row {
	team = strings.TrimSpace(team)
	if team == "" {
		return rows
	}
	out := make([]domain.Row, 0, len(rows))
	for _, row := range rows {
		if strings.EqualFold(row.HomeTeam, team) || strings.EqualFold(row.AwayTeam, team) {
			out = append(out, row)
		}
	}
	return out
}

// FilterMinConfidence keeps rows whose confidence is at least min. An absent
// confidence counts as zero, so raising min never grows the result.
func FilterMinConfidence(rows []domain.Row, min float64) []domain.Row {
	out := make([]domain.Row, 0, len(rows))
	for _, row := range rows {
		if row.ConfidenceOrZero() >= min {
			out = append(out, row)
		}
	}
	return out
}

// FilterUpcoming keeps rows whose start time is strictly after now.
func FilterUpcoming(rows []domain.Row, now time.Time) []domain.Row {
	out := make([]domain.Row, 0, len(rows))
	for _, row := range rows {
		if row.Start.After(now) {
			out = append(out, row)
		}
	}
	return out
}

// Rounds returns the sorted distinct round numbers present in rows.
func Rounds(rows []domain.Row) []int {
	seen := make(map[int]struct{})
	for _, row := range rows {
		seen[row.Round] = struct{}{}
	}
	rounds := make([]int, 0, len(seen))
	for round := range seen {
		rounds = append(rounds, round)
	}
	sort.Ints(rounds)
	return rounds
}

// DefaultRound picks the earliest round still containing an incomplete game,
// falling back to the last round of the season. ok is false when rows is
// empty.
func DefaultRound(rows []domain.Row) (round int, ok bool) {
	rounds := Rounds(rows)
	if len(rounds) == 0 {
		return 0, false
	}
	incomplete := make(map[int]bool)
	for _, row := range rows {
		if row.Complete < 100 {
			incomplete[row.Round] = true
		}
	}
	for _, r := range rounds {
		if incomplete[r] {
			return r, true
		}
	}
	return rounds[len(rounds)-1], true
}
