package tipsheet

import (
	"sort"
	"strings"

	"afl-tipping-service/internal/domain"
)

// UpsetOddsThreshold is the away-odds floor (strict) for an upset candidate.
const UpsetOddsThreshold = 2.5

// IsUpset reports whether the tipped winner is the away team at long odds.
// The threshold comparison is strict: exactly 2.5 is not an upset.
func IsUpset(row domain.Row) bool {
	if !row.HasTip || row.AwayOdds == nil {
		return false
	}
	return strings.EqualFold(row.TippedTeam, row.AwayTeam) && *row.AwayOdds > UpsetOddsThreshold
}

// Upsets returns the rows classified as upset candidates.
func Upsets(rows []domain.Row) []domain.Row {
	out := make([]domain.Row, 0)
	for _, row := range rows {
		if IsUpset(row) {
			out = append(out, row)
		}
	}
	return out
}

// TeamConfidence is the per-team mean confidence used for chart rendering.
type TeamConfidence struct {
	Team           string  `json:"team"`
	MeanConfidence float64 `json:"meanConfidence"`
	Tips           int     `json:"tips"`
}

// ConfidenceByTeam groups rows by tipped team and computes mean confidence,
// sorted ascending by mean (the chart draws smallest bars first). Rows
// without a tip or without a confidence value are skipped.
func ConfidenceByTeam(rows []domain.Row) []TeamConfidence {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, row := range rows {
		if !row.HasTip || row.Confidence == nil {
			continue
		}
		sums[row.TippedTeam] += *row.Confidence
		counts[row.TippedTeam]++
	}

	out := make([]TeamConfidence, 0, len(sums))
	for team, sum := range sums {
		out = append(out, TeamConfidence{
			Team:           team,
			MeanConfidence: sum / float64(counts[team]),
			Tips:           counts[team],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MeanConfidence != out[j].MeanConfidence {
			return out[i].MeanConfidence < out[j].MeanConfidence
		}
		return out[i].Team < out[j].Team
	})
	return out
}

// TopPick returns the row with the highest confidence. ok is false when no
// row carries a confidence value.
func TopPick(rows []domain.Row) (domain.Row, bool) {
	var best domain.Row
	found := false
	for _, row := range rows {
		if !row.HasTip || row.Confidence == nil {
			continue
		}
		if !found || *row.Confidence > *best.Confidence {
			best = row
			found = true
		}
	}
	return best, found
}

// BiggestUpset returns the upset candidate with the longest away odds. ok is
// false when there are no upset candidates.
func BiggestUpset(rows []domain.Row) (domain.Row, bool) {
	var best domain.Row
	found := false
	for _, row := range Upsets(rows) {
		if !found || *row.AwayOdds > *best.AwayOdds {
			best = row
			found = true
		}
	}
	return best, found
}
