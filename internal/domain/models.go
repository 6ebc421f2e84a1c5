// Package domain holds the canonical shapes flowing through the tipping
// pipeline: normalized upstream records and the combined tip-sheet row.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// Sentinel values substituted for fields the upstream feed omits.
const (
	UnknownVenue   = "Unknown Venue"
	MissingPreview = "No preview available."
)

// Team is the normalized team shape from the teams feed.
type Team struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Abbrev string `json:"abbrev,omitempty"`
}

// TeamNames builds the id-to-name lookup used to resolve team references.
func TeamNames(teams []Team) map[int]string {
	names := make(map[int]string, len(teams))
	for _, t := range teams {
		if t.ID != 0 && t.Name != "" {
			names[t.ID] = t.Name
		}
	}
	return names
}

// Game is a normalized fixture record. HomeTeam/AwayTeam carry resolved
// display names; the raw upstream ids are kept for joining.
type Game struct {
	ID         int       `json:"id"`
	Round      int       `json:"round"`
	Start      time.Time `json:"start"`
	Venue      string    `json:"venue"`
	HomeTeamID int       `json:"homeTeamId"`
	AwayTeamID int       `json:"awayTeamId"`
	HomeTeam   string    `json:"homeTeam"`
	AwayTeam   string    `json:"awayTeam"`
	Preview    string    `json:"preview"`
	Winner     string    `json:"winner,omitempty"`
	Complete   int       `json:"complete"`
}

// Tip is a normalized prediction record. Confidence and Margin are optional
// in the feed and stay nil when absent.
type Tip struct {
	GameID     int      `json:"gameId"`
	Source     string   `json:"source"`
	HomeTeam   string   `json:"homeTeam"`
	AwayTeam   string   `json:"awayTeam"`
	TippedTeam string   `json:"tippedTeam"`
	Confidence *float64 `json:"confidence,omitempty"`
	Margin     *float64 `json:"margin,omitempty"`
}

// ScoreUpdate is a normalized scores-feed record.
type ScoreUpdate struct {
	GameID    int    `json:"gameId"`
	HomeScore int    `json:"homeScore"`
	AwayScore int    `json:"awayScore"`
	Complete  int    `json:"complete"`
	Winner    string `json:"winner,omitempty"`
}

// MatchOdds carries head-to-head decimal prices for one match from the odds
// aggregator. Matches are identified by team names only; the aggregator has
// no notion of the fixture feed's game ids.
type MatchOdds struct {
	HomeTeam  string    `json:"homeTeam"`
	AwayTeam  string    `json:"awayTeam"`
	Start     time.Time `json:"start"`
	HomeOdds  float64   `json:"homeOdds"`
	AwayOdds  float64   `json:"awayOdds"`
	Bookmaker string    `json:"bookmaker"`
}

// Row is the combined unit the filter and presentation layers operate on:
// one game left-joined with at most one tip, plus optional scores and odds.
// Pointer fields mean "absent", never a default guess.
type Row struct {
	GameID     int       `json:"gameId"`
	Round      int       `json:"round"`
	Start      time.Time `json:"start"`
	Venue      string    `json:"venue"`
	HomeTeamID int       `json:"homeTeamId"`
	AwayTeamID int       `json:"awayTeamId"`
	HomeTeam   string    `json:"homeTeam"`
	AwayTeam   string    `json:"awayTeam"`
	Preview    string    `json:"preview"`
	Winner     string    `json:"winner,omitempty"`
	Complete   int       `json:"complete"`

	HomeScore *int `json:"homeScore,omitempty"`
	AwayScore *int `json:"awayScore,omitempty"`

	HomeOdds  *float64 `json:"homeOdds,omitempty"`
	AwayOdds  *float64 `json:"awayOdds,omitempty"`
	Bookmaker string   `json:"bookmaker,omitempty"`

	HasTip     bool     `json:"hasTip"`
	TipSource  string   `json:"tipSource,omitempty"`
	TippedTeam string   `json:"tippedTeam,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
	Margin     *float64 `json:"margin,omitempty"`
}

// ConfidenceOrZero treats an absent confidence as zero for filtering.
func (r Row) ConfidenceOrZero() float64 {
	if r.Confidence == nil {
		return 0
	}
	return *r.Confidence
}

// MatchKey synthesizes the "home v away" join key used when upstream records
// lack a shared game id. Keys are case-insensitive.
func MatchKey(home, away string) string {
	return strings.ToLower(strings.TrimSpace(home)) + " v " + strings.ToLower(strings.TrimSpace(away))
}

// MatchKey returns the row's name-pair join key.
func (r Row) MatchKey() string {
	return MatchKey(r.HomeTeam, r.AwayTeam)
}

// Label renders a human-readable fixture label.
func (r Row) Label() string {
	return fmt.Sprintf("%s v %s", r.HomeTeam, r.AwayTeam)
}

// Snapshot is one refresh cycle's worth of data, swapped wholesale into the
// store on success.
type Snapshot struct {
	Season    int       `json:"season"`
	FetchedAt time.Time `json:"fetchedAt"`
	Teams     []Team    `json:"teams"`
	Rows      []Row     `json:"rows"`
}
