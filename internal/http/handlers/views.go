package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"afl-tipping-service/internal/domain"
	"afl-tipping-service/internal/logos"
	"afl-tipping-service/internal/tipsheet"
	"afl-tipping-service/internal/timeutil"
)

// rowView is the presentation shape for one combined row: domain fields plus
// the derived countdown, logo URLs, and upset flag.
type rowView struct {
	GameID      int      `json:"gameId"`
	Round       int      `json:"round"`
	StartTime   string   `json:"startTime"`
	Countdown   string   `json:"countdown"`
	Venue       string   `json:"venue"`
	HomeTeam    string   `json:"homeTeam"`
	AwayTeam    string   `json:"awayTeam"`
	HomeLogoURL string   `json:"homeLogoUrl"`
	AwayLogoURL string   `json:"awayLogoUrl"`
	HomeOdds    *float64 `json:"homeOdds,omitempty"`
	AwayOdds    *float64 `json:"awayOdds,omitempty"`
	Bookmaker   string   `json:"bookmaker,omitempty"`
	TipSource   string   `json:"tipSource,omitempty"`
	TippedTeam  string   `json:"tippedTeam,omitempty"`
	Confidence  *float64 `json:"confidence,omitempty"`
	Margin      *float64 `json:"margin,omitempty"`
	Preview     string   `json:"preview"`
	Winner      string   `json:"winner,omitempty"`
	HomeScore   *int     `json:"homeScore,omitempty"`
	AwayScore   *int     `json:"awayScore,omitempty"`
	Complete    int      `json:"complete"`
	Upset       bool     `json:"upset"`
}

type teamView struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Abbrev  string `json:"abbrev,omitempty"`
	LogoURL string `json:"logoUrl"`
}

type tipsheetResponse struct {
	Season    int       `json:"season"`
	FetchedAt time.Time `json:"fetchedAt"`
	Round     *int      `json:"round,omitempty"`
	Count     int       `json:"count"`
	Message   string    `json:"message,omitempty"`
	Rows      []rowView `json:"rows"`
}

type roundsResponse struct {
	Rounds       []int  `json:"rounds"`
	DefaultRound *int   `json:"defaultRound,omitempty"`
	Message      string `json:"message,omitempty"`
}

type teamsResponse struct {
	Teams []teamView `json:"teams"`
}

func (h *Handler) rowViews(rows []domain.Row) []rowView {
	now := h.now()
	views := make([]rowView, 0, len(rows))
	for _, row := range rows {
		views = append(views, h.rowView(row, now))
	}
	return views
}

func (h *Handler) rowView(row domain.Row, now time.Time) rowView {
	return rowView{
		GameID:      row.GameID,
		Round:       row.Round,
		StartTime:   row.Start.Format(time.RFC3339),
		Countdown:   timeutil.Countdown(row.Start, now),
		Venue:       row.Venue,
		HomeTeam:    row.HomeTeam,
		AwayTeam:    row.AwayTeam,
		HomeLogoURL: logos.URL(h.logoBase, row.HomeTeam),
		AwayLogoURL: logos.URL(h.logoBase, row.AwayTeam),
		HomeOdds:    row.HomeOdds,
		AwayOdds:    row.AwayOdds,
		Bookmaker:   row.Bookmaker,
		TipSource:   row.TipSource,
		TippedTeam:  row.TippedTeam,
		Confidence:  row.Confidence,
		Margin:      row.Margin,
		Preview:     row.Preview,
		Winner:      row.Winner,
		HomeScore:   row.HomeScore,
		AwayScore:   row.AwayScore,
		Complete:    row.Complete,
		Upset:       tipsheet.IsUpset(row),
	}
}

// applyFilters applies the round/team/confidence/upcoming query filters.
// When no round parameter is given, the default round is auto-selected
// (earliest with an incomplete game); round=all disables round filtering.
func (h *Handler) applyFilters(rows []domain.Row, r *http.Request) ([]domain.Row, *int, error) {
	q := r.URL.Query()

	var round *int
	switch raw := strings.TrimSpace(q.Get("round")); {
	case strings.EqualFold(raw, "all"):
		// no round filter
	case raw != "":
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, nil, errors.New("invalid round (expected a number or 'all')")
		}
		round = &parsed
	default:
		if def, ok := tipsheet.DefaultRound(rows); ok {
			round = &def
		}
	}
	if round != nil {
		rows = tipsheet.FilterRound(rows, *round)
	}

	if team := q.Get("team"); team != "" {
		rows = tipsheet.FilterTeam(rows, team)
	}

	if raw := strings.TrimSpace(q.Get("minConfidence")); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil || min < 0 || min > 100 {
			return nil, nil, errors.New("invalid minConfidence (expected 0-100)")
		}
		rows = tipsheet.FilterMinConfidence(rows, min)
	}

	if raw := strings.TrimSpace(q.Get("upcoming")); raw != "" {
		upcoming, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, nil, errors.New("invalid upcoming (expected a boolean)")
		}
		if upcoming {
			rows = tipsheet.FilterUpcoming(rows, h.now())
		}
	}

	return rows, round, nil
}
