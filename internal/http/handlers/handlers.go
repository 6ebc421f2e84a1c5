// Package handlers wires HTTP routes to the tip-sheet service.
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	apptipsheet "afl-tipping-service/internal/app/tipsheet"
	"afl-tipping-service/internal/domain"
	"afl-tipping-service/internal/logging"
	"afl-tipping-service/internal/logos"
	"afl-tipping-service/internal/poller"
	"afl-tipping-service/internal/tipsheet"
)

const noDataMessage = "No game data available at the moment. Please try again later."
const noRoundGamesMessage = "No games found for the selected round."
const noMatchingGamesMessage = "No games match the selected filters."

type nowFunc func() time.Time

// Handler wires HTTP routes to the tip-sheet service.
type Handler struct {
	svc      *apptipsheet.Service
	logger   *slog.Logger
	now      nowFunc
	statusFn func() poller.Status
	logoBase string
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *apptipsheet.Service, logger *slog.Logger, statusFn func() poller.Status, logoBase string) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		now:      time.Now,
		statusFn: statusFn,
		logoBase: logoBase,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic, gated on recent refresh success.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil || h.statusFn().IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Tipsheet returns the filtered tip-sheet rows.
func (h *Handler) Tipsheet(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	snap := h.svc.Snapshot()

	rows, round, err := h.applyFilters(snap.Rows, r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	resp := tipsheetResponse{
		Season:    snap.Season,
		FetchedAt: snap.FetchedAt,
		Round:     round,
		Count:     len(rows),
		Rows:      h.rowViews(rows),
	}
	switch {
	case len(snap.Rows) == 0:
		resp.Message = noDataMessage
	case len(rows) == 0:
		resp.Message = emptyResultMessage(snap.Rows, round)
	}

	attrs := []any{
		slog.Int(logging.FieldSeason, snap.Season),
		slog.Int(logging.FieldCount, len(rows)),
	}
	if round != nil {
		attrs = append(attrs, slog.Int(logging.FieldRound, *round))
	}
	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "served tip sheet", attrs...)
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// emptyResultMessage distinguishes a round with no fixtures from a result
// emptied by the team/confidence/upcoming filters.
func emptyResultMessage(all []domain.Row, round *int) string {
	if round != nil && len(tipsheet.FilterRound(all, *round)) == 0 {
		return noRoundGamesMessage
	}
	return noMatchingGamesMessage
}

// Rounds lists the rounds present in the current snapshot.
func (h *Handler) Rounds(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	rows := h.svc.Rows()
	rounds := tipsheet.Rounds(rows)

	resp := roundsResponse{Rounds: rounds}
	if def, ok := tipsheet.DefaultRound(rows); ok {
		resp.DefaultRound = &def
	} else {
		resp.Message = "no rounds available"
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// Teams lists the current teams with derived logo URLs.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	teams := h.svc.Teams()
	views := make([]teamView, 0, len(teams))
	for _, t := range teams {
		views = append(views, teamView{
			ID:      t.ID,
			Name:    t.Name,
			Abbrev:  t.Abbrev,
			LogoURL: logos.URL(h.logoBase, t.Name),
		})
	}
	writeJSON(w, http.StatusOK, teamsResponse{Teams: views}, h.logger)
}
