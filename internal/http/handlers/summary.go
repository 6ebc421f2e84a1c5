package handlers

import (
	"net/http"

	"afl-tipping-service/internal/tipsheet"
)

const noUpsetsMessage = "no big upsets found"

type summaryResponse struct {
	Season           int                       `json:"season"`
	Round            *int                      `json:"round,omitempty"`
	ConfidenceByTeam []tipsheet.TeamConfidence `json:"confidenceByTeam"`
	TopPick          *rowView                  `json:"topPick,omitempty"`
	BiggestUpset     *rowView                  `json:"biggestUpset,omitempty"`
	Upsets           []rowView                 `json:"upsets"`
	Message          string                    `json:"message,omitempty"`
}

// Summary returns the aggregate views: per-team mean confidence, the top
// pick, and upset candidates.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	snap := h.svc.Snapshot()

	rows, round, err := h.applyFilters(snap.Rows, r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	resp := summaryResponse{
		Season:           snap.Season,
		Round:            round,
		ConfidenceByTeam: tipsheet.ConfidenceByTeam(rows),
		Upsets:           h.rowViews(tipsheet.Upsets(rows)),
	}

	now := h.now()
	if pick, ok := tipsheet.TopPick(rows); ok {
		view := h.rowView(pick, now)
		resp.TopPick = &view
	}
	if upset, ok := tipsheet.BiggestUpset(rows); ok {
		view := h.rowView(upset, now)
		resp.BiggestUpset = &view
	} else {
		resp.Message = noUpsetsMessage
	}
	if len(snap.Rows) == 0 {
		resp.Message = noDataMessage
	}

	writeJSON(w, http.StatusOK, resp, h.logger)
}
