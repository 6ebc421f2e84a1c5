package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"afl-tipping-service/internal/domain"
)

// ExportFilename is the fixed download name for the CSV export.
const ExportFilename = "afl_tipsheet.csv"

var exportHeader = []string{
	"Game ID", "Round", "Start Time", "Venue", "Home Team", "Away Team",
	"Home Odds", "Away Odds", "Tip Source", "Tipped Team", "Confidence",
	"Margin", "Winner", "Home Score", "Away Score", "Complete",
}

// ExportCSV streams the filtered rows as a CSV attachment.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	rows, _, err := h.applyFilters(h.svc.Rows(), r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	data, err := encodeCSV(rows)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to encode csv", h.logger)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ExportFilename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

type dataURIResponse struct {
	Filename string `json:"filename"`
	Rows     int    `json:"rows"`
	DataURI  string `json:"dataUri"`
}

// ExportDataURI returns the CSV as a base64 data URI for clients that build
// a download link instead of streaming the attachment.
func (h *Handler) ExportDataURI(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	rows, _, err := h.applyFilters(h.svc.Rows(), r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	data, err := encodeCSV(rows)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to encode csv", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, dataURIResponse{
		Filename: ExportFilename,
		Rows:     len(rows),
		DataURI:  "data:text/csv;base64," + base64.StdEncoding.EncodeToString(data),
	}, h.logger)
}

func encodeCSV(rows []domain.Row) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.GameID),
			strconv.Itoa(row.Round),
			row.Start.Format(time.RFC3339),
			row.Venue,
			row.HomeTeam,
			row.AwayTeam,
			formatFloat(row.HomeOdds),
			formatFloat(row.AwayOdds),
			row.TipSource,
			row.TippedTeam,
			formatFloat(row.Confidence),
			formatFloat(row.Margin),
			row.Winner,
			formatInt(row.HomeScore),
			formatInt(row.AwayScore),
			strconv.Itoa(row.Complete),
		}
		if err := cw.Write(record); err != nil {
			return nil, err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
