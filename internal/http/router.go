// Package http registers the service's routes.
package http

import (
	nethttp "net/http"

	"afl-tipping-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/tipsheet", handler.Tipsheet)
	mux.HandleFunc("/tipsheet/summary", handler.Summary)
	mux.HandleFunc("/tipsheet/export", handler.ExportCSV)
	mux.HandleFunc("/tipsheet/export/datauri", handler.ExportDataURI)
	mux.HandleFunc("/rounds", handler.Rounds)
	mux.HandleFunc("/teams", handler.Teams)
	return mux
}
