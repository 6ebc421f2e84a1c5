// Package requestutil holds small helpers shared by HTTP handlers and middleware.
package requestutil

import (
	"net/http"
	"strings"
)

// ClientIP returns the best-effort client address, preferring the first
// X-Forwarded-For hop when present.
func ClientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	return r.RemoteAddr
}
