package server

import "time"

const (
	// All API endpoints are small GETs against the in-memory snapshot.
	readTimeout = 5 * time.Second
	// The CSV export streams a full season of rows; give writes headroom.
	writeTimeout = 20 * time.Second
	// Keep-alives should outlive the 60s refresh cadence so polling
	// clients reuse their connections across snapshots.
	idleTimeout = 90 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
