package providers

import (
	"errors"
	"fmt"
	"time"
)

// RateLimitError captures a 429 from an upstream feed. QuotaRemaining carries
// the odds aggregator's X-Requests-Remaining header so callers can log how
// much of the monthly quota is left; the fixture feed leaves it empty.
type RateLimitError struct {
	Provider       string
	StatusCode     int
	RetryAfter     time.Duration
	QuotaRemaining string
	Message        string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "rate limited"
	}
	if e.Provider != "" {
		msg = e.Provider + ": " + msg
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
