package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// KickoffLabel is shown in place of a countdown once a game has started.
const KickoffLabel = "Kick-off!"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseKickoff parses an upstream kickoff timestamp. The feed mixes RFC3339
// strings with bare local-time layouts; bare layouts are interpreted in loc
// (the venue's offset from the feed), so the returned instant is correct even
// though the string carries no zone. A nil loc falls back to UTC.
func ParseKickoff(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("timeutil: empty kickoff timestamp")
	}
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	layouts := []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("timeutil: unparseable kickoff timestamp %q", value)
}

// KickoffLocation converts the feed's utc-offset string ("+11:00", "-05:30")
// into a fixed location. Absent or malformed offsets fall back to UTC so a
// bad record degrades instead of failing the fetch.
func KickoffLocation(offset string) *time.Location {
	offset = strings.TrimSpace(offset)
	if offset == "" {
		return time.UTC
	}
	sign := 1
	switch offset[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return time.UTC
	}
	hh, mm, _ := strings.Cut(offset[1:], ":")
	hours, err := strconv.Atoi(hh)
	if err != nil {
		return time.UTC
	}
	minutes := 0
	if mm != "" {
		if minutes, err = strconv.Atoi(mm); err != nil {
			return time.UTC
		}
	}
	if hours > 14 || minutes > 59 || minutes < 0 {
		return time.UTC
	}
	return time.FixedZone(offset, sign*(hours*3600+minutes*60))
}

// Countdown renders the time remaining until start as HH:MM:SS, clamped at
// zero. Once start has passed it returns KickoffLabel.
func Countdown(start, now time.Time) string {
	remaining := start.Sub(now)
	if remaining <= 0 {
		return KickoffLabel
	}
	remaining = remaining.Round(time.Second)
	hours := int(remaining / time.Hour)
	minutes := int(remaining % time.Hour / time.Minute)
	seconds := int(remaining % time.Minute / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
