package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseInstant accepts either an RFC3339 timestamp or a YYYY-MM-DD date (midnight UTC).
func ParseInstant(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid instant %q (expected RFC3339 or YYYY-MM-DD)", value)
	}
	return t, nil
}

// DaysBetween returns the fractional number of days from start to end.
// Negative when end precedes start.
func DaysBetween(start, end time.Time) float64 {
	return end.Sub(start).Hours() / 24
}
