package helper

import (
	"strconv"
	"strings"
	"time"
)

// Query parameters that fail to parse are dropped, not rejected: a bad
// semester or date simply leaves that filter dimension off.

const dateLayout = "2006-01-02"

// ParseDateParam parses a YYYY-MM-DD query value. Empty or malformed
// input yields nil.
func ParseDateParam(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil
	}
	return &t
}

// ParseIntParam parses an integer query value. Empty or malformed input
// yields nil.
func ParseIntParam(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// EndOfDay returns the last instant of t's day, for inclusive upper
// bounds on timestamp columns.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
