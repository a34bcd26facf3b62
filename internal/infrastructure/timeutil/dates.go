package timeutil

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used by the provider and the API.
const DateLayout = "2006-01-02"

// localDateTimeLayout is the provider's zone-less segment timestamp format.
const localDateTimeLayout = "2006-01-02T15:04:05"

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses YYYY-MM-DD as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// StartOfDay returns the start of the day (00:00:00) for the given time.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseLocalDateTime parses a segment timestamp.
// It accepts RFC3339 and the zone-less "2006-01-02T15:04:05" form, which is read as UTC.
func ParseLocalDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	t, err := time.Parse(localDateTimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid datetime %q: %w", s, err)
	}
	return t, nil
}
