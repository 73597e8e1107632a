package utils

import (
	"fmt"
	"time"
)

const DateOnlyFormat = "2006-01-02"

// ParseDateOnly parses a YYYY-MM-DD string as a UTC calendar date.
func ParseDateOnly(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateOnlyFormat, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// DayWindow returns the inclusive [00:00:00, 23:59:59] UTC bounds of the
// calendar day containing t.
func DayWindow(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.UTC)
	return start, end
}
