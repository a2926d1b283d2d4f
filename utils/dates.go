package utils

import (
	"errors"
	"time"
)

// ErrInvalidDate is returned for date strings that do not parse as YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date")

const dayLayout = "2006-01-02"

// StartOfDayUTC truncates t to UTC midnight. Two timestamps on the same UTC
// calendar day always normalize to the same instant, whatever zone they
// arrived in.
func StartOfDayUTC(t time.Time) time.Time {
	tt := t.UTC()
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfWeekUTC returns the most recent Sunday at UTC midnight on or before t.
func StartOfWeekUTC(t time.Time) time.Time {
	day := StartOfDayUTC(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// ParseDay parses a YYYY-MM-DD string into a normalized UTC midnight.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return StartOfDayUTC(t), nil
}

// FormatDay renders a time as its YYYY-MM-DD day key.
func FormatDay(t time.Time) string {
	return t.UTC().Format(dayLayout)
}
