// ABOUTME: Calendar-date parsing and normalization helpers.
// ABOUTME: Dates are bucketed as YYYY-MM-DD strings; timestamps are cut to their date.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical bucket key format.
const DateLayout = "2006-01-02"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// NormalizeDate turns a date or timestamp into its YYYY-MM-DD date component.
// Timestamps keep the calendar date written in them; no zone conversion happens.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty date")
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.Format(DateLayout), nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	return "", fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
}

// Key returns the bucket key for s, falling back to s itself when it
// cannot be parsed. Imported data is not schema-checked, so aggregation
// must tolerate whatever strings it contains.
func Key(s string) string {
	if d, err := NormalizeDate(s); err == nil {
		return d
	}
	return s
}

// ParseDate parses a date or timestamp into midnight of that calendar date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := NormalizeDate(s)
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout, d, loc)
}

// DateKey formats t's calendar date in t's own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysIn returns the number of days in t's month.
func DaysIn(t time.Time) int {
	y, m, _ := t.Date()
	return time.Date(y, m+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
