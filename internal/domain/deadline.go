package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-sql/civil"
)

// deadlineLayouts are tried in order. Day-first layouts come first; ISO dates
// are what the relational store renders for DATE columns.
var deadlineLayouts = []string{
	"2/1/2006",
	"2/1/2006 15:04:05",
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseDeadline parses a day-precision date written day-first (DD/MM/YYYY,
// D/M/YYYY) or as ISO YYYY-MM-DD. Any time-of-day component is discarded.
// ok is false for empty or unparseable input.
func ParseDeadline(raw string) (d civil.Date, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return civil.Date{}, false
	}
	for _, layout := range deadlineLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return civil.DateOf(t), true
		}
	}
	return civil.Date{}, false
}

// FormatDeadline renders d as DD/MM/YYYY.
func FormatDeadline(d civil.Date) string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}

// FormatISODate renders d as YYYY-MM-DD, the form written back to stores.
func FormatISODate(d civil.Date) string {
	return d.String()
}

// Today returns the current calendar date in loc.
func Today(now time.Time, loc *time.Location) civil.Date {
	if loc == nil {
		loc = time.UTC
	}
	return civil.DateOf(now.In(loc))
}
