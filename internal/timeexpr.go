package internal

import (
	"strings"
	"time"
)

// Layouts accepted for absolute instants, most specific first. Date-less
// layouts are anchored to the reference day.
var absoluteLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"15:04:05",
	"15:04",
}

// dateLayouts accepted by ParseDate for report ranges.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"Jan 2 2006",
	"Jan 2, 2006",
}

// ParseInstant parses an absolute time expression relative to now. A
// time-only expression ("15:04") lands on now's calendar day.
func ParseInstant(expr string, now time.Time) (time.Time, error) {
	expr = strings.TrimSpace(expr)
	for _, layout := range absoluteLayouts {
		t, err := time.ParseInLocation(layout, expr, now.Location())
		if err != nil {
			continue
		}
		if !strings.Contains(layout, "2006") {
			t = time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), t.Second(), 0, now.Location())
		}
		return t, nil
	}
	return time.Time{}, &InputError{Field: "time expression", Reason: "unrecognized instant: " + expr}
}

// ParseAgo parses a relative interval like "15m" or "1h30m" and returns the
// instant that far before now. A trailing "ago" is tolerated so
// `--ago "15m ago"` reads naturally.
func ParseAgo(expr string, now time.Time) (time.Time, error) {
	expr = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(expr), "ago"))
	d, err := time.ParseDuration(expr)
	if err != nil {
		return time.Time{}, &InputError{Field: "time expression", Reason: "unrecognized interval: " + expr}
	}
	if d < 0 {
		return time.Time{}, &InputError{Field: "time expression", Reason: "interval must not be negative: " + expr}
	}
	return now.Add(-d), nil
}

// ParseDate parses a calendar date in now's location.
func ParseDate(expr string, now time.Time) (time.Time, error) {
	expr = strings.TrimSpace(expr)
	switch strings.ToLower(expr) {
	case "today":
		return Day(now).From, nil
	case "yesterday":
		return Day(now).From.AddDate(0, 0, -1), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, expr, now.Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &InputError{Field: "date", Reason: "unrecognized date: " + expr}
}

// DeriveTaskRef picks the task reference out of a start message. The
// leading whitespace-delimited token is the reference when it looks like
// one; otherwise the whole message doubles as the reference.
func DeriveTaskRef(message string) string {
	message = strings.TrimSpace(message)
	first, _, _ := strings.Cut(message, " ")
	if IsLinkRef(first) {
		return first
	}
	return message
}
