package internal

import (
	"fmt"
	"time"
)

// EventKind distinguishes the two event types in the log.
type EventKind string

const (
	EventStart EventKind = "START"
	EventStop  EventKind = "STOP"
)

// ParseEventKind converts a stored kind name back into an EventKind.
func ParseEventKind(name string) (EventKind, error) {
	switch name {
	case string(EventStart):
		return EventStart, nil
	case string(EventStop):
		return EventStop, nil
	}
	return "", fmt.Errorf("unknown event kind: %q", name)
}

// Event is an immutable START/STOP fact from the event log.
// A STOP with an empty TaskRef is untargeted: it stops whatever is open.
type Event struct {
	ID        int64
	Kind      EventKind
	Timestamp time.Time
	TaskRef   string
	Message   string
}

// EndKind describes how a reconstructed session's end boundary was determined.
type EndKind int

const (
	// EndExplicit: a STOP event terminated the session.
	EndExplicit EndKind = iota
	// EndImplicit: a later START for a different task terminated it.
	EndImplicit
	// EndSynthetic: a trailing orphan closed by the assumed end-of-work rule.
	EndSynthetic
	// EndOpen: a trailing orphan with no assumed end-of-work configured.
	// End still holds the midnight fallback for display, but the duration
	// is unknown.
	EndOpen
)

func (k EndKind) String() string {
	switch k {
	case EndExplicit:
		return "explicit"
	case EndImplicit:
		return "implicit"
	case EndSynthetic:
		return "synthetic"
	case EndOpen:
		return "open"
	}
	return "unknown"
}

// TaskSession is a derived interval of work on one task. Sessions are
// reconstructed fresh from the event log on every report and never stored.
type TaskSession struct {
	TaskRef string
	Message string
	Start   time.Time
	End     time.Time
	EndKind EndKind
}

// Duration returns the session length. The second return is false when the
// session is a trailing orphan with no assumed end-of-work, in which case
// the duration is unknown rather than zero.
func (s TaskSession) Duration() (time.Duration, bool) {
	if s.EndKind == EndOpen {
		return 0, false
	}
	return s.End.Sub(s.Start), true
}

// Open reports whether the session had no explicit or implicit close.
func (s TaskSession) Open() bool {
	return s.EndKind == EndSynthetic || s.EndKind == EndOpen
}

// Window is a half-open [From, To) reporting interval.
type Window struct {
	From time.Time
	To   time.Time
}

// Validate rejects empty or inverted windows.
func (w Window) Validate() error {
	if !w.From.Before(w.To) {
		return &InputError{Field: "window", Reason: fmt.Sprintf("from %s must precede to %s", w.From.Format(time.RFC3339), w.To.Format(time.RFC3339))}
	}
	return nil
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

// Day returns the window covering the local calendar day of t.
func Day(t time.Time) Window {
	from := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return Window{From: from, To: from.AddDate(0, 0, 1)}
}

// TimeOfDay is a wall-clock time used for the assumed end-of-work rule.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" (24-hour clock). The whole string must
// match; trailing garbage is rejected.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// On anchors the time of day to t's calendar date.
func (tod TimeOfDay) On(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), tod.Hour, tod.Minute, 0, 0, t.Location())
}

// After reports whether tod falls strictly after t's wall-clock time,
// i.e. whether t is before tod on the same calendar day.
func (tod TimeOfDay) After(t time.Time) bool {
	h, m, _ := t.Clock()
	if h != tod.Hour {
		return h < tod.Hour
	}
	return m < tod.Minute
}

func (tod TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", tod.Hour, tod.Minute)
}

// Warning is a non-fatal data-quality note produced during reconstruction,
// e.g. a STOP with no matching open task.
type Warning struct {
	At      time.Time
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.At.Format("2006-01-02 15:04"), w.Message)
}
