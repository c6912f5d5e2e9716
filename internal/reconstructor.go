package internal

import (
	"fmt"
	"sort"
	"time"
)

// openSlot is the single "currently open task" threaded through the event
// scan. At most one task is open at any instant: a new START implicitly
// stops whatever was running.
type openSlot struct {
	taskRef string
	message string
	start   time.Time
}

// Reconstructor turns an ordered event sequence into task sessions.
// Reconstruction is pure: the same events and window always yield the same
// sessions.
type Reconstructor struct {
	// Now is the reference instant for the invocation.
	Now time.Time
	// AssumedEOW, when set, supplies the synthetic end for trailing
	// orphans started before it. When nil an orphan's duration is
	// unknown.
	AssumedEOW *TimeOfDay
}

// NewReconstructor creates a Reconstructor for the given invocation instant.
func NewReconstructor(now time.Time, assumedEOW *TimeOfDay) *Reconstructor {
	return &Reconstructor{Now: now, AssumedEOW: assumedEOW}
}

// Reconstruct scans events and produces the sessions whose start falls
// inside the window, ordered by start ascending. Events before window.From
// only update the open slot (carry-over from before the window) and are
// never emitted themselves.
//
// Warnings report data-quality oddities (unmatched STOPs, simultaneous
// STARTs); they never abort reconstruction.
func (r *Reconstructor) Reconstruct(events []Event, window Window) ([]TaskSession, []Warning, error) {
	if err := window.Validate(); err != nil {
		return nil, nil, err
	}

	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].Timestamp.Equal(sorted[j].Timestamp) {
			return sorted[i].Timestamp.Before(sorted[j].Timestamp)
		}
		return sorted[i].ID < sorted[j].ID
	})

	var (
		sessions []TaskSession
		warnings []Warning
		open     *openSlot
		prev     *Event
	)

	emit := func(end time.Time, kind EndKind) {
		if !open.start.Before(window.From) {
			sessions = append(sessions, TaskSession{
				TaskRef: open.taskRef,
				Message: open.message,
				Start:   open.start,
				End:     end,
				EndKind: kind,
			})
		}
		open = nil
	}

	for i := range sorted {
		evt := &sorted[i]
		if !evt.Timestamp.Before(window.To) {
			break
		}
		// Carry-over events before the window update the slot silently;
		// their oddities belong to an earlier window's report.
		inWindow := !evt.Timestamp.Before(window.From)
		switch evt.Kind {
		case EventStart:
			if inWindow && prev != nil && prev.Kind == EventStart && prev.Timestamp.Equal(evt.Timestamp) && prev.TaskRef != evt.TaskRef {
				warnings = append(warnings, Warning{
					At:      evt.Timestamp,
					Message: fmt.Sprintf("simultaneous starts for %q and %q; keeping insertion order", prev.TaskRef, evt.TaskRef),
				})
			}
			if open != nil {
				emit(evt.Timestamp, EndImplicit)
			}
			open = &openSlot{taskRef: evt.TaskRef, message: evt.Message, start: evt.Timestamp}
		case EventStop:
			if open == nil {
				if inWindow {
					warnings = append(warnings, Warning{
						At:      evt.Timestamp,
						Message: "stop event with no open task",
					})
				}
				break
			}
			if !matchesOpen(evt.TaskRef, open.taskRef) {
				if inWindow {
					warnings = append(warnings, Warning{
						At:      evt.Timestamp,
						Message: fmt.Sprintf("stop for %q does not match open task %q", evt.TaskRef, open.taskRef),
					})
				}
				break
			}
			emit(evt.Timestamp, EndExplicit)
		}
		prev = evt
	}

	if open != nil && window.Contains(open.start) {
		end, kind := r.orphanEnd(open.start, window)
		emit(end, kind)
	}

	return sessions, warnings, nil
}

// matchesOpen is the single decision point for STOP targeting. An untargeted
// STOP (empty ref) always matches; a targeted STOP must name the open task
// exactly. A STOP naming some other task is a no-op.
func matchesOpen(stopRef, openRef string) bool {
	return stopRef == "" || stopRef == openRef
}

// orphanEnd applies the end-of-work rule to a trailing orphan. Starts before
// the assumed end-of-work close at it; starts at or after it (or with no
// configured end-of-work) close at the following midnight. The synthetic end
// never extends past the window.
func (r *Reconstructor) orphanEnd(start time.Time, window Window) (time.Time, EndKind) {
	end := Day(start).To // midnight after the start's calendar day
	kind := EndOpen
	if r.AssumedEOW != nil {
		kind = EndSynthetic
		if r.AssumedEOW.After(start) {
			end = r.AssumedEOW.On(start)
		}
	}
	if window.To.Before(end) {
		end = window.To
	}
	return end, kind
}
