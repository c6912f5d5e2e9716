package internal

import (
	"time"
)

// testDay is the fixed local calendar day the reconstruction tests run on.
var testDay = time.Date(2026, time.March, 9, 0, 0, 0, 0, time.Local)

// At returns the test day at the given wall-clock time.
func At(hour, minute int) time.Time {
	return time.Date(testDay.Year(), testDay.Month(), testDay.Day(), hour, minute, 0, 0, testDay.Location())
}

// CreateTestEvent creates an event whose reference doubles as its message.
func CreateTestEvent(id int64, kind EventKind, ts time.Time, taskRef string) Event {
	return Event{
		ID:        id,
		Kind:      kind,
		Timestamp: ts,
		TaskRef:   taskRef,
		Message:   taskRef,
	}
}

// CreateTestSession creates a closed session for report tests.
func CreateTestSession(taskRef string, start, end time.Time, kind EndKind) TaskSession {
	return TaskSession{
		TaskRef: taskRef,
		Message: taskRef,
		Start:   start,
		End:     end,
		EndKind: kind,
	}
}
