package internal

import (
	"database/sql"
	"time"
)

// timestampLayout is how instants are persisted: RFC 3339 in UTC with
// fixed-width fractional seconds, so text comparison matches timestamp
// order. RFC3339Nano would drop trailing zeros and break that.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// EventStore provides append and range-query access to the event log.
type EventStore struct {
	db *sql.DB
}

// NewEventStore creates an EventStore over an open database.
func NewEventStore(db *sql.DB) *EventStore {
	return &EventStore{db: db}
}

// Append records a new event and returns its assigned id. The insert runs
// inside a transaction so concurrent invocations serialize at the store.
func (s *EventStore) Append(kind EventKind, timestamp time.Time, taskRef, message string) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, &StoreError{Op: "append", Err: err}
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO events (evt_type, timestamp, task_ref, message)
		 VALUES ((SELECT id FROM evt_type WHERE name = ?), ?, ?, ?)`,
		string(kind), timestamp.UTC().Format(timestampLayout), taskRef, message,
	)
	if err != nil {
		return 0, &StoreError{Op: "append", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &StoreError{Op: "append", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return 0, &StoreError{Op: "append", Err: err}
	}
	return id, nil
}

// EventsBetween returns events with start <= timestamp < end, ordered by
// timestamp ascending with ties in insertion order.
func (s *EventStore) EventsBetween(start, end time.Time) ([]Event, error) {
	rows, err := s.db.Query(
		`SELECT e.id, t.name, e.timestamp, e.task_ref, e.message
		 FROM events e JOIN evt_type t ON t.id = e.evt_type
		 WHERE e.timestamp >= ? AND e.timestamp < ?
		 ORDER BY e.timestamp ASC, e.id ASC`,
		start.UTC().Format(timestampLayout), end.UTC().Format(timestampLayout),
	)
	if err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}
	defer rows.Close()

	return scanEvents(rows)
}

// LastEventBefore returns the most recent event strictly before ts, or nil
// when the log has none. The open-task state at any instant depends only on
// this event: a START means that task is still open, a STOP means nothing
// is.
func (s *EventStore) LastEventBefore(ts time.Time) (*Event, error) {
	rows, err := s.db.Query(
		`SELECT e.id, t.name, e.timestamp, e.task_ref, e.message
		 FROM events e JOIN evt_type t ON t.id = e.evt_type
		 WHERE e.timestamp < ?
		 ORDER BY e.timestamp DESC, e.id DESC
		 LIMIT 1`,
		ts.UTC().Format(timestampLayout),
	)
	if err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}
	defer rows.Close()

	events, err := scanEvents(rows)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}
	return &events[0], nil
}

func scanEvents(rows *sql.Rows) ([]Event, error) {
	var events []Event
	for rows.Next() {
		var (
			evt      Event
			kindName string
			tsText   string
		)
		if err := rows.Scan(&evt.ID, &kindName, &tsText, &evt.TaskRef, &evt.Message); err != nil {
			return nil, &StoreError{Op: "query", Err: err}
		}
		kind, err := ParseEventKind(kindName)
		if err != nil {
			return nil, &StoreError{Op: "query", Err: err}
		}
		ts, err := time.Parse(time.RFC3339Nano, tsText)
		if err != nil {
			return nil, &StoreError{Op: "query", Err: err}
		}
		evt.Kind = kind
		evt.Timestamp = ts.Local()
		events = append(events, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}
	return events, nil
}
