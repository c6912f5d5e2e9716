package testutil

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// timestampLayout mirrors the store's on-disk format: fixed-width
// fractional seconds in UTC so text comparison matches timestamp order.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// CreateInMemoryDB creates an in-memory SQLite database with the worklog
// schema applied.
func CreateInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create in-memory database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	schema := `
	CREATE TABLE IF NOT EXISTS evt_type (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	);
	INSERT OR IGNORE INTO evt_type(name) VALUES ('START'), ('STOP');
	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		evt_type INTEGER NOT NULL REFERENCES evt_type(id),
		timestamp TEXT NOT NULL,
		task_ref TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_events_timestamp ON events(timestamp);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("Failed to apply schema: %v", err)
	}

	return db
}

// InsertEvent seeds one event row directly, bypassing the store.
func InsertEvent(t *testing.T, db *sql.DB, kind string, ts time.Time, taskRef, message string) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO events (evt_type, timestamp, task_ref, message)
		 VALUES ((SELECT id FROM evt_type WHERE name = ?), ?, ?, ?)`,
		kind, ts.UTC().Format(timestampLayout), taskRef, message,
	)
	if err != nil {
		t.Fatalf("Failed to insert event: %v", err)
	}
}

// CountEvents returns the number of rows in the events table.
func CountEvents(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM events").Scan(&n); err != nil {
		t.Fatalf("Failed to count events: %v", err)
	}
	return n
}
