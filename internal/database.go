package internal

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// schema is applied on every open. The evt_type lookup table keeps the kind
// names out of the event rows; events is append-only.
const schema = `
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

// OpenDatabase opens the worklog database, creating the file and its parent
// directories on first use. The process is short-lived, so writes are forced
// synchronous rather than relying on WAL recovery.
func OpenDatabase(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, &StoreError{Op: "open", Path: path, Err: err}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(TRUNCATE)&_pragma=synchronous(FULL)")
	if err != nil {
		return nil, &StoreError{Op: "open", Path: path, Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StoreError{Op: "open", Path: path, Err: err}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, &StoreError{Op: "open", Path: path, Err: err}
	}

	return db, nil
}
