package cmd

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/worklog-dev/worklog/internal"
)

// runCommand executes the root command against a temp database and an empty
// config, resetting the shared flag state afterwards.
func runCommand(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	return runCommandCfg(t, db, filepath.Join(t.TempDir(), "config.yaml"), args...)
}

// runCommandCfg is runCommand with an explicit config file.
func runCommandCfg(t *testing.T, db, cfg string, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	args = append([]string{"--db", db, "--config", cfg}, args...)
	rootCmd.SetArgs(args)
	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stdout)
	err := rootCmd.Execute()
	return stdout.String(), err
}

// resetFlags clears the package-level flag bindings between test runs.
func resetFlags() {
	dbPath = ""
	configPath = ""
	startAgo, startAt = "", ""
	stopAgo, stopAt = "", ""
	reportFor, reportFrom, reportTo = "", "", ""
	reportTimeTracking = false
}

func tempDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "db.sqlite3")
}

// loadRecentEvents reads back everything recorded yesterday or today, wide
// enough that --ago offsets near midnight stay visible.
func loadRecentEvents(t *testing.T, path string) []internal.Event {
	t.Helper()
	db, err := internal.OpenDatabase(path)
	if err != nil {
		t.Fatalf("OpenDatabase() error = %v", err)
	}
	defer db.Close()

	day := internal.Day(time.Now())
	events, err := internal.NewEventStore(db).EventsBetween(day.From.AddDate(0, 0, -1), day.To)
	if err != nil {
		t.Fatalf("EventsBetween() error = %v", err)
	}
	return events
}
