package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/worklog-dev/worklog/internal"
)

// seedDay writes a small day of work into a fresh database: one closed
// session and one still open.
func seedDay(t *testing.T, path string) {
	t.Helper()
	db, err := internal.OpenDatabase(path)
	if err != nil {
		t.Fatalf("OpenDatabase() error = %v", err)
	}
	defer db.Close()

	store := internal.NewEventStore(db)
	day := internal.Day(time.Now()).From
	seed := []struct {
		kind internal.EventKind
		ts   time.Time
		ref  string
	}{
		{internal.EventStart, day.Add(9 * time.Hour), "#1"},
		{internal.EventStop, day.Add(9*time.Hour + 30*time.Minute), ""},
		{internal.EventStart, day.Add(10 * time.Hour), "#2"},
	}
	for _, e := range seed {
		if _, err := store.Append(e.kind, e.ts, e.ref, e.ref); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}
}

func TestReportCommand_Chronological(t *testing.T) {
	db := tempDBPath(t)
	seedDay(t, db)

	out, err := runCommand(t, db, "report")
	if err != nil {
		t.Fatalf("report error = %v", err)
	}

	if !strings.Contains(out, "#1") || !strings.Contains(out, "#2") {
		t.Errorf("report output missing task refs:\n%s", out)
	}
	if !strings.Contains(out, "09:00") || !strings.Contains(out, "09:30") {
		t.Errorf("report output missing session boundaries:\n%s", out)
	}
	if !strings.Contains(out, "open") {
		t.Errorf("report output should mark the trailing orphan open:\n%s", out)
	}
	// #1 precedes #2 chronologically.
	if strings.Index(out, "#1") > strings.Index(out, "#2") {
		t.Errorf("chronological report out of order:\n%s", out)
	}
}

func TestReportCommand_TimeTracking(t *testing.T) {
	db := tempDBPath(t)
	seedDay(t, db)

	// With an assumed end of work the orphan gets a concrete duration and
	// #2 outranks #1.
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cfg := "default_org: myorg\ndefault_repo: myrepo\nassumed_end_of_work: \"23:59\"\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := runCommandCfg(t, db, cfgPath, "report", "--time-tracking")
	if err != nil {
		t.Fatalf("report --time-tracking error = %v", err)
	}

	if !strings.Contains(out, "30m") {
		t.Errorf("time-tracking output missing #1 total:\n%s", out)
	}
	if !strings.Contains(out, "github.com/myorg/myrepo/issues/1") {
		t.Errorf("time-tracking output missing resolved link:\n%s", out)
	}
	if strings.Index(out, "#2") > strings.Index(out, "#1") {
		t.Errorf("time-tracking report should list #2 (longer) first:\n%s", out)
	}
}

func TestReportCommand_EmptyDay(t *testing.T) {
	out, err := runCommand(t, tempDBPath(t), "report", "--for", "2026-01-01")
	if err != nil {
		t.Fatalf("report on empty day error = %v", err)
	}
	if !strings.Contains(out, "No work recorded") {
		t.Errorf("empty report output = %q", out)
	}
}

func TestReportCommand_RejectsConflictingFlags(t *testing.T) {
	if _, err := runCommand(t, tempDBPath(t), "report", "--for", "today", "--from", "2026-01-01"); err == nil {
		t.Error("report should reject --for with --from")
	}
	if _, err := runCommand(t, tempDBPath(t), "report", "--from", "2026-01-02"); err == nil {
		t.Error("report should reject --from without --to")
	}
	if _, err := runCommand(t, tempDBPath(t), "report", "--from", "2026-01-05", "--to", "2026-01-01"); err == nil {
		t.Error("report should reject an inverted range")
	}
}

func TestReportWindow(t *testing.T) {
	now := time.Date(2026, time.March, 9, 14, 0, 0, 0, time.Local)
	defer func() { reportFor, reportFrom, reportTo = "", "", "" }()

	reportFor, reportFrom, reportTo = "", "", ""
	w, err := reportWindow(now)
	if err != nil {
		t.Fatalf("reportWindow() error = %v", err)
	}
	if !w.From.Equal(internal.Day(now).From) {
		t.Errorf("default window = %+v, want today", w)
	}

	reportFor = "yesterday"
	w, err = reportWindow(now)
	if err != nil {
		t.Fatalf("reportWindow(--for yesterday) error = %v", err)
	}
	if !w.From.Equal(internal.Day(now).From.AddDate(0, 0, -1)) {
		t.Errorf("--for yesterday window = %+v", w)
	}

	reportFor = ""
	reportFrom, reportTo = "2026-03-02", "2026-03-06"
	w, err = reportWindow(now)
	if err != nil {
		t.Fatalf("reportWindow(range) error = %v", err)
	}
	if w.To.Sub(w.From) != 5*24*time.Hour {
		t.Errorf("range window spans %s, want 5 days (--to inclusive)", w.To.Sub(w.From))
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{d: 30 * time.Minute, want: "30m"},
		{d: 8 * time.Hour, want: "8h"},
		{d: 90 * time.Minute, want: "1h30m"},
		{d: 0, want: "0m"},
		{d: 8*time.Hour + 29*time.Second, want: "8h"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
