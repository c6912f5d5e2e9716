package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/worklog-dev/worklog/internal"
)

var (
	reportFor          string
	reportFrom         string
	reportTo           string
	reportTimeTracking bool
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	refStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	durationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	openStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report on recorded work",
	Long: `Reconstruct task sessions from the event log and report on them.

The default report lists sessions chronologically. With --time-tracking the
sessions are aggregated per task and ordered by total time spent.

Examples:
  worklog report                        # today
  worklog report --for yesterday
  worklog report --for 2026-08-20
  worklog report --from 2026-08-17 --to 2026-08-21
  worklog report --time-tracking`,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()

		window, err := reportWindow(now)
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, store, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		events, err := store.EventsBetween(window.From, window.To)
		if err != nil {
			return err
		}

		// Carry-over: a session that started before the window may still
		// be the open one; the last pre-window event decides.
		if seed, err := store.LastEventBefore(window.From); err != nil {
			return err
		} else if seed != nil {
			events = append([]internal.Event{*seed}, events...)
		}

		reconstructor := internal.NewReconstructor(now, cfg.EOW())
		sessions, warnings, err := reconstructor.Reconstruct(events, window)
		if err != nil {
			return err
		}
		for _, w := range warnings {
			internal.LogWarn("%s", w)
		}

		out := cmd.OutOrStdout()
		if reportTimeTracking {
			rows := internal.TimeTrackingReport(sessions, cfg.LinkConfig())
			renderTimeTracking(out, rows, window)
		} else {
			rows := internal.ChronologicalReport(sessions, cfg.LinkConfig())
			renderChronological(out, rows, window)
		}
		return nil
	},
}

// reportWindow resolves the --for/--from/--to flags into a half-open
// reporting window, defaulting to today.
func reportWindow(now time.Time) (internal.Window, error) {
	if reportFor != "" && (reportFrom != "" || reportTo != "") {
		return internal.Window{}, &internal.InputError{Field: "flags", Reason: "--for and --from/--to are mutually exclusive"}
	}
	if reportFor != "" {
		day, err := internal.ParseDate(reportFor, now)
		if err != nil {
			return internal.Window{}, err
		}
		return internal.Day(day), nil
	}
	if reportFrom != "" || reportTo != "" {
		if reportFrom == "" || reportTo == "" {
			return internal.Window{}, &internal.InputError{Field: "flags", Reason: "--from and --to must be given together"}
		}
		from, err := internal.ParseDate(reportFrom, now)
		if err != nil {
			return internal.Window{}, err
		}
		to, err := internal.ParseDate(reportTo, now)
		if err != nil {
			return internal.Window{}, err
		}
		// --to names the last included day
		window := internal.Window{From: from, To: internal.Day(to).To}
		if err := window.Validate(); err != nil {
			return internal.Window{}, err
		}
		return window, nil
	}
	return internal.Day(now), nil
}

func renderChronological(out io.Writer, rows []internal.ChronRow, window internal.Window) {
	if len(rows) == 0 {
		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("No work recorded on %s", windowLabel(window))))
		return
	}

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Work on %s", windowLabel(window))))
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(w, titleStyle.Render("Start")+"\t"+titleStyle.Render("End")+"\t"+titleStyle.Render("Task")+"\t"+titleStyle.Render("Link")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 80))

	multiDay := window.To.Sub(window.From) > 24*time.Hour
	for _, row := range rows {
		start := timeStyle.Render(formatInstant(row.Start, multiDay))
		var end string
		switch row.EndKind {
		case internal.EndSynthetic, internal.EndOpen:
			end = openStyle.Render("open")
		default:
			end = timeStyle.Render(formatInstant(row.End, multiDay))
		}
		link := timeStyle.Render("—")
		if row.Link.URL != "" {
			link = linkStyle.Render(row.Link.URL)
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", start, end, refStyle.Render(row.TaskRef), link)
	}
	_ = w.Flush()
}

func renderTimeTracking(out io.Writer, rows []internal.TimeRow, window internal.Window) {
	if len(rows) == 0 {
		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("No work recorded on %s", windowLabel(window))))
		return
	}

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Time spent on %s", windowLabel(window))))
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(w, titleStyle.Render("Task")+"\t"+titleStyle.Render("Total")+"\t"+titleStyle.Render("Sessions")+"\t"+titleStyle.Render("Link")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 80))

	for _, row := range rows {
		total := openStyle.Render("open-ended")
		if row.Known {
			total = durationStyle.Render(formatDuration(row.Total))
		}
		link := timeStyle.Render("—")
		if row.Link.URL != "" {
			link = linkStyle.Render(row.Link.URL)
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\t\n", refStyle.Render(row.TaskRef), total, row.Sessions, link)
	}
	_ = w.Flush()
}

func windowLabel(window internal.Window) string {
	lastDay := window.To.Add(-time.Nanosecond)
	if window.From.Year() == lastDay.Year() && window.From.YearDay() == lastDay.YearDay() {
		return window.From.Format("Monday, Jan 02 2006")
	}
	return fmt.Sprintf("%s – %s", window.From.Format("Jan 02 2006"), lastDay.Format("Jan 02 2006"))
}

func formatInstant(t time.Time, multiDay bool) string {
	if multiDay {
		return t.Format("Jan 02 15:04")
	}
	return t.Format("15:04")
}

// formatDuration renders a duration as "8h30m", dropping zero components
// and rounding to the minute.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh%dm", h, m)
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportFor, "for", "", "Report for a single day (today, yesterday, 2026-08-20)")
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "First day of the report range")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "Last day of the report range (inclusive)")
	reportCmd.Flags().BoolVar(&reportTimeTracking, "time-tracking", false, "Aggregate sessions per task, ordered by time spent")
}
