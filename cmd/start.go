package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/worklog-dev/worklog/internal"
)

var (
	startAgo string
	startAt  string
)

var startCmd = &cobra.Command{
	Use:   "start <message>",
	Short: "Start working on something",
	Long: `Record a START event. Starting a new task implicitly stops whatever
was running.

The first word of the message is used as the task reference when it looks
like an issue reference (#42, myrepo#42, myorg/myrepo#42) or a bracketed
URL (<some.url>); otherwise the whole message is the reference.

Examples:
  worklog start myrepo#42 fix the frobnicator
  worklog start --ago 15m standup
  worklog start --at 09:00 emails`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := strings.Join(args, " ")
		ts, err := eventTimestamp(startAgo, startAt, time.Now())
		if err != nil {
			return err
		}

		db, store, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		taskRef := internal.DeriveTaskRef(message)
		id, err := store.Append(internal.EventStart, ts, taskRef, message)
		if err != nil {
			return err
		}

		internal.LogDebug("Recorded START event %d for %q", id, taskRef)
		fmt.Fprintf(cmd.OutOrStdout(), "Started %q at %s\n", taskRef, ts.Format("15:04"))
		return nil
	},
}

// eventTimestamp resolves the --ago/--at flags into a concrete instant,
// defaulting to now.
func eventTimestamp(ago, at string, now time.Time) (time.Time, error) {
	if ago != "" && at != "" {
		return time.Time{}, &internal.InputError{Field: "flags", Reason: "--ago and --at are mutually exclusive"}
	}
	if ago != "" {
		return internal.ParseAgo(ago, now)
	}
	if at != "" {
		return internal.ParseInstant(at, now)
	}
	return now, nil
}

func init() {
	rootCmd.AddCommand(startCmd)
	startCmd.Flags().StringVar(&startAgo, "ago", "", "Start this long ago (e.g. 15m, 1h30m)")
	startCmd.Flags().StringVar(&startAt, "at", "", "Start at this instant (e.g. 09:00, 2026-08-28 09:00)")
}
