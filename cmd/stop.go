package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/worklog-dev/worklog/internal"
)

var (
	stopAgo string
	stopAt  string
)

var stopCmd = &cobra.Command{
	Use:   "stop [ref]",
	Short: "Stop working",
	Long: `Record a STOP event. With no argument the currently open task is
stopped, whatever it is. With a reference the STOP only applies when that
task is the open one.

Examples:
  worklog stop
  worklog stop myrepo#42
  worklog stop --ago 10m`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		message := strings.Join(args, " ")
		ts, err := eventTimestamp(stopAgo, stopAt, time.Now())
		if err != nil {
			return err
		}

		db, store, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		taskRef := ""
		if message != "" {
			taskRef = internal.DeriveTaskRef(message)
		}
		id, err := store.Append(internal.EventStop, ts, taskRef, message)
		if err != nil {
			return err
		}

		internal.LogDebug("Recorded STOP event %d", id)
		if taskRef == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Stopped at %s\n", ts.Format("15:04"))
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Stopped %q at %s\n", taskRef, ts.Format("15:04"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
	stopCmd.Flags().StringVar(&stopAgo, "ago", "", "Stop this long ago (e.g. 15m, 1h30m)")
	stopCmd.Flags().StringVar(&stopAt, "at", "", "Stop at this instant (e.g. 17:30, 2026-08-28 17:30)")
}
