package cmd

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/worklog-dev/worklog/internal"
)

var (
	verbose    bool
	dbPath     string
	configPath string
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "worklog",
	Short: "Track what you work on and report on it later",
	Long: `A personal work log: record timestamped "start working on X" /
"stop working on X" events in a local database and reconstruct
human-readable activity reports from them.

Task references like #42, myrepo#42, myorg/myrepo#42 or <some.url> are
recognized in messages and resolved to links in reports.

Quick Start:
  worklog start myrepo#42 fix the frobnicator   # start working
  worklog stop                                  # stop working
  worklog report                                # what did I do today?
  worklog report --time-tracking                # how long did each task take?`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Custom database location")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Custom config file location")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// openStore opens the event database, honoring the --db override.
func openStore() (*sql.DB, *internal.EventStore, error) {
	path := dbPath
	if path == "" {
		var err error
		path, err = internal.DatabasePath()
		if err != nil {
			return nil, nil, err
		}
	}
	db, err := internal.OpenDatabase(path)
	if err != nil {
		return nil, nil, err
	}
	return db, internal.NewEventStore(db), nil
}

// loadConfig loads the config file, honoring the --config override.
func loadConfig() (internal.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = internal.ConfigPath()
		if err != nil {
			return internal.Config{}, err
		}
	}
	return internal.LoadConfig(path)
}
