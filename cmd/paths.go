package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/worklog-dev/worklog/internal"
)

var pathsCmd = &cobra.Command{
	Use:       "paths {database|config}",
	Short:     "Print where worklog keeps its files",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"database", "config"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			path string
			err  error
		)
		switch args[0] {
		case "database":
			if dbPath != "" {
				path = dbPath
			} else {
				path, err = internal.DatabasePath()
			}
		case "config":
			if configPath != "" {
				path = configPath
			} else {
				path, err = internal.ConfigPath()
			}
		default:
			return fmt.Errorf("unknown path %q (want database or config)", args[0])
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}
