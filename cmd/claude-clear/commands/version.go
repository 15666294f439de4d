package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/claude-clear/cmd"
)

func init() {
	rootCmd.AddCommand(versionCmd)

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("claude-clear version {{.Version}}\n")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(c *cobra.Command, _ []string) {
		fmt.Fprintf(c.OutOrStdout(), "claude-clear %s (commit %s, built %s)\n",
			cmd.Version, cmd.Commit, cmd.Date)
	},
}
