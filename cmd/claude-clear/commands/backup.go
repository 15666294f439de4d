package commands

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(backupCmd)
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage configuration file backups",
	Long: `Manage the timestamped backups claude-clear writes before every clean.

Backups live next to the original file, named
<original>.backup.<YYYYMMDD_HHMMSS>. They are never removed implicitly;
use 'backup prune' to discard old ones.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}
