package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/claude-clear/internal/backup"
)

var backupPruneKeep int

func init() {
	backupPruneCmd.Flags().IntVar(&backupPruneKeep, "keep", 0,
		"number of most recent backups to keep (default from config)")
	backupCmd.AddCommand(backupPruneCmd)
}

var backupPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Discard old backups",
	Long: `Remove all but the most recent backups of the configuration file.

Pruning never happens implicitly; a clean always keeps every existing
backup. The retention count comes from the config file
(backup.retention_count) unless --keep is given.`,
	Example: `  # Keep the configured number of backups (default 5)
  claude-clear backup prune

  # Keep only the two most recent
  claude-clear backup prune --keep 2`,
	RunE: runBackupPrune,
}

func runBackupPrune(cmd *cobra.Command, _ []string) error {
	return runBackupPruneWithWriter(cmd.OutOrStdout())
}

func runBackupPruneWithWriter(w io.Writer) error {
	keep := backupPruneKeep
	if keep <= 0 {
		keep = cfg.Backup.RetentionCount
	}

	removed, err := backup.NewManager().Prune(targetPath(), keep)
	if err != nil {
		return err
	}

	switch removed {
	case 0:
		fmt.Fprintf(w, "Nothing to prune (keeping up to %d backups)\n", keep)
	case 1:
		fmt.Fprintf(w, "Removed 1 backup, kept %d\n", keep)
	default:
		fmt.Fprintf(w, "Removed %d backups, kept %d\n", removed, keep)
	}
	return nil
}
