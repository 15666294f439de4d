package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/claude-clear/internal/backup"
	"github.com/thoreinstein/claude-clear/internal/cli/prompt"
	ccerrors "github.com/thoreinstein/claude-clear/internal/errors"
	"github.com/thoreinstein/claude-clear/internal/redact"
)

var backupRestoreForce bool

func init() {
	backupRestoreCmd.Flags().BoolVarP(&backupRestoreForce, "force", "f", false,
		"overwrite the configuration file without confirmation")
	backupCmd.AddCommand(backupRestoreCmd)
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore [timestamp]",
	Short: "Restore the configuration file from a backup",
	Long: `Restore the configuration file from a backup.

With a timestamp argument (as shown by 'backup list'), restores that
backup. Without one, an interactive picker selects among all backups.

The backup is parsed and verified before the original is overwritten; the
overwrite itself is atomic and preserves the original's permissions.`,
	Example: `  # Pick a backup interactively
  claude-clear backup restore

  # Restore a specific backup
  claude-clear backup restore 20260830_142501

  See Also: claude-clear backup list`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBackupRestore,
}

func runBackupRestore(cmd *cobra.Command, args []string) error {
	stamp := ""
	if len(args) == 1 {
		stamp = args[0]
	}
	return runBackupRestoreWithWriter(cmd.OutOrStdout(), os.Stdin, stamp)
}

func runBackupRestoreWithWriter(w io.Writer, in io.Reader, stamp string) error {
	target := targetPath()
	mgr := backup.NewManager()

	records, err := mgr.List(target)
	if err != nil {
		if ccerrors.Is(err, backup.ErrNoBackups) {
			return ccerrors.NewUserError(err, "Backups are created by 'claude-clear clean'")
		}
		return err
	}

	var rec *backup.Record
	if stamp != "" {
		rec = findByTimestamp(records, stamp)
		if rec == nil {
			return ccerrors.NewUserError(
				ccerrors.Newf("no backup with timestamp %s", stamp),
				"Run 'claude-clear backup list' to see available timestamps")
		}
	} else {
		rec, err = pickBackup(records)
		if err != nil {
			return err
		}
		if rec == nil {
			return nil // picker aborted
		}
	}

	if !backupRestoreForce {
		question := fmt.Sprintf("Overwrite %s with the backup from %s?",
			redact.Path(target), rec.CreatedAt.Format("2006-01-02 15:04:05"))
		ok, err := prompt.NewConfirmerWithIO(in, w).Confirm(question, false)
		if err != nil && !ccerrors.Is(err, prompt.ErrCancelled) {
			return err
		}
		if !ok {
			fmt.Fprintln(w, "Aborted.")
			return nil
		}
	}

	if err := mgr.Restore(*rec); err != nil {
		return err
	}

	fmt.Fprintf(w, "Restored %s from %s\n",
		redact.Path(target), redact.Path(rec.BackupPath))
	return nil
}

func findByTimestamp(records []backup.Record, stamp string) *backup.Record {
	for i := range records {
		if records[i].CreatedAt.Format(backup.TimestampFormat) == stamp {
			return &records[i]
		}
	}
	return nil
}

// pickBackup runs the interactive fuzzy picker over records. A nil record
// with nil error means the user aborted.
func pickBackup(records []backup.Record) (*backup.Record, error) {
	idx, err := fuzzyfinder.Find(
		records,
		func(i int) string {
			return fmt.Sprintf("%s (%s)",
				records[i].CreatedAt.Format("2006-01-02 15:04:05"),
				formatBytes(records[i].SizeBytes))
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			r := records[i]
			return fmt.Sprintf("Timestamp: %s\nCreated:   %s\nSize:      %s\nFile:      %s",
				r.CreatedAt.Format(backup.TimestampFormat),
				r.CreatedAt.Format("2006-01-02 15:04:05"),
				formatBytes(r.SizeBytes),
				redact.Path(r.BackupPath))
		}),
	)
	if err != nil {
		if ccerrors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, ccerrors.Wrap(err, "selecting backup")
	}
	return &records[idx], nil
}
