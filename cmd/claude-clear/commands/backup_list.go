package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/claude-clear/internal/backup"
	ccerrors "github.com/thoreinstein/claude-clear/internal/errors"
	"github.com/thoreinstein/claude-clear/internal/redact"
)

var backupListJSON bool

func init() {
	backupListCmd.Flags().BoolVar(&backupListJSON, "json", false, "Output in JSON format")
	backupCmd.AddCommand(backupListCmd)
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available backups",
	Long: `List all backups of the configuration file, most recent first.

Each backup is identified by its 14-digit timestamp, which 'backup restore'
and 'backup prune' accept.`,
	Example: `  # List all backups
  claude-clear backup list

  # Output as JSON
  claude-clear backup list --json

  See Also:
    claude-clear backup restore - Restore from a backup
    claude-clear backup prune   - Discard old backups`,
	RunE: runBackupList,
}

func runBackupList(cmd *cobra.Command, _ []string) error {
	return runBackupListWithWriter(cmd.OutOrStdout())
}

func runBackupListWithWriter(w io.Writer) error {
	records, err := backup.NewManager().List(targetPath())
	if err != nil && !ccerrors.Is(err, backup.ErrNoBackups) {
		return err
	}

	if backupListJSON {
		if records == nil {
			records = []backup.Record{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "No backups available")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Backups are created automatically before claude-clear modifies the file.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sTIMESTAMP%s\t%sCREATED%s\t%sSIZE%s\t%sFILE%s\n",
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset)

	for _, rec := range records {
		fmt.Fprintf(tw, "%s%s%s\t%s\t%s\t%s\n",
			colorGreen, rec.CreatedAt.Format(backup.TimestampFormat), colorReset,
			rec.CreatedAt.Format("2006-01-02 15:04:05"),
			formatBytes(rec.SizeBytes),
			redact.Path(rec.BackupPath))
	}
	return tw.Flush()
}
