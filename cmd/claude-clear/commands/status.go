package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/claude-clear/internal/backup"
	"github.com/thoreinstein/claude-clear/internal/engine"
	ccerrors "github.com/thoreinstein/claude-clear/internal/errors"
	"github.com/thoreinstein/claude-clear/internal/logging"
	"github.com/thoreinstein/claude-clear/internal/redact"
)

// largeFileThreshold is the size above which status suggests a clean.
const largeFileThreshold = 1024 * 1024

var statusFormat string

func init() {
	statusCmd.Flags().StringVarP(&statusFormat, "output", "o", outputText,
		"output format: text, json, yaml")
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the configuration file's size and health",
	Long: `Show the configuration file's presence, size, structural warnings,
and available backups without modifying anything.

A file larger than 1 MB is flagged as a candidate for cleaning.`,
	Example: `  # Human-readable status
  claude-clear status

  # JSON output for scripting
  claude-clear status -o json`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return validOutputFormat(statusFormat)
	},
	RunE: runStatus,
}

// statusReport is the structured status output.
type statusReport struct {
	Path        string   `json:"path" yaml:"path"`
	Exists      bool     `json:"exists" yaml:"exists"`
	SizeBytes   int64    `json:"size_bytes" yaml:"size_bytes"`
	Large       bool     `json:"large" yaml:"large"`
	Warnings    []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	BackupCount int      `json:"backup_count" yaml:"backup_count"`
}

func runStatus(cmd *cobra.Command, _ []string) error {
	return runStatusWithWriter(cmd.Context(), cmd.OutOrStdout())
}

func runStatusWithWriter(ctx context.Context, w io.Writer) error {
	target := targetPath()
	report := statusReport{Path: redact.Path(target)}

	e := engine.New(engine.Options{
		TargetPath: target,
		Mode:       engine.ModeStatus,
		Logger:     logging.FromContext(ctx),
	})

	res, err := e.Run(ctx)
	switch {
	case err == nil:
		report.Exists = true
		report.SizeBytes = res.OriginalSize
		report.Large = res.OriginalSize > largeFileThreshold
		report.Warnings = res.Warnings
	case ccerrors.KindOf(err) == ccerrors.KindNotFound:
		// Absence is a reportable state, not a failure.
	default:
		return err
	}

	records, err := backup.NewManager().List(target)
	if err != nil && !ccerrors.Is(err, backup.ErrNoBackups) {
		return err
	}
	report.BackupCount = len(records)

	switch statusFormat {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(report)
	default:
		renderStatusText(w, report)
		return nil
	}
}

func renderStatusText(w io.Writer, r statusReport) {
	fmt.Fprintf(w, "%sConfiguration:%s %s\n", colorBold, colorReset, r.Path)

	if !r.Exists {
		fmt.Fprintf(w, "  %s(file not found)%s\n", colorGray, colorReset)
		return
	}

	fmt.Fprintf(w, "  Size: %s\n", formatBytes(r.SizeBytes))
	if r.Large {
		fmt.Fprintf(w, "  %sThe configuration file is large; consider 'claude-clear clean'%s\n",
			colorYellow, colorReset)
	}
	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "  %sWarning:%s %s\n", colorYellow, colorReset, warn)
	}
	fmt.Fprintf(w, "  Backups: %d\n", r.BackupCount)
}
