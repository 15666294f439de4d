package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/claude-clear/internal/cli/prompt"
	"github.com/thoreinstein/claude-clear/internal/engine"
	ccerrors "github.com/thoreinstein/claude-clear/internal/errors"
	"github.com/thoreinstein/claude-clear/internal/logging"
	"github.com/thoreinstein/claude-clear/internal/redact"
)

var (
	cleanDryRun bool
	cleanForce  bool
	cleanOutput string
)

func init() {
	cleanCmd.Flags().BoolVarP(&cleanDryRun, "dry-run", "n", false,
		"report what would be removed without modifying anything")
	cleanCmd.Flags().BoolVarP(&cleanForce, "force", "f", false,
		"skip the small-file confirmation prompt")
	cleanCmd.Flags().StringVarP(&cleanOutput, "output", "o", outputText,
		"output format: text, json, yaml")
	rootCmd.AddCommand(cleanCmd)
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove conversation history and caches from the configuration file",
	Long: `Remove conversation history and conversation caches from the Claude
configuration file.

Per-project history, message, and chat fields are removed, along with
root-level conversation caches; settings, MCP server definitions, and
anything holding keys, tokens, or credentials are preserved byte-for-byte.
A verified, timestamped backup is written next to the original before any
modification.

Files already smaller than the configured threshold rarely benefit from
cleaning; for those, clean asks for confirmation unless --force is given.`,
	Example: `  # Preview without modifying anything
  claude-clear clean --dry-run

  # Clean with confirmation for small files
  claude-clear clean

  # Clean without prompting
  claude-clear clean --force

  # Machine-readable result
  claude-clear clean -o json

  See Also: claude-clear status, claude-clear backup list`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return validOutputFormat(cleanOutput)
	},
	RunE: runClean,
}

func runClean(cmd *cobra.Command, _ []string) error {
	return runCleanWithWriter(cmd.Context(), cmd.OutOrStdout(), os.Stdin)
}

func runCleanWithWriter(ctx context.Context, w io.Writer, in io.Reader) error {
	target := targetPath()

	if !cleanDryRun && !cleanForce {
		ok, err := confirmSmallFile(target, w, in)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(w, "Aborted.")
			return nil
		}
	}

	mode := engine.ModeClean
	if cleanDryRun {
		mode = engine.ModeDryRun
	}

	e := engine.New(engine.Options{
		TargetPath:  target,
		Mode:        mode,
		LockTimeout: time.Duration(cfg.LockTimeoutSeconds) * time.Second,
		Logger:      logging.FromContext(ctx),
	})

	res, err := e.Run(ctx)
	if err != nil {
		return cleanError(err)
	}

	return renderResult(w, res, cleanOutput)
}

// confirmSmallFile prompts before cleaning a file below the configured size
// threshold. Returns true when cleaning should proceed.
func confirmSmallFile(target string, w io.Writer, in io.Reader) (bool, error) {
	info, err := os.Stat(target)
	if err != nil {
		// Let the engine produce the canonical error for a missing or
		// unreadable target.
		return true, nil
	}
	if info.Size() >= cfg.MinCleanSizeBytes {
		return true, nil
	}

	question := fmt.Sprintf("%s is only %s; cleaning is unlikely to help. Continue?",
		redact.Path(target), formatBytes(info.Size()))
	ok, err := prompt.NewConfirmerWithIO(in, w).Confirm(question, false)
	if err != nil {
		if ccerrors.Is(err, prompt.ErrCancelled) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}

// cleanError attaches user-facing suggestions to the engine's failure
// taxonomy.
func cleanError(err error) error {
	switch ccerrors.KindOf(err) {
	case ccerrors.KindNotFound:
		return ccerrors.NewUserError(err,
			"Check the target path, or set target_path in the config file")
	case ccerrors.KindMalformedDocument:
		return ccerrors.NewUserError(err,
			"The file is not valid JSON; repair it or restore a backup with 'claude-clear backup restore'")
	case ccerrors.KindConcurrentOperation:
		return ccerrors.NewUserError(err,
			"Another claude-clear run holds the lock; retry in a few seconds")
	case ccerrors.KindPermissionDenied:
		return ccerrors.NewSystemError(err,
			"Check file ownership and permissions on the target file")
	default:
		return err
	}
}
