package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/claude-clear/internal/config"
	"github.com/thoreinstein/claude-clear/internal/paths"
	"github.com/thoreinstein/claude-clear/internal/redact"
	"github.com/thoreinstein/claude-clear/pkg/fileutil"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing configuration")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	Long: `Write a default configuration file with the built-in settings.

The file lives at ` + "`<xdg-config>/claude-clear/config.yaml`" + ` and controls
the target path, lock timeout, small-file threshold, and backup retention.
Every key can also be set with a CLAUDE_CLEAR_* environment variable.`,
	Example: `  # Create the default config
  claude-clear init

  # Overwrite an existing config
  claude-clear init --force

  See Also: claude-clear status`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	return runInitWithWriter(cmd.OutOrStdout())
}

func runInitWithWriter(w io.Writer) error {
	configPath := paths.ConfigFilePath()

	if _, err := os.Stat(configPath); err == nil && !initForce {
		fmt.Fprintf(w, "Configuration already exists at %s\n", redact.Path(configPath))
		fmt.Fprintln(w, "Use --force to overwrite")
		return nil
	}

	if err := paths.EnsureDir(paths.ConfigDir(), paths.DefaultDirPerm); err != nil {
		return err
	}

	if err := fileutil.AtomicWriteYAML(configPath, config.Default()); err != nil {
		return err
	}

	fmt.Fprintf(w, "Wrote %s\n", redact.Path(configPath))
	return nil
}
