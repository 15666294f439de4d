// Package commands implements the CLI commands for claude-clear.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/thoreinstein/claude-clear/internal/config"
	ccerrors "github.com/thoreinstein/claude-clear/internal/errors"
	"github.com/thoreinstein/claude-clear/internal/logging"
	"github.com/thoreinstein/claude-clear/internal/paths"
	"github.com/thoreinstein/claude-clear/internal/redact"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFlag holds the value of the --config flag.
var configFlag string

// targetFlag holds the value of the --target flag.
var targetFlag string

// cfg is the loaded configuration, populated by initConfig.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format (rotated); without a value, logs under the state dir")
	rootCmd.PersistentFlags().Lookup("log-file").NoOptDefVal =
		filepath.Join(paths.LogDir(), paths.AppName+".log")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"path to config file")
	rootCmd.PersistentFlags().StringVar(&targetFlag, "target", "",
		"path to the Claude configuration file (default ~/.claude.json)")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load(configFlag)
	if cfg == nil {
		cfg = config.Default()
	}
}

var rootCmd = &cobra.Command{
	Use:   "claude-clear",
	Short: "Clean conversation history and caches from the Claude configuration file",
	Long: `claude-clear removes conversation history and conversation caches
from the Claude configuration file (~/.claude.json) while preserving user
settings, MCP server definitions, and credentials.

Every clean writes a verified, timestamped backup next to the original
before touching it, and the write itself is atomic: a crash at any point
leaves either the old file or the new one, never a partial state.`,
	Example: `  # Preview what would be removed
  claude-clear clean --dry-run

  # Clean the configuration file
  claude-clear clean

  # Inspect the file without modifying anything
  claude-clear status

  # Manage backups
  claude-clear backup list
  claude-clear backup restore

  See Also: claude-clear init, claude-clear backup`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return ccerrors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("CLAUDE_CLEAR_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 1
				case "2":
					v = 2
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		// File output uses JSON format with rotation.
		sink := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		handlers = append(handlers, slog.NewJSONHandler(sink, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig surfaces config load and validation problems before any
// command runs.
func checkConfig(cmd *cobra.Command) error {
	if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "init" {
		return nil
	}

	if configLoadErr != nil {
		return ccerrors.NewUserError(configLoadErr,
			"Run 'claude-clear init' to create a default configuration")
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		return ccerrors.NewUserError(errs[0], "Fix the configuration file and retry")
	}

	return nil
}

// targetPath resolves the document path: --target flag, then config, then
// the built-in default.
func targetPath() string {
	if targetFlag != "" {
		return targetFlag
	}
	return cfg.TargetPath
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return ccerrors.ExitSuccess
	}

	printError(err)

	var exitErr *ccerrors.ExitError
	if ccerrors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch ccerrors.KindOf(err) {
	case ccerrors.KindNotFound, ccerrors.KindMalformedDocument:
		return ccerrors.ExitUser
	default:
		return ccerrors.ExitSystem
	}
}

// printError renders err to stderr with an optional suggestion.
func printError(err error) {
	printErrorTo(os.Stderr, err)
}

// printErrorTo renders err for the user. Error chains pick up raw
// filesystem paths from os-level wrappers, so the message is passed through
// redact.Message before display.
func printErrorTo(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %s\n", color.RedString("Error:"), redact.Message(err.Error()))

	var exitErr *ccerrors.ExitError
	if ccerrors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(w, "%s %s\n", color.YellowString("Hint:"), exitErr.Suggestion)
	}
}
