package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/claude-clear/internal/document"
	ccerrors "github.com/thoreinstein/claude-clear/internal/errors"
)

func TestRootCommand_Metadata(t *testing.T) {
	require.Equal(t, "claude-clear", rootCmd.Use)
	require.NotEmpty(t, rootCmd.Short)
	require.True(t, rootCmd.SilenceErrors)
	require.True(t, rootCmd.SilenceUsage)

	for _, flag := range []string{"verbose", "quiet", "log-format", "log-file", "config", "target"} {
		require.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), "missing persistent flag %s", flag)
	}
}

func TestSubcommands_Registered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"clean", "status", "backup", "init", "version"} {
		require.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestCleanCommand_Metadata(t *testing.T) {
	require.Equal(t, "clean", cleanCmd.Use)
	require.NotNil(t, cleanCmd.Flags().Lookup("dry-run"))
	require.NotNil(t, cleanCmd.Flags().Lookup("force"))
	require.NotNil(t, cleanCmd.Flags().Lookup("output"))
}

func TestCleanError_Suggestions(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", ccerrors.ErrNotFound, ccerrors.ExitUser},
		{"malformed", ccerrors.ErrMalformedDocument, ccerrors.ExitUser},
		{"locked", ccerrors.ErrConcurrentOperation, ccerrors.ExitUser},
		{"permission", ccerrors.ErrPermissionDenied, ccerrors.ExitSystem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cleanError(tt.err)

			var exitErr *ccerrors.ExitError
			require.ErrorAs(t, err, &exitErr)
			require.Equal(t, tt.code, exitErr.Code)
			require.NotEmpty(t, exitErr.Suggestion)
		})
	}
}

func TestCleanError_PassthroughInternal(t *testing.T) {
	err := ccerrors.New("boom")
	require.Equal(t, err, cleanError(err))
}

func TestPrintErrorTo_RedactsPaths(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, ".claude.json")

	// A real load failure carries the raw path through its message chain.
	_, loadErr := document.Load(missing)
	require.Error(t, loadErr)

	var buf bytes.Buffer
	printErrorTo(&buf, cleanError(loadErr))

	out := buf.String()
	require.NotContains(t, out, dir, "rendered error leaks the raw directory")
	require.Contains(t, out, ".claude.json")
	require.Contains(t, out, "Hint:")

	// An os-level error whose message embeds the raw path must be rewritten
	// at the display boundary.
	_, statErr := os.Stat(missing)
	require.Error(t, statErr)

	buf.Reset()
	printErrorTo(&buf, cleanError(ccerrors.Mark(statErr, ccerrors.ErrNotFound)))

	out = buf.String()
	require.NotContains(t, out, dir, "rendered os error leaks the raw directory")
	require.Contains(t, out, ".claude.json")
}

func TestLogFileFlag_BareValueDefault(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("log-file")
	require.NotNil(t, flag)
	require.Contains(t, flag.NoOptDefVal, "claude-clear")
	require.True(t, strings.HasSuffix(flag.NoOptDefVal, ".log"))
}
