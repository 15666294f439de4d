package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName is the application name used for config and log file locations.
const AppName = "claude-clear"

// TargetFileName is the well-known name of the Claude Code configuration
// document in the user's home directory.
const TargetFileName = ".claude.json"

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// Home returns the user's home directory, or an empty string if it cannot
// be determined. Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// DefaultTargetPath returns the default location of the configuration
// document to clean: ~/.claude.json.
func DefaultTargetPath() string {
	home := Home()
	if home == "" {
		return ""
	}
	return filepath.Join(home, TargetFileName)
}

// ConfigDir returns the directory holding the tool's own configuration.
// On Linux: ~/.config/claude-clear
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ConfigFilePath returns the path to the tool's config.yaml.
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// LogDir returns the directory for log files.
// On Linux: ~/.local/state/claude-clear (falls back to the cache home).
func LogDir() string {
	if xdg.StateHome != "" {
		return filepath.Join(xdg.StateHome, AppName)
	}
	return filepath.Join(xdg.CacheHome, AppName)
}

// EnsureDir creates the directory and any necessary parents with the given
// permissions. If perm is 0, DefaultDirPerm (0700) is used.
// Idempotent; returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ExpandHome expands a leading ~ to the user's home directory.
// Paths without a ~ prefix are returned unchanged.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}

	home := Home()
	if home == "" {
		return path
	}

	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
