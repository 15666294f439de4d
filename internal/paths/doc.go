// Package paths provides filesystem path resolution for claude-clear.
//
// The target document defaults to ~/.claude.json. The tool's own
// configuration and logs live under the XDG base directories
// (~/.config/claude-clear and ~/.local/state/claude-clear on Linux).
package paths
