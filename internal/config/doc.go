// Package config manages claude-clear's own configuration.
//
// Configuration is read from config.yaml under the XDG config directory
// (~/.config/claude-clear on Linux), overridable per key through
// CLAUDE_CLEAR_* environment variables. All keys have defaults, so running
// without a config file is fully supported.
package config
