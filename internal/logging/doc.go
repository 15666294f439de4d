// Package logging provides structured logging for claude-clear built on log/slog.
//
// The default text handler is optimized for terminals: colorized levels when
// the writer is a TTY (respecting NO_COLOR and TERM=dumb), and automatic
// masking of secret-bearing attribute values via the redact package.
// A JSON handler is available for machine-readable output, and MultiHandler
// fans records out to multiple sinks (terminal plus a rotating log file).
package logging
