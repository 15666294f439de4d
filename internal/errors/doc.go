// Package errors provides error handling conventions for the claude-clear CLI.
//
// This package defines sentinel errors for the engine's failure taxonomy,
// a Kind mapping for structured results, and an ExitError type for CLI exit
// code handling following standard Unix conventions.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific failure conditions
// using [errors.Is] regardless of how deeply they were wrapped:
//
//	if errors.Is(err, ccerrors.ErrConcurrentOperation) {
//	    // another invocation holds the lock
//	}
//
// # Error Kinds
//
// [KindOf] collapses an error chain to a stable [Kind] string for inclusion
// in structured results and JSON output. Unknown errors map to [KindInternal]
// so failures are never silently swallowed.
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion for CLI applications:
//
//	err := ccerrors.NewUserError(err, "Run: claude-clear status")
//	var exitErr *ccerrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
