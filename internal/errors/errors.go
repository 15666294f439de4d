package errors

import (
	"errors"
	"fmt"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, configuration, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, permissions, etc.).
	ExitSystem = 2
)

// Sentinel errors for the engine's failure taxonomy.
// Packages wrap these with cockroachdb/errors so callers can match
// them with errors.Is anywhere in the chain.
var (
	// ErrNotFound indicates the configuration document does not exist.
	ErrNotFound = errors.New("configuration file not found")

	// ErrPermissionDenied indicates the document could not be read or written
	// due to file system permissions.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrMalformedDocument indicates the document is not valid JSON.
	// The wrapping error carries line/column position for display.
	ErrMalformedDocument = errors.New("malformed configuration document")

	// ErrBackupIntegrity indicates a backup failed post-write verification.
	// The clean operation must not proceed without a verified backup.
	ErrBackupIntegrity = errors.New("backup integrity verification failed")

	// ErrBackupExists indicates a backup path collision. Existing backups are
	// never overwritten.
	ErrBackupExists = errors.New("backup already exists")

	// ErrConcurrentOperation indicates another invocation holds the advisory
	// lock on the target document.
	ErrConcurrentOperation = errors.New("another cleaning operation is in progress")

	// ErrWriteFailure indicates the cleaned document could not be persisted.
	ErrWriteFailure = errors.New("write failed")
)

// Kind is a stable identifier for an error category, suitable for
// structured results and machine-readable output.
type Kind string

// Error kinds corresponding to the sentinel taxonomy.
const (
	KindNone                Kind = ""
	KindNotFound            Kind = "not_found"
	KindPermissionDenied    Kind = "permission_denied"
	KindMalformedDocument   Kind = "malformed_document"
	KindBackupIntegrity     Kind = "backup_integrity"
	KindConcurrentOperation Kind = "concurrent_operation"
	KindWriteFailure        Kind = "write_failure"
	KindInternal            Kind = "internal"
)

// KindOf maps an error chain to its Kind. A nil error maps to KindNone.
// Errors outside the known taxonomy map to KindInternal rather than being
// silently dropped.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrPermissionDenied):
		return KindPermissionDenied
	case errors.Is(err, ErrMalformedDocument):
		return KindMalformedDocument
	case errors.Is(err, ErrBackupIntegrity), errors.Is(err, ErrBackupExists):
		return KindBackupIntegrity
	case errors.Is(err, ErrConcurrentOperation):
		return KindConcurrentOperation
	case errors.Is(err, ErrWriteFailure):
		return KindWriteFailure
	default:
		return KindInternal
	}
}

// ExitError wraps an error with an exit code and optional suggestion for CLI
// applications. It implements the error interface and supports unwrapping via
// errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}
