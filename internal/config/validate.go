package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidTimeout indicates a non-positive lock timeout.
	ErrInvalidTimeout = errors.New("lock_timeout_seconds must be positive")

	// ErrInvalidRetention indicates a non-positive backup retention count.
	ErrInvalidRetention = errors.New("backup.retention_count must be positive")
)

// PathError wraps a path validation failure with its config field name.
type PathError struct {
	Field string
	Path  string
	Err   error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %q: %v", e.Field, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *PathError) Unwrap() error {
	return e.Err
}

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if cfg.TargetPath != "" {
		if err := validatePath(cfg.TargetPath); err != nil {
			errs = append(errs, &PathError{
				Field: "target_path",
				Path:  cfg.TargetPath,
				Err:   err,
			})
		}
	}

	if cfg.LockTimeoutSeconds <= 0 {
		errs = append(errs, ErrInvalidTimeout)
	}

	if cfg.MinCleanSizeBytes < 0 {
		errs = append(errs, errors.New("min_clean_size_bytes must be non-negative"))
	}

	if cfg.Backup.RetentionCount <= 0 {
		errs = append(errs, ErrInvalidRetention)
	}

	return errs
}

// validatePath rejects paths with NUL bytes or parent-directory escapes.
func validatePath(path string) error {
	if strings.ContainsRune(path, 0) {
		return ErrInvalidPath
	}
	clean := filepath.Clean(path)
	if strings.HasPrefix(clean, "..") {
		return ErrInvalidPath
	}
	return nil
}
