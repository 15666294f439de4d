package errors

import (
	stderrors "errors"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindNone},
		{"not found", ErrNotFound, KindNotFound},
		{"wrapped not found", errors.Wrap(ErrNotFound, "loading"), KindNotFound},
		{"permission", errors.Wrap(ErrPermissionDenied, "opening"), KindPermissionDenied},
		{"malformed", errors.Wrapf(ErrMalformedDocument, "line 3"), KindMalformedDocument},
		{"backup integrity", ErrBackupIntegrity, KindBackupIntegrity},
		{"backup exists", errors.Wrap(ErrBackupExists, "creating"), KindBackupIntegrity},
		{"concurrent", ErrConcurrentOperation, KindConcurrentOperation},
		{"write", errors.Wrap(ErrWriteFailure, "renaming"), KindWriteFailure},
		{"unknown", stderrors.New("boom"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	err := NewUserError(ErrNotFound, "run claude-clear status")

	if !stderrors.Is(err, ErrNotFound) {
		t.Error("errors.Is should find the wrapped sentinel")
	}
	if err.Code != ExitUser {
		t.Errorf("Code = %d, want %d", err.Code, ExitUser)
	}
	if err.Suggestion == "" {
		t.Error("Suggestion should be populated")
	}
}

func TestExitError_NilErr(t *testing.T) {
	err := NewExitError(nil, ExitSystem)
	if got := err.Error(); got != "exit code 2" {
		t.Errorf("Error() = %q", got)
	}
}
