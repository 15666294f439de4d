package engine

import (
	"github.com/thoreinstein/claude-clear/internal/backup"
	ccerrors "github.com/thoreinstein/claude-clear/internal/errors"
)

// Mode selects what a run does to the target file.
type Mode string

const (
	// ModeClean transforms the document and writes it back, behind a
	// verified backup and an advisory lock.
	ModeClean Mode = "clean"

	// ModeDryRun produces the full report without touching the filesystem
	// beyond the initial read.
	ModeDryRun Mode = "dry-run"

	// ModeStatus loads and validates only; no classification or transform.
	ModeStatus Mode = "status"
)

// Result is the structured outcome of a single run. It is the only output
// the engine produces; rendering it for a terminal is the command layer's
// job.
type Result struct {
	// RunID uniquely identifies this invocation in logs and reports.
	RunID string `json:"run_id" yaml:"run_id"`

	// Mode records which mode the run executed in.
	Mode Mode `json:"mode" yaml:"mode"`

	// Success is true when the run reached its terminal reporting state.
	Success bool `json:"success" yaml:"success"`

	// DryRun mirrors Mode == ModeDryRun for consumers that only care
	// whether the filesystem was mutated.
	DryRun bool `json:"dry_run" yaml:"dry_run"`

	// TargetPath is the document the run operated on. Renderers are
	// expected to redact it before showing it to a user.
	TargetPath string `json:"target_path" yaml:"target_path"`

	// OriginalSize is the serialized size of the document before cleaning.
	// In status mode it is the on-disk file size.
	OriginalSize int64 `json:"original_size_bytes" yaml:"original_size_bytes"`

	// CleanedSize is the serialized size of the cleaned document. Zero in
	// status mode.
	CleanedSize int64 `json:"cleaned_size_bytes" yaml:"cleaned_size_bytes"`

	// RemovedPaths lists the dotted paths of every field the transform
	// removed (or would remove, in dry-run), in depth-first order.
	RemovedPaths []string `json:"removed_paths" yaml:"removed_paths"`

	// PreservedTopLevelKeys lists the root keys present after cleaning.
	PreservedTopLevelKeys []string `json:"preserved_top_level_keys" yaml:"preserved_top_level_keys"`

	// Warnings holds non-fatal structural findings from validation.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// Backup describes the verified backup taken before writing. Nil in
	// dry-run and status modes.
	Backup *backup.Record `json:"backup,omitempty" yaml:"backup,omitempty"`

	// ErrorKind categorizes the failure when Success is false.
	ErrorKind ccerrors.Kind `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
}

// BytesSaved returns how many serialized bytes cleaning removed.
func (r *Result) BytesSaved() int64 {
	if r.CleanedSize == 0 || r.CleanedSize > r.OriginalSize {
		return 0
	}
	return r.OriginalSize - r.CleanedSize
}

// ReductionPercent returns the size reduction as a percentage of the
// original size, or 0 when the original is empty.
func (r *Result) ReductionPercent() float64 {
	if r.OriginalSize == 0 {
		return 0
	}
	return float64(r.BytesSaved()) / float64(r.OriginalSize) * 100
}
