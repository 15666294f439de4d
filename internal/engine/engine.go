package engine

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/thoreinstein/claude-clear/internal/backup"
	"github.com/thoreinstein/claude-clear/internal/document"
	ccerrors "github.com/thoreinstein/claude-clear/internal/errors"
	"github.com/thoreinstein/claude-clear/internal/lockfile"
	"github.com/thoreinstein/claude-clear/internal/logging"
	"github.com/thoreinstein/claude-clear/internal/redact"
	"github.com/thoreinstein/claude-clear/internal/transform"
	"github.com/thoreinstein/claude-clear/pkg/fileutil"
)

// DefaultLockTimeout bounds how long a run waits for the advisory lock
// before failing with a concurrent-operation error.
const DefaultLockTimeout = 5 * time.Second

// Options configures an Engine. TargetPath is required; the zero values of
// the remaining fields select sensible defaults.
type Options struct {
	// TargetPath is the configuration document to operate on.
	TargetPath string

	// Mode selects clean, dry-run, or status. Defaults to ModeDryRun so
	// that a zero-valued Options can never mutate anything.
	Mode Mode

	// LockTimeout bounds the advisory-lock wait in clean mode.
	LockTimeout time.Duration

	// Logger receives structured progress records. Defaults to a discard
	// logger.
	Logger *slog.Logger

	// Backups overrides the backup manager, used by tests to pin the
	// clock.
	Backups *backup.Manager
}

// Engine runs the load, validate, transform, backup, write pipeline over a
// configuration document. One Engine value per invocation; it holds no state
// between runs.
type Engine struct {
	target      string
	mode        Mode
	lockTimeout time.Duration
	logger      *slog.Logger
	backups     *backup.Manager
}

// New creates an Engine from opts.
func New(opts Options) *Engine {
	e := &Engine{
		target:      opts.TargetPath,
		mode:        opts.Mode,
		lockTimeout: opts.LockTimeout,
		logger:      opts.Logger,
		backups:     opts.Backups,
	}
	if e.mode == "" {
		e.mode = ModeDryRun
	}
	if e.lockTimeout <= 0 {
		e.lockTimeout = DefaultLockTimeout
	}
	if e.logger == nil {
		e.logger = logging.NewDiscard()
	}
	if e.backups == nil {
		e.backups = backup.NewManager()
	}
	return e
}

// Run executes the pipeline for the configured mode and returns the run's
// Result. The Result is non-nil even on failure: Success is false and
// ErrorKind carries the failure category, alongside the returned error.
//
// Only clean mode mutates the filesystem, and the write happens strictly
// after the backup has been created and verified, so any failure leaves the
// original file untouched.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	res := &Result{
		RunID:      uuid.NewString(),
		Mode:       e.mode,
		DryRun:     e.mode == ModeDryRun,
		TargetPath: e.target,
	}

	logger := e.logger.With("run_id", res.RunID, "mode", string(e.mode))
	logger.Debug("starting run", "target", redact.Path(e.target))

	err := e.run(ctx, logger, res)
	if err != nil {
		res.ErrorKind = ccerrors.KindOf(err)
		logger.Debug("run failed", "error_kind", string(res.ErrorKind))
		return res, err
	}

	res.Success = true
	logger.Debug("run complete",
		"removed", len(res.RemovedPaths),
		"bytes_saved", res.BytesSaved())
	return res, nil
}

func (e *Engine) run(ctx context.Context, logger *slog.Logger, res *Result) error {
	// The lock covers load through write. Dry-run and status never take
	// it: creating the lock file would itself touch the filesystem.
	if e.mode == ModeClean {
		lock, err := lockfile.Acquire(e.target, e.lockTimeout)
		if err != nil {
			return err
		}
		defer func() {
			if rerr := lock.Release(); rerr != nil {
				logger.Warn("releasing lock", "error", rerr)
			}
		}()
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := statTarget(e.target)
	if err != nil {
		return err
	}

	doc, err := document.Load(e.target)
	if err != nil {
		return err
	}
	logger.Debug("document loaded", "size_bytes", info.Size())

	for _, w := range document.Validate(doc) {
		res.Warnings = append(res.Warnings, w.String())
	}

	if e.mode == ModeStatus {
		res.OriginalSize = info.Size()
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	cleaned, removed := transform.Clean(doc)
	res.RemovedPaths = removed
	res.PreservedTopLevelKeys = cleaned.Keys()

	res.OriginalSize, err = document.EncodedSize(doc)
	if err != nil {
		return errors.Wrap(err, "sizing original document")
	}
	res.CleanedSize, err = document.EncodedSize(cleaned)
	if err != nil {
		return errors.Wrap(err, "sizing cleaned document")
	}
	logger.Debug("document transformed",
		"removed", len(removed),
		"original_bytes", res.OriginalSize,
		"cleaned_bytes", res.CleanedSize)

	if e.mode == ModeDryRun {
		return nil
	}

	rec, err := e.backups.Create(e.target)
	if err != nil {
		return err
	}
	res.Backup = rec
	logger.Debug("backup verified", "backup", redact.Path(rec.BackupPath))

	data, err := document.Encode(cleaned)
	if err != nil {
		return errors.Mark(errors.Wrap(err, "encoding cleaned document"), ccerrors.ErrWriteFailure)
	}
	if err := fileutil.AtomicWriteFile(e.target, data, info.Mode().Perm()); err != nil {
		return errors.Mark(err, ccerrors.ErrWriteFailure)
	}
	logger.Debug("document written", "size_bytes", res.CleanedSize)

	return nil
}

// statTarget stats the target and maps the usual I/O failures onto the
// shared error taxonomy.
func statTarget(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		return info, nil
	case os.IsNotExist(err):
		return nil, errors.Mark(err, ccerrors.ErrNotFound)
	case os.IsPermission(err):
		return nil, errors.Mark(err, ccerrors.ErrPermissionDenied)
	default:
		return nil, errors.Wrap(err, "stat target")
	}
}
