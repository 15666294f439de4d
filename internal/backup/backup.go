package backup

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/claude-clear/internal/document"
	"github.com/thoreinstein/claude-clear/pkg/fileutil"
)

// Manager creates, lists, prunes, and restores sibling-file backups of the
// configuration document.
type Manager struct {
	now func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides the time source, used by tests to force timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewManager creates a backup Manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create copies the original, unmodified bytes of path to a sibling file
// named <path>.backup.<YYYYMMDD_HHMMSS> with owner-only permissions, then
// re-reads the copy and verifies it byte-for-byte against the source.
//
// On verification failure the partial backup is deleted and ErrIntegrity is
// returned; the caller must not proceed to mutate the original. An existing
// backup is never overwritten: a timestamp collision fails with ErrExists.
func (m *Manager) Create(path string) (*Record, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading source")
	}

	sum := sha256.Sum256(data)
	srcHash := hex.EncodeToString(sum[:])

	createdAt := m.now().UTC()
	backupPath := path + NameInfix + createdAt.Format(TimestampFormat)

	f, err := os.OpenFile(backupPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, BackupPerm)
	if err != nil {
		if os.IsExist(err) {
			return nil, errors.Wrapf(ErrExists, "%s", filepath.Base(backupPath))
		}
		return nil, errors.Wrap(err, "creating backup file")
	}

	_, writeErr := f.Write(data)
	closeErr := f.Close()
	if writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		os.Remove(backupPath)
		return nil, errors.Wrap(writeErr, "writing backup")
	}

	// Verify by re-reading what actually landed on disk.
	written, err := os.ReadFile(backupPath)
	if err != nil {
		os.Remove(backupPath)
		return nil, errors.Wrap(err, "re-reading backup for verification")
	}
	writtenSum := sha256.Sum256(written)
	if hex.EncodeToString(writtenSum[:]) != srcHash {
		os.Remove(backupPath)
		return nil, errors.Wrapf(ErrIntegrity, "backup content does not match source")
	}

	return &Record{
		SourcePath:  path,
		BackupPath:  backupPath,
		CreatedAt:   createdAt,
		SizeBytes:   int64(len(data)),
		SHA256:      srcHash,
		IntegrityOK: true,
	}, nil
}

// List returns all backups of path, newest first.
// Returns ErrNoBackups if none exist.
func (m *Manager) List(path string) ([]Record, error) {
	dir := filepath.Dir(path)
	prefix := filepath.Base(path) + NameInfix

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNoBackups, "no backups for %s", filepath.Base(path))
		}
		return nil, errors.Wrap(err, "reading backup directory")
	}

	var records []Record
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}

		stamp := strings.TrimPrefix(entry.Name(), prefix)
		createdAt, err := time.Parse(TimestampFormat, stamp)
		if err != nil {
			// Not one of ours; leave it alone.
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		// IntegrityOK stays false: listing only reads directory entries and
		// verifies nothing.
		records = append(records, Record{
			SourcePath: path,
			BackupPath: filepath.Join(dir, entry.Name()),
			CreatedAt:  createdAt,
			SizeBytes:  info.Size(),
		})
	}

	if len(records) == 0 {
		return nil, errors.Wrapf(ErrNoBackups, "no backups for %s", filepath.Base(path))
	}

	slices.SortFunc(records, func(a, b Record) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return records, nil
}

// Prune removes backups of path beyond the keep most recent. Pruning is an
// explicit operation; it is never triggered implicitly by a clean.
// Returns the number of backups removed.
func (m *Manager) Prune(path string, keep int) (int, error) {
	if keep < 0 {
		return 0, errors.New("keep must be non-negative")
	}

	records, err := m.List(path)
	if err != nil {
		if errors.Is(err, ErrNoBackups) {
			return 0, nil
		}
		return 0, err
	}

	removed := 0
	for i := keep; i < len(records); i++ {
		if err := m.Remove(records[i]); err != nil {
			return removed, err
		}
		removed++
	}

	return removed, nil
}

// Remove deletes a single backup file.
func (m *Manager) Remove(rec Record) error {
	if err := os.Remove(rec.BackupPath); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "removing backup %s", filepath.Base(rec.BackupPath))
	}
	return nil
}

// Restore writes the content of a backup over the original path atomically.
// The backup is parsed first so a corrupt copy is rejected before the
// original is touched.
func (m *Manager) Restore(rec Record) error {
	data, err := fileutil.ReadFileWithLimit(rec.BackupPath)
	if err != nil {
		return errors.Wrap(err, "reading backup")
	}

	if _, err := document.Parse(data); err != nil {
		return errors.Wrapf(ErrIntegrity, "backup is not a valid document: %v", err)
	}

	perm := os.FileMode(0o600)
	if info, err := os.Stat(rec.SourcePath); err == nil {
		perm = info.Mode().Perm()
	}

	if err := fileutil.AtomicWriteFile(rec.SourcePath, data, perm); err != nil {
		return errors.Wrap(err, "restoring document")
	}

	return nil
}
