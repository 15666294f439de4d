package backup

import (
	"time"

	ccerrors "github.com/thoreinstein/claude-clear/internal/errors"
)

// TimestampFormat is the backup name timestamp layout: YYYYMMDD_HHMMSS.
// Seconds granularity keeps collisions out of normal operation; an actual
// collision fails rather than silently overwriting.
const TimestampFormat = "20060102_150405"

// NameInfix sits between the original file name and the timestamp.
const NameInfix = ".backup."

// BackupPerm is the permission applied to backup files (owner read/write only).
const BackupPerm = 0o600

// DefaultRetentionCount is the default number of backups kept by Prune.
const DefaultRetentionCount = 5

// Sentinel errors, aliased from the shared taxonomy so callers can match
// either way.
var (
	// ErrIntegrity indicates the written backup did not match the source.
	ErrIntegrity = ccerrors.ErrBackupIntegrity

	// ErrExists indicates a timestamp collision with an existing backup.
	ErrExists = ccerrors.ErrBackupExists

	// ErrNoBackups indicates no backups exist for the target.
	ErrNoBackups = ccerrors.ErrNotFound
)

// Record describes a single verified backup. It is immutable once created;
// the engine never deletes a backup it just wrote. Lifecycle ends only via
// explicit Prune or user action.
type Record struct {
	// SourcePath is the file the backup was taken from.
	SourcePath string `json:"source_path"`

	// BackupPath is the sibling file holding the copy.
	BackupPath string `json:"backup_path"`

	// CreatedAt is the backup creation time.
	CreatedAt time.Time `json:"timestamp"`

	// SizeBytes is the size of the backed-up content.
	SizeBytes int64 `json:"size_bytes"`

	// SHA256 is the hex-encoded hash of the backup content.
	SHA256 string `json:"sha256,omitempty"`

	// IntegrityOK reports that the backup was re-read and verified against
	// the source after writing. Only Create sets it; List does not
	// re-verify existing backups.
	IntegrityOK bool `json:"integrity_ok"`
}
