// Package lockfile provides advisory cross-invocation locking for the
// target configuration document.
//
// An external scheduler may run the cleaner at the same time a user invokes
// it manually, so the load→backup→write window is guarded by a lock file
// next to the target (<target>.lock) containing the holder's PID and the
// acquisition time. The lock is advisory: it coordinates cooperating
// invocations of this tool, nothing else.
package lockfile

import (
	"encoding/json"
	"os"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"

	ccerrors "github.com/thoreinstein/claude-clear/internal/errors"
)

// Suffix is appended to the target path to form the lock file path.
const Suffix = ".lock"

// DefaultTimeout bounds how long Acquire waits for a contended lock.
// No lock wait blocks indefinitely.
const DefaultTimeout = 5 * time.Second

// pollInterval is the delay between acquisition attempts while waiting.
const pollInterval = 100 * time.Millisecond

// staleAfter is the age beyond which a lock is considered abandoned even if
// its PID cannot be probed. Cleaning runs finish in seconds; anything this
// old is left over from a crashed run.
const staleAfter = 10 * time.Minute

// Info is the metadata written into the lock file.
type Info struct {
	PID        int       `json:"pid"`
	AcquiredAt time.Time `json:"acquired_at"`
}

// Lock is a held advisory lock. Release it when the guarded operation ends.
type Lock struct {
	path     string
	acquired bool
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

// Acquire takes the advisory lock for target, waiting up to timeout for a
// contended lock before failing with ErrConcurrentOperation. A timeout of
// zero or less uses DefaultTimeout.
//
// Stale locks, where the holding process no longer exists or the lock is
// older than a fixed horizon, are removed and acquisition is retried.
func Acquire(target string, timeout time.Duration) (*Lock, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	lockPath := target + Suffix
	deadline := time.Now().Add(timeout)

	for {
		ok, err := tryCreate(lockPath)
		if err != nil {
			return nil, err
		}
		if ok {
			return &Lock{path: lockPath, acquired: true}, nil
		}

		stale, err := isStale(lockPath)
		if err != nil {
			return nil, err
		}
		if stale {
			// Remove and retry immediately; a concurrent remover is fine
			// since the next tryCreate settles the race.
			if err := os.Remove(lockPath); err != nil && !os.IsNotExist(err) {
				return nil, errors.Wrap(err, "removing stale lock")
			}
			continue
		}

		if time.Now().After(deadline) {
			return nil, errors.Wrapf(ccerrors.ErrConcurrentOperation,
				"lock held after waiting %s", timeout)
		}
		time.Sleep(pollInterval)
	}
}

// Release removes the lock file. Releasing an already-released lock is a
// no-op.
func (l *Lock) Release() error {
	if !l.acquired {
		return nil
	}
	l.acquired = false

	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing lock file")
	}
	return nil
}

// tryCreate attempts to create the lock file exclusively.
// Returns false with no error if the lock is already held.
func tryCreate(lockPath string) (bool, error) {
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		if os.IsExist(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "creating lock file")
	}

	info := Info{
		PID:        os.Getpid(),
		AcquiredAt: time.Now().UTC(),
	}
	data, err := json.Marshal(info)
	if err == nil {
		_, err = f.Write(data)
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(lockPath)
		return false, errors.Wrap(err, "writing lock info")
	}

	return true, nil
}

// isStale reports whether an existing lock file was abandoned.
func isStale(lockPath string) (bool, error) {
	data, err := os.ReadFile(lockPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Holder released between our attempts.
			return true, nil
		}
		return false, errors.Wrap(err, "reading lock file")
	}

	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		// Unparseable lock files are treated as abandoned.
		return true, nil
	}

	if info.PID > 0 && !processAlive(info.PID) {
		return true, nil
	}
	if !info.AcquiredAt.IsZero() && time.Since(info.AcquiredAt) > staleAfter {
		return true, nil
	}

	return false, nil
}

// processAlive probes whether a PID refers to a running process.
func processAlive(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	err = proc.Signal(syscall.Signal(0))
	if err == nil {
		return true
	}
	// EPERM means the process exists but belongs to another user.
	return errors.Is(err, syscall.EPERM)
}
