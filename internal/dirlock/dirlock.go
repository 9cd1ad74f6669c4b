// Package dirlock serializes live runs against a single directory.
//
// Grouping operates on a snapshot of a directory listing; a second process
// moving files mid-run would make the snapshot stale before the moves based
// on it complete. A flock-backed lock file inside the target directory keeps
// scan, plan, and move atomic with respect to other clipstitch processes.
// Dry-run never acquires the lock, since creating the lock file is itself a
// mutation.
package dirlock

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is the lock file created inside the directory being processed.
const LockFileName = ".clipstitch.lock"

// Lock holds an exclusive run lock for one directory.
type Lock struct {
	flock *flock.Flock
}

// Acquire takes the run lock for dir without blocking. A held lock means
// another clipstitch process is working on the same directory.
func Acquire(dir string) (*Lock, error) {
	path := filepath.Join(dir, LockFileName)
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire directory lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("another clipstitch run holds %s", path)
	}
	return &Lock{flock: fl}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.flock.Path()
}

// Release drops the lock. The lock file itself is left in place; flock
// semantics make removal racy against a concurrent acquirer.
func (l *Lock) Release() error {
	if l == nil || l.flock == nil {
		return nil
	}
	return l.flock.Unlock()
}
