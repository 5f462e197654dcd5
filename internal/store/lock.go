package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the ingest lock.
var ErrLocked = errors.New("another podstats ingest is already running")

// IngestLock serialises writers across processes.
type IngestLock struct {
	lock *flock.Flock
}

// AcquireIngestLock takes the exclusive lock at path without blocking.
func AcquireIngestLock(path string) (*IngestLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return &IngestLock{lock: lock}, nil
}

// Path returns the lock file location.
func (l *IngestLock) Path() string {
	return l.lock.Path()
}

// Release unlocks the ingest lock.
func (l *IngestLock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}
