package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

const (
	lockTimeout       = 3 * time.Second
	lockRetryInterval = 100 * time.Millisecond
)

// JSON stores each key as a file under a root directory. Writes are atomic
// (temp file plus rename) and guarded by a cross-process file lock so two
// app instances sharing a data directory cannot interleave snapshots.
type JSON struct {
	root     string
	fileLock *flock.Flock
	mu       sync.RWMutex
	closed   bool
}

// NewJSON creates the root directory if needed and returns a file-backed
// Storage rooted there.
func NewJSON(root string) (*JSON, error) {
	if root == "" {
		return nil, fmt.Errorf("json storage requires a root directory")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &JSON{
		root:     root,
		fileLock: flock.New(filepath.Join(root, ".lock")),
	}, nil
}

func (j *JSON) Get(key string) ([]byte, bool, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if j.closed {
		return nil, false, ErrClosed
	}
	if err := validateKey(key); err != nil {
		return nil, false, err
	}

	unlock, err := j.acquire()
	if err != nil {
		return nil, false, err
	}
	defer unlock()

	data, err := os.ReadFile(j.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read snapshot %q: %w", key, err)
	}
	return data, true, nil
}

func (j *JSON) Set(key string, value []byte) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.closed {
		return ErrClosed
	}
	if err := validateKey(key); err != nil {
		return err
	}

	unlock, err := j.acquire()
	if err != nil {
		return err
	}
	defer unlock()

	// Write to a temp file first, then rename. The rename is atomic on
	// the filesystems we care about, so readers never see a torn snapshot.
	path := j.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("failed to write temp snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace snapshot %q: %w", key, err)
	}
	return nil
}

func (j *JSON) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.closed = true
	return nil
}

func (j *JSON) path(key string) string {
	return filepath.Join(j.root, key+".json")
}

// acquire takes the cross-process lock with a bounded retry loop.
func (j *JSON) acquire() (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := j.fileLock.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire file lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("could not acquire file lock")
	}
	return func() { _ = j.fileLock.Unlock() }, nil
}
