// Package storage provides the durable key-value layer raddesk stores
// persist their snapshots to. Each store owns exactly one key; every Set
// replaces the prior snapshot wholesale.
package storage

import (
	"errors"
	"fmt"
	"regexp"
)

// Driver identifies a concrete storage backend implementation.
type Driver string

const (
	DriverMemory Driver = "memory" // in-memory (tests)
	DriverJSON   Driver = "json"   // JSON files under a root dir (default)
	DriverSQLite Driver = "sqlite" // single sqlite database file
)

// ErrClosed is returned by operations on a closed storage.
var ErrClosed = errors.New("storage is closed")

// Storage is the snapshot persistence contract. Implementations must be
// safe for concurrent use.
type Storage interface {
	// Get returns the snapshot stored under key. found is false when the
	// key has never been written.
	Get(key string) (value []byte, found bool, err error)

	// Set replaces the snapshot stored under key.
	Set(key string, value []byte) error

	// Close releases backend resources. Further calls fail with ErrClosed.
	Close() error
}

// Open constructs a Storage for the given driver. path is the root
// directory for the JSON driver and the database file for sqlite; the
// memory driver ignores it.
func Open(driver Driver, path string) (Storage, error) {
	switch driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverJSON:
		return NewJSON(path)
	case DriverSQLite:
		return NewSQLite(path)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// validateKey rejects keys that could escape a backend's namespace.
func validateKey(key string) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("invalid storage key %q", key)
	}
	return nil
}
