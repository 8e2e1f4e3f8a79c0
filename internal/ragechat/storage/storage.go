// Package storage provides the key/value store that holds the persisted chat
// state: the transcript under HistoryKey and the theme under ThemeKey.
package storage

import (
	"errors"
	"fmt"
)

// Fixed keys of the persisted state. The two entries are independent.
const (
	HistoryKey = "chatHistory"
	ThemeKey   = "chatTheme"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Storage is a string key/value store.
type Storage interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error

	// Close releases the backend.
	Close() error
}

// Open creates the storage backend with the given name rooted at dataDir.
// The memory backend ignores dataDir.
func Open(backend, dataDir string) (Storage, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStorage(dataDir)
	case BackendSQLite:
		return NewSQLiteStorage(dataDir)
	case BackendMemory:
		return NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("%w: %s (expected %s, %s or %s)",
			ErrUnknownBackend, backend, BackendFile, BackendSQLite, BackendMemory)
	}
}
