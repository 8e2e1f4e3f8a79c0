package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// FileStorage stores each key as a file in a directory.
type FileStorage struct {
	dir string
}

// NewFileStorage creates the directory if needed and returns a FileStorage.
func NewFileStorage(dir string) (*FileStorage, error) {
	// 0700 - conversation history is user-only
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileStorage{dir: dir}, nil
}

// Dir returns the storage directory.
func (s *FileStorage) Dir() string {
	return s.dir
}

// Path returns the file that holds key.
func (s *FileStorage) Path(key string) string {
	return filepath.Join(s.dir, key)
}

// Get implements Storage.
func (s *FileStorage) Get(key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set implements Storage. The value is written to a temporary file and renamed
// into place so readers never observe a partial write.
func (s *FileStorage) Set(key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "."+key+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.Path(key)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}

// Remove implements Storage.
func (s *FileStorage) Remove(key string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	if err := os.Remove(s.Path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

// Close implements Storage.
func (s *FileStorage) Close() error {
	return nil
}

func checkKey(key string) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf("invalid storage key: %q", key)
	}
	return nil
}
