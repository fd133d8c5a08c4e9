package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultFilePermissions is the permission mode for persisted state files.
// State files hold credentials, so they are readable by the owner only.
const DefaultFilePermissions = 0o600

// defaultDirPermissions is the permission mode for created state directories.
const defaultDirPermissions = 0o700

// FileStore is a Store backed by a single YAML file.
// The whole map is loaded at open time and rewritten on every mutation,
// which is cheap for the handful of keys this application persists
// (tokens, registration draft, current step).
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewFileStore opens (or creates) a file-backed store at path.
// A malformed existing file is an error: silently dropping persisted
// credentials would log the user out without explanation.
func NewFileStore(path string) (*FileStore, error) {
	store := &FileStore{
		path:   path,
		values: make(map[string]string),
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}

		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	if err = yaml.Unmarshal(content, &store.values); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}

	if store.values == nil {
		store.values = make(map[string]string)
	}

	return store, nil
}

// Get returns the value stored under key and whether it was present.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]

	return value, ok
}

// Set stores value under key and persists the store to disk.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value

	return s.flush()
}

// Delete removes key and persists the store to disk.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok {
		return nil
	}

	delete(s.values, key)

	return s.flush()
}

func (s *FileStore) flush() error {
	content, err := yaml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(s.path), defaultDirPermissions); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	if err = os.WriteFile(s.path, content, DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}
