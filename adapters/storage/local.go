package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalFileStore keeps uploaded files under a single base directory
type LocalFileStore struct {
	basePath string
}

// NewLocalFileStore creates a file store rooted at basePath
func NewLocalFileStore(basePath string) *LocalFileStore {
	return &LocalFileStore{basePath: basePath}
}

// Save writes data under name. Name collisions are resolved by appending a
// numeric suffix before the extension (report.csv -> report_1.csv, ...).
// Returns the stored name.
func (s *LocalFileStore) Save(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return "", fmt.Errorf("failed to create storage directory: %w", err)
	}

	storedName := s.uniqueName(name)
	if err := os.WriteFile(filepath.Join(s.basePath, storedName), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return storedName, nil
}

// Exists reports whether a stored file is present
func (s *LocalFileStore) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.basePath, name))
	return err == nil
}

// Path returns the path of a stored file
func (s *LocalFileStore) Path(name string) string {
	return filepath.Join(s.basePath, name)
}

// Read returns the contents of a stored file
func (s *LocalFileStore) Read(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.basePath, name))
}

func (s *LocalFileStore) uniqueName(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	candidate := name
	counter := 1
	for s.Exists(candidate) {
		candidate = fmt.Sprintf("%s_%d%s", base, counter, ext)
		counter++
	}
	return candidate
}
