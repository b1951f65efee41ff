package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	catalogapp "github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/application/catalog"
)

// Ensure LocalImageStorage implements ImageStorage
var _ catalogapp.ImageStorage = (*LocalImageStorage)(nil)

// LocalImageStorage writes product images to a directory on disk. It
// is meant for development and tests, not for multi-instance
// deployments.
type LocalImageStorage struct {
	baseDir string
}

// NewLocalImageStorage creates a local storage rooted at baseDir
func NewLocalImageStorage(baseDir string) (*LocalImageStorage, error) {
	if baseDir == "" {
		baseDir = "uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalImageStorage{baseDir: baseDir}, nil
}

// Upload writes an image under the given key, creating intermediate
// directories as needed
func (s *LocalImageStorage) Upload(_ context.Context, storageKey string, data []byte, _ string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}

	path, err := s.resolve(storageKey)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write object: %w", err)
	}
	return nil
}

// Delete removes an image; deleting a missing key is not an error
func (s *LocalImageStorage) Delete(_ context.Context, storageKey string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}

	path, err := s.resolve(storageKey)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// resolve maps a storage key to a path inside baseDir, rejecting keys
// that would escape it
func (s *LocalImageStorage) resolve(storageKey string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(storageKey))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", errors.New("invalid storage key")
	}
	return filepath.Join(s.baseDir, clean), nil
}
