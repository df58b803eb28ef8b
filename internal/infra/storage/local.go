package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

var _ Store = (*LocalStore)(nil)

// LocalStore writes artifacts to the local filesystem under a configured
// upload root.
type LocalStore struct {
	root string
}

func (s *LocalStore) Save(_ context.Context, data []byte, filename string, dir string) (string, error) {
	target := filepath.Join(s.root, dir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("creating upload directory: %w", err)
	}

	path := filepath.Join(target, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}

	return path, nil
}
