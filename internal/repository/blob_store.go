package repository

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"print-order-server/internal/domain"
)

type diskBlobStore struct {
	dir string
}

// NewDiskBlobStore creates a blob store writing into the given directory,
// which is also the directory served publicly under /uploads/.
func NewDiskBlobStore(dir string) domain.BlobStore {
	return &diskBlobStore{dir: dir}
}

// Save writes the blob under the given name and returns its filesystem path.
func (s *diskBlobStore) Save(name string, content io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	serverPath := filepath.Join(s.dir, name)
	out, err := os.Create(serverPath)
	if err != nil {
		return "", fmt.Errorf("create blob %s: %w", name, err)
	}
	defer out.Close()
	if _, err := io.Copy(out, content); err != nil {
		return "", fmt.Errorf("write blob %s: %w", name, err)
	}
	return serverPath, nil
}

// Remove deletes the blob at the given path.
func (s *diskBlobStore) Remove(serverPath string) error {
	return os.Remove(serverPath)
}
