package repository

import (
	"fmt"
	"path/filepath"

	"print-order-server/internal/domain"
)

const filesFile = "files.json"

type fileRepository struct {
	path   string
	logger domain.Logger
}

// NewFileRepository creates a file-metadata store backed by <dataDir>/files.json.
func NewFileRepository(dataDir string, logger domain.Logger) domain.FileRepository {
	return &fileRepository{
		path:   filepath.Join(dataDir, filesFile),
		logger: logger,
	}
}

// List returns all file metadata records in upload order.
func (r *fileRepository) List() ([]domain.FileMeta, error) {
	records, err := readArray[domain.FileMeta](r.path)
	if err != nil {
		return nil, fmt.Errorf("read files store: %w", err)
	}
	return records, nil
}

// Append adds the records and rewrites the store.
func (r *fileRepository) Append(records []domain.FileMeta) error {
	existing, err := readArray[domain.FileMeta](r.path)
	if err != nil {
		return fmt.Errorf("read files store: %w", err)
	}
	existing = append(existing, records...)
	if err := writeArray(r.path, existing); err != nil {
		return fmt.Errorf("write files store: %w", err)
	}
	return nil
}

// Clear replaces the store with an empty list. Blob deletion is the caller's
// responsibility.
func (r *fileRepository) Clear() error {
	if err := writeArray(r.path, []domain.FileMeta{}); err != nil {
		return fmt.Errorf("clear files store: %w", err)
	}
	return nil
}
