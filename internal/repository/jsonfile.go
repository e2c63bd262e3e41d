// Package repository implements the flat-file persistence layer. Both stores
// follow the same cycle on every operation: read the whole JSON array from
// disk, mutate it in memory, write the whole array back. There is no locking
// around that cycle, so two concurrent mutations race and the second writer
// clobbers the first (last write wins). That is the documented contract, not
// an oversight; see the lost-update test.
package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// readArray loads a JSON array file. A missing or empty file reads as an
// empty store.
func readArray[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// writeArray replaces the store file with the given items, creating the data
// directory on first write.
func writeArray[T any](path string, items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
