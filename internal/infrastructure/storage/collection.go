// Package storage implements file-backed persistence for the storefront
// collections. Each collection is a single JSON file holding the full
// record sequence; every save is a whole-file rewrite. Concurrency control
// is the caller's responsibility.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quickshop/storefront-api/internal/core/domain"
)

// Collection is a durable, named sequence of records of one type.
type Collection[T any] struct {
	path string
}

// NewCollection returns a collection persisted at path. The file is not
// created until the first Save.
func NewCollection[T any](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

// Path returns the backing file path.
func (c *Collection[T]) Path() string { return c.path }

// Exists reports whether the backing file has been written before.
func (c *Collection[T]) Exists() bool {
	_, err := os.Stat(c.path)
	return err == nil
}

// Load reads the full collection. A missing file is the bootstrap case and
// yields an empty sequence, not an error.
func (c *Collection[T]) Load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, &domain.PersistenceError{Op: "read " + filepath.Base(c.path), Err: err}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &domain.PersistenceError{Op: "decode " + filepath.Base(c.path), Err: err}
	}
	return records, nil
}

// Save overwrites the collection with records. The write goes to a temp
// file in the same directory which is then renamed over the target, so a
// crash mid-write never leaves a truncated collection behind.
func (c *Collection[T]) Save(records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &domain.PersistenceError{Op: "encode " + filepath.Base(c.path), Err: err}
	}

	dir := filepath.Dir(c.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return &domain.PersistenceError{Op: "create temp for " + filepath.Base(c.path), Err: err}
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &domain.PersistenceError{Op: "write " + filepath.Base(c.path), Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &domain.PersistenceError{Op: "close " + filepath.Base(c.path), Err: err}
	}

	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return &domain.PersistenceError{Op: "replace " + filepath.Base(c.path), Err: err}
	}
	return nil
}

// EnsureDir creates the data directory when missing.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return nil
}
