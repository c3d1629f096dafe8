// Package jsonstore persists each collection as one JSON document
// with whole-file read/replace semantics. There is no locking and no
// version check: concurrent writers race and the last write wins.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Collection is one flat-file JSON array of records.
type Collection[T any] struct {
	path string
}

// NewCollection opens (lazily) the collection backed by filename
// under dir. The file is created on first save.
func NewCollection[T any](dir, filename string) *Collection[T] {
	return &Collection[T]{path: filepath.Join(dir, filename)}
}

// Path returns the backing file path.
func (c *Collection[T]) Path() string {
	return c.path
}

// Load reads and parses the whole collection. A missing file is an
// empty collection, not an error.
func (c *Collection[T]) Load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}

	items := []T{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse %s: %w", c.path, err)
	}
	return items, nil
}

// Save rewrites the whole collection pretty-printed, matching the
// 2-space indentation the CMS tooling expects in the data files.
func (c *Collection[T]) Save(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	return nil
}
