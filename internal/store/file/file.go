// Package file is the production store backend: one JSON file per
// collection under a data directory.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Backend persists each collection as <dir>/<name>.json.
type Backend struct {
	dir string
}

// New creates a file backend rooted at dir. The directory is created
// lazily on first write.
func New(dir string) *Backend {
	return &Backend{dir: dir}
}

// ReadCollection returns the raw JSON document for a collection.
// A missing or unreadable file reads as (nil, nil): the collection does
// not exist yet. This favors availability over surfacing I/O noise on
// the read path.
func (b *Backend) ReadCollection(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(b.path(name))
	if err != nil {
		return nil, nil
	}
	return data, nil
}

// WriteCollection atomically replaces the collection file: the document
// is written to a temp file in the same directory and renamed over the
// target, so readers never observe a half-written file.
func (b *Backend) WriteCollection(_ context.Context, name string, data []byte) error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(b.dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmpName, b.path(name)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}

func (b *Backend) path(name string) string {
	return filepath.Join(b.dir, name+".json")
}
