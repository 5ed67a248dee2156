// Package memory is an in-memory store backend used by tests.
package memory

import (
	"context"
	"sync"
)

// Backend keeps collection documents in a map. Safe for concurrent use.
type Backend struct {
	mu         sync.RWMutex
	data       map[string][]byte
	failWrites error
}

// New creates an empty in-memory backend.
func New() *Backend {
	return &Backend{data: make(map[string][]byte)}
}

// SetFailWrites makes every subsequent WriteCollection return err.
// Used by tests to exercise save-failure paths; pass nil to clear.
func (b *Backend) SetFailWrites(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failWrites = err
}

func (b *Backend) ReadCollection(_ context.Context, name string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.data[name], nil
}

func (b *Backend) WriteCollection(_ context.Context, name string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failWrites != nil {
		return b.failWrites
	}
	b.data[name] = data
	return nil
}
