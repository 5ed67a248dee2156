// Package store defines the whole-collection persistence contract: every
// collection is read and rewritten as one JSON array, last writer wins.
package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection names persisted by the back office.
const (
	Destinations = "destinations"
	Events       = "events"
	Reports      = "reports"
)

// Backend stores one JSON document per collection. ReadCollection returns
// (nil, nil) when the collection has never been written. There is no
// partial-update path: WriteCollection always replaces the whole document.
type Backend interface {
	ReadCollection(ctx context.Context, name string) ([]byte, error)
	WriteCollection(ctx context.Context, name string, data []byte) error
}

// Load reads the full ordered collection. Absent or unparseable data
// yields an empty slice rather than an error; a backend read failure
// (e.g. redis unreachable) is propagated.
func Load[T any](ctx context.Context, b Backend, name string) ([]T, error) {
	raw, err := b.ReadCollection(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	if len(raw) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		// Corrupt data reads as "no data yet".
		return []T{}, nil
	}
	return items, nil
}

// Save serializes the entire collection and overwrites the stored
// document. Unlike Load, failures here always propagate.
func Save[T any](ctx context.Context, b Backend, name string, items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	if err := b.WriteCollection(ctx, name, data); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}
