// Package redisstore is an alternative store backend keeping each
// collection document in a single Redis key. It implements the same
// whole-document overwrite contract as the file backend.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Backend stores collection documents under pariwisata:collection:<name>.
type Backend struct {
	client *redis.Client
}

// New creates a redis-backed store using an established client.
func New(client *redis.Client) *Backend {
	return &Backend{client: client}
}

// ReadCollection returns the raw document. A missing key reads as
// (nil, nil); a connection failure propagates so callers can surface a
// storage error instead of silently serving an empty collection.
func (b *Backend) ReadCollection(ctx context.Context, name string) ([]byte, error) {
	data, err := b.client.Get(ctx, key(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", name, err)
	}
	return data, nil
}

// WriteCollection replaces the document. Collections have no TTL: they
// are the system of record when this backend is selected.
func (b *Backend) WriteCollection(ctx context.Context, name string, data []byte) error {
	if err := b.client.Set(ctx, key(name), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", name, err)
	}
	return nil
}

func key(name string) string {
	return "pariwisata:collection:" + name
}
