// Package redis provides a Redis-backed implementation of the storage.KV interface.
// All keys are namespaced with a prefix so several instances can share one server.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mmynk/masterbook/internal/storage"
)

// DefaultPrefix namespaces keys when no prefix is configured.
const DefaultPrefix = "masterbook:"

// Ensure Store implements storage.KV
var _ storage.KV = (*Store)(nil)

// Store implements storage.KV on top of plain Redis strings.
// It is safe for concurrent use.
type Store struct {
	rdb    *goredis.Client
	prefix string
}

// New connects to Redis and verifies connectivity with a PING.
// An empty prefix falls back to DefaultPrefix.
func New(ctx context.Context, opts *goredis.Options, prefix string) (*Store, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	s := &Store{
		rdb:    goredis.NewClient(opts),
		prefix: prefix,
	}
	if err := s.Ping(ctx); err != nil {
		s.rdb.Close()
		return nil, fmt.Errorf("failed to reach redis at %s: %w", opts.Addr, err)
	}

	return s, nil
}

// Close closes the Redis connection.
func (s *Store) Close() error {
	return s.rdb.Close()
}

// Ping verifies Redis connectivity. Useful for health checks.
func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// Get retrieves the value stored under key.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.rdb.Get(ctx, s.key(key)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s from redis: %w", key, err)
	}

	return value, true, nil
}

// Set stores value under key without expiry.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s to redis: %w", key, err)
	}

	return nil
}

func (s *Store) key(k string) string {
	return s.prefix + k
}
