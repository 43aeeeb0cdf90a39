// Package storage provides abstractions for durable key-value storage.
package storage

import (
	"context"
)

// Well-known keys. Collections are stored as one JSON array per key.
const (
	KeyMasters = "LLN_MASTERS"
	KeyPosts   = "LLN_POSTS"
	KeyGroups  = "LLN_GROUPS"
	KeyEvents  = "LLN_EVENTS"
	KeyProfile = "profile.v1"
)

// KV defines the durable key-value storage the stores write through to.
// This abstraction allows swapping storage backends (SQLite, Redis, memory)
// without changing the store layer.
type KV interface {
	// Get returns the value stored under key.
	// ok is false when the key has never been written.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Close releases any resources held by the backend.
	Close() error
}
