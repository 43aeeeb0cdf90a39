// Package memory provides an in-process storage.KV, used by tests and by the
// "memory" backend when nothing should outlive the process.
package memory

import (
	"context"
	"sync"

	"github.com/mmynk/masterbook/internal/storage"
)

var _ storage.KV = (*Store)(nil)

// Store is a map guarded by a mutex.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
	writes int
}

// New returns an empty Store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.writes++
	return nil
}

// Writes returns how many Set calls have completed.
func (s *Store) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

func (s *Store) Close() error { return nil }
