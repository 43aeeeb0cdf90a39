// Package store holds the in-memory collections behind the application and
// writes each of them through to a storage.KV after every mutation.
//
// Stores are plain service objects: build one of each at startup, call Load,
// and pass them to whatever needs them. All methods are safe for concurrent
// use; mutations are applied in call order and never wait for storage.
package store

import (
	"context"
	"sync"

	"github.com/mmynk/masterbook/internal/models"
	"github.com/mmynk/masterbook/internal/storage"
)

// MasterStore owns the list of masters, newest first.
type MasterStore struct {
	mu      sync.RWMutex
	masters *collection[models.Master]
	persist *snapshotWriter
	opts    options
}

// NewMasterStore creates an empty store persisting to kv under storage.KeyMasters.
// A nil kv keeps the store in memory only.
func NewMasterStore(kv storage.KV, opts ...Option) *MasterStore {
	o := buildOptions(opts)
	return &MasterStore{
		masters: newCollection(func(m models.Master) string { return m.ID }, nil, false),
		persist: newSnapshotWriter(kv, storage.KeyMasters, o),
		opts:    o,
	}
}

// Load replaces the collection with the persisted snapshot.
// A missing or unreadable snapshot leaves the store empty.
func (s *MasterStore) Load(ctx context.Context) {
	var loaded []models.Master
	if !s.persist.load(ctx, &loaded) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.masters.replace(loaded)
	s.opts.logger.Debug("Masters loaded", "count", len(loaded))
}

// List returns every master, newest first.
func (s *MasterStore) List() []models.Master {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.masters.snapshot()
}

// Get returns the master with the given id.
func (s *MasterStore) Get(id string) (models.Master, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.masters.get(id)
}

// Add creates a master with a fresh id and puts it first.
// Input is trusted; validation belongs to the caller.
func (s *MasterStore) Add(in models.NewMaster) models.Master {
	m := models.Master{
		ID:       s.opts.newID(),
		Name:     in.Name,
		Role:     in.Role,
		Price:    in.Price,
		Currency: in.Currency,
		Category: in.Category,
		PhotoURI: in.PhotoURI,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.masters.add(m)
	s.changed("add")
	return m
}

// ToggleFavorite flips the favorite flag. It reports false for unknown ids.
func (s *MasterStore) ToggleFavorite(id string) (models.Master, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.masters.update(id, func(m *models.Master) { m.Favorite = !m.Favorite })
	if ok {
		s.changed("toggle_favorite")
	}
	return m, ok
}

// Categories returns the distinct categories in order of first appearance
// in List.
func (s *MasterStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, m := range s.masters.snapshot() {
		if seen[m.Category] {
			continue
		}
		seen[m.Category] = true
		out = append(out, m.Category)
	}
	return out
}

// Flush waits for pending snapshot writes.
func (s *MasterStore) Flush() {
	s.persist.flush()
}

// changed must be called with s.mu held.
func (s *MasterStore) changed(op string) {
	s.opts.metrics.RecordMutation("masters", op)
	s.persist.save(s.masters.snapshot())
}
