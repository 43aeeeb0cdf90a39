package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mmynk/masterbook/internal/models"
	"github.com/mmynk/masterbook/internal/storage"
)

// ProfileStore holds the local user profile under storage.KeyProfile.
// Its writes are synchronous: callers learn whether the profile was saved.
type ProfileStore struct {
	mu      sync.RWMutex
	profile models.Profile
	kv      storage.KV
	opts    options
}

// NewProfileStore creates a store holding the default profile.
func NewProfileStore(kv storage.KV, opts ...Option) *ProfileStore {
	return &ProfileStore{
		profile: models.DefaultProfile(),
		kv:      kv,
		opts:    buildOptions(opts),
	}
}

// Load reads the persisted profile. Failures keep the default profile.
func (s *ProfileStore) Load(ctx context.Context) {
	// Writes go through apply; the snapshot writer is only used to read.
	p := models.DefaultProfile()
	if !newSnapshotWriter(s.kv, storage.KeyProfile, s.opts).load(ctx, &p) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
}

// Get returns the current profile.
func (s *ProfileStore) Get() models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Save sets the name and avatar, keeping the notification preference.
func (s *ProfileStore) Save(ctx context.Context, name, avatarURI string) (models.Profile, error) {
	return s.apply(ctx, "save", func(p *models.Profile) {
		p.Name = name
		p.AvatarURI = avatarURI
	})
}

// SetNotifications stores the notification preference.
func (s *ProfileStore) SetNotifications(ctx context.Context, enabled bool) (models.Profile, error) {
	return s.apply(ctx, "set_notifications", func(p *models.Profile) {
		p.Notifications = enabled
	})
}

// apply updates the in-memory profile first, then writes it. A failed write
// leaves memory ahead of storage until the next successful save.
func (s *ProfileStore) apply(ctx context.Context, op string, fn func(*models.Profile)) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.profile)
	s.opts.metrics.RecordMutation("profile", op)
	next := s.profile

	if s.kv == nil {
		return next, nil
	}
	data, err := json.Marshal(next)
	if err != nil {
		return next, fmt.Errorf("failed to encode profile: %w", err)
	}
	start := s.opts.now()
	err = s.kv.Set(ctx, storage.KeyProfile, string(data))
	s.opts.metrics.RecordWrite(storage.KeyProfile, err, s.opts.now().Sub(start))
	if err != nil {
		return next, fmt.Errorf("failed to save profile: %w", err)
	}
	return next, nil
}
