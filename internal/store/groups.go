package store

import (
	"context"
	"slices"
	"sync"

	"github.com/mmynk/masterbook/internal/models"
	"github.com/mmynk/masterbook/internal/storage"
)

// GroupStore owns the list of groups, newest first.
//
// Member ids are taken as given: the store never checks them against the
// MasterStore, so readers must tolerate ids that resolve to nothing.
type GroupStore struct {
	mu      sync.RWMutex
	groups  *collection[models.Group]
	persist *snapshotWriter
	opts    options
}

// NewGroupStore creates an empty store. With a nil kv, groups live only as
// long as the process; otherwise they are written under storage.KeyGroups.
func NewGroupStore(kv storage.KV, opts ...Option) *GroupStore {
	o := buildOptions(opts)
	return &GroupStore{
		groups:  newCollection(func(g models.Group) string { return g.ID }, models.Group.Clone, false),
		persist: newSnapshotWriter(kv, storage.KeyGroups, o),
		opts:    o,
	}
}

// Load replaces the collection with the persisted snapshot, if any.
func (s *GroupStore) Load(ctx context.Context) {
	var loaded []models.Group
	if !s.persist.load(ctx, &loaded) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups.replace(loaded)
	s.opts.logger.Debug("Groups loaded", "count", len(loaded))
}

// Persistent reports whether groups survive a restart.
func (s *GroupStore) Persistent() bool {
	return s.persist != nil
}

// List returns every group, newest first.
func (s *GroupStore) List() []models.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.groups.snapshot()
}

// GetByID returns the group with the given id.
func (s *GroupStore) GetByID(id string) (models.Group, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.groups.get(id)
}

// Add creates a group, puts it first and returns its id.
func (s *GroupStore) Add(in models.NewGroup) string {
	ids := slices.Clone(in.MasterIDs)
	if ids == nil {
		ids = []string{}
	}
	g := models.Group{
		ID:          s.opts.newID(),
		Title:       in.Title,
		Description: in.Description,
		CoverURI:    in.CoverURI,
		MasterIDs:   ids,
		CreatedAt:   s.opts.now().UnixMilli(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups.add(g)
	s.changed("add")
	return g.ID
}

// Update merges patch over the group named by patch.ID.
func (s *GroupStore) Update(patch models.GroupPatch) (models.Group, bool) {
	return s.mutate(patch.ID, "update", patch.Apply)
}

// Archive sets the archived flag to value when present, otherwise flips it.
func (s *GroupStore) Archive(id string, value models.Optional[bool]) (models.Group, bool) {
	return s.mutate(id, "archive", func(g *models.Group) {
		if v, ok := value.Get(); ok {
			g.IsArchived = v
			return
		}
		g.IsArchived = !g.IsArchived
	})
}

// ToggleFavorite flips the favorite flag.
func (s *GroupStore) ToggleFavorite(id string) (models.Group, bool) {
	return s.mutate(id, "toggle_favorite", func(g *models.Group) { g.IsFavorite = !g.IsFavorite })
}

// Flush waits for pending snapshot writes.
func (s *GroupStore) Flush() {
	s.persist.flush()
}

func (s *GroupStore) mutate(id, op string, fn func(*models.Group)) (models.Group, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.groups.update(id, fn)
	if ok {
		s.changed(op)
	}
	return g, ok
}

func (s *GroupStore) changed(op string) {
	s.opts.metrics.RecordMutation("groups", op)
	s.persist.save(s.groups.snapshot())
}
