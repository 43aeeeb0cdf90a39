package store

import (
	"context"
	"sync"

	"github.com/mmynk/masterbook/internal/models"
	"github.com/mmynk/masterbook/internal/storage"
)

// CalendarStore owns calendar events in creation order.
// Unlike the other entities, events can be removed.
type CalendarStore struct {
	mu      sync.RWMutex
	events  *collection[models.Event]
	persist *snapshotWriter
	opts    options
}

// NewCalendarStore creates an empty store. With a nil kv, events live only as
// long as the process; otherwise they are written under storage.KeyEvents.
func NewCalendarStore(kv storage.KV, opts ...Option) *CalendarStore {
	o := buildOptions(opts)
	return &CalendarStore{
		events:  newCollection(func(e models.Event) string { return e.ID }, nil, true),
		persist: newSnapshotWriter(kv, storage.KeyEvents, o),
		opts:    o,
	}
}

// Load replaces the collection with the persisted snapshot, if any.
func (s *CalendarStore) Load(ctx context.Context) {
	var loaded []models.Event
	if !s.persist.load(ctx, &loaded) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events.replace(loaded)
	s.opts.logger.Debug("Events loaded", "count", len(loaded))
}

// List returns every event, oldest first.
func (s *CalendarStore) List() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.events.snapshot()
}

// Get returns the event with the given id.
func (s *CalendarStore) Get(id string) (models.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.events.get(id)
}

// Add appends an event.
func (s *CalendarStore) Add(in models.NewEvent) models.Event {
	e := models.Event{
		ID:          s.opts.newID(),
		Title:       in.Title,
		Description: in.Description,
		DateKey:     in.DateKey,
		Notify:      in.Notify,
		Priority:    in.Priority,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events.add(e)
	s.changed("add")
	return e
}

// Update merges patch over the event.
func (s *CalendarStore) Update(id string, patch models.EventPatch) (models.Event, bool) {
	return s.mutate(id, "update", patch.Apply)
}

// ToggleNotify flips the reminder flag.
func (s *CalendarStore) ToggleNotify(id string) (models.Event, bool) {
	return s.mutate(id, "toggle_notify", func(e *models.Event) { e.Notify = !e.Notify })
}

// Remove deletes the event. It reports false for unknown ids.
func (s *CalendarStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.events.remove(id) {
		return false
	}
	s.changed("remove")
	return true
}

// Flush waits for pending snapshot writes.
func (s *CalendarStore) Flush() {
	s.persist.flush()
}

func (s *CalendarStore) mutate(id, op string, fn func(*models.Event)) (models.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events.update(id, fn)
	if ok {
		s.changed(op)
	}
	return e, ok
}

func (s *CalendarStore) changed(op string) {
	s.opts.metrics.RecordMutation("events", op)
	s.persist.save(s.events.snapshot())
}
