package store

import (
	"context"
	"sync"

	"github.com/mmynk/masterbook/internal/articles"
	"github.com/mmynk/masterbook/internal/models"
	"github.com/mmynk/masterbook/internal/storage"
)

// PostStore owns the list of posts, newest first.
type PostStore struct {
	mu      sync.RWMutex
	posts   *collection[models.Post]
	persist *snapshotWriter
	opts    options
}

// NewPostStore creates an empty store persisting to kv under storage.KeyPosts.
// A nil kv keeps the store in memory only.
func NewPostStore(kv storage.KV, opts ...Option) *PostStore {
	o := buildOptions(opts)
	return &PostStore{
		posts:   newCollection(func(p models.Post) string { return p.ID }, nil, false),
		persist: newSnapshotWriter(kv, storage.KeyPosts, o),
		opts:    o,
	}
}

// Load replaces the collection with the persisted snapshot.
func (s *PostStore) Load(ctx context.Context) {
	var loaded []models.Post
	if !s.persist.load(ctx, &loaded) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts.replace(loaded)
	s.opts.logger.Debug("Posts loaded", "count", len(loaded))
}

// List returns every post, newest first.
func (s *PostStore) List() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.posts.snapshot()
}

// Get returns the post with the given id.
func (s *PostStore) Get(id string) (models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.posts.get(id)
}

// Add creates a post and puts it first. The article link is resolved here,
// once, from the title and category.
func (s *PostStore) Add(in models.NewPost) models.Post {
	p := models.Post{
		ID:         s.opts.newID(),
		Title:      in.Title,
		Excerpt:    in.Excerpt,
		Body:       in.Body,
		ImageURI:   in.ImageURI,
		MasterName: in.MasterName,
		Category:   in.Category,
		DateISO:    in.DateISO,
		StartISO:   in.StartISO,
		EndISO:     in.EndISO,
		CreatedAt:  s.opts.now().UnixMilli(),
	}
	if id, ok := articles.Lookup(in.Title, in.Category); ok {
		p.ArticleID = string(id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts.add(p)
	s.changed("add")
	return p
}

// Update merges patch over the post. The article link is not recomputed,
// even when the title or category change.
func (s *PostStore) Update(id string, patch models.PostPatch) (models.Post, bool) {
	return s.mutate(id, "update", patch.Apply)
}

// ToggleLike flips the liked flag.
func (s *PostStore) ToggleLike(id string) (models.Post, bool) {
	return s.mutate(id, "toggle_like", func(p *models.Post) { p.Liked = !p.Liked })
}

// ToggleArchive flips the archived flag.
func (s *PostStore) ToggleArchive(id string) (models.Post, bool) {
	return s.mutate(id, "toggle_archive", func(p *models.Post) { p.Archived = !p.Archived })
}

// Archive marks the post archived.
func (s *PostStore) Archive(id string) (models.Post, bool) {
	return s.mutate(id, "archive", func(p *models.Post) { p.Archived = true })
}

// Flush waits for pending snapshot writes.
func (s *PostStore) Flush() {
	s.persist.flush()
}

func (s *PostStore) mutate(id, op string, fn func(*models.Post)) (models.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts.update(id, fn)
	if ok {
		s.changed(op)
	}
	return p, ok
}

func (s *PostStore) changed(op string) {
	s.opts.metrics.RecordMutation("posts", op)
	s.persist.save(s.posts.snapshot())
}
