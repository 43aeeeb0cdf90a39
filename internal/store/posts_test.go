package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/masterbook/internal/articles"
	"github.com/mmynk/masterbook/internal/models"
	"github.com/mmynk/masterbook/internal/storage/memory"
)

func TestPostStoreAdd(t *testing.T) {
	s := NewPostStore(nil, tickingClock())

	a := s.Add(models.NewPost{Title: "Spring haircut offer", MasterName: "Anna", Category: "Beauty"})
	b := s.Add(models.NewPost{Title: "Yoga in the park", MasterName: "Boris"})

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID, "newest first")
	assert.Equal(t, a.ID, list[1].ID)

	assert.Equal(t, string(articles.Hairdresser), a.ArticleID)
	assert.Empty(t, b.ArticleID)
	assert.False(t, a.Liked)
	assert.False(t, a.Archived)
	assert.Less(t, a.CreatedAt, b.CreatedAt)
}

func TestPostStoreUniqueIDsWithinOneMillisecond(t *testing.T) {
	s := NewPostStore(nil, frozenClock())

	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		p := s.Add(models.NewPost{Title: "Same tick"})
		require.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestPostStoreUpdate(t *testing.T) {
	s := NewPostStore(nil)
	orig := s.Add(models.NewPost{
		Title:      "Renovation deals",
		Excerpt:    "Cheap",
		Body:       "Long text",
		MasterName: "Ivan",
		Category:   "Home",
		DateISO:    "2025-05-01T10:00:00Z",
	})
	require.Equal(t, string(articles.Renovation), orig.ArticleID)

	t.Run("only patched fields change", func(t *testing.T) {
		updated, ok := s.Update(orig.ID, models.PostPatch{Title: models.Some("X")})
		require.True(t, ok)

		want := orig
		want.Title = "X"
		assert.Equal(t, want, updated)

		got, _ := s.Get(orig.ID)
		assert.Equal(t, want, got)
	})

	t.Run("article link stays frozen", func(t *testing.T) {
		updated, ok := s.Update(orig.ID, models.PostPatch{
			Title:    models.Some("Photo session"),
			Category: models.Some("Photography"),
		})
		require.True(t, ok)
		assert.Equal(t, string(articles.Renovation), updated.ArticleID)
	})

	t.Run("explicit article patch is honoured", func(t *testing.T) {
		updated, ok := s.Update(orig.ID, models.PostPatch{ArticleID: models.Some(string(articles.Photographer))})
		require.True(t, ok)
		assert.Equal(t, string(articles.Photographer), updated.ArticleID)
	})

	t.Run("patch can clear optional text", func(t *testing.T) {
		updated, ok := s.Update(orig.ID, models.PostPatch{Excerpt: models.Some("")})
		require.True(t, ok)
		assert.Empty(t, updated.Excerpt)
		assert.Equal(t, "Long text", updated.Body)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		before := s.List()
		_, ok := s.Update("missing", models.PostPatch{Title: models.Some("Y")})
		assert.False(t, ok)
		assert.Equal(t, before, s.List())
	})

	t.Run("id and createdAt survive", func(t *testing.T) {
		got, _ := s.Get(orig.ID)
		assert.Equal(t, orig.ID, got.ID)
		assert.Equal(t, orig.CreatedAt, got.CreatedAt)
	})
}

func TestPostStoreToggles(t *testing.T) {
	s := NewPostStore(nil)
	p := s.Add(models.NewPost{Title: "Nails"})

	liked, ok := s.ToggleLike(p.ID)
	require.True(t, ok)
	assert.True(t, liked.Liked)
	assert.False(t, liked.Archived, "like does not touch archive")

	archived, ok := s.ToggleArchive(p.ID)
	require.True(t, ok)
	assert.True(t, archived.Archived)
	assert.True(t, archived.Liked)

	restored, _ := s.ToggleArchive(p.ID)
	assert.False(t, restored.Archived)

	again, _ := s.Archive(p.ID)
	assert.True(t, again.Archived)
	again, _ = s.Archive(p.ID)
	assert.True(t, again.Archived, "archive is not a toggle")

	_, ok = s.ToggleLike("missing")
	assert.False(t, ok)
	_, ok = s.ToggleArchive("missing")
	assert.False(t, ok)
	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestPostStorePersistence(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()

	s := NewPostStore(kv)
	a := s.Add(models.NewPost{Title: "Cobbler open late", Category: "Repair"})
	s.Add(models.NewPost{Title: "Untitled"})
	s.ToggleLike(a.ID)
	s.Update(a.ID, models.PostPatch{Body: models.Some("Details")})
	s.Flush()

	reloaded := NewPostStore(kv)
	reloaded.Load(ctx)
	assert.Equal(t, s.List(), reloaded.List())

	got, ok := reloaded.Get(a.ID)
	require.True(t, ok)
	assert.Equal(t, string(articles.Shoe), got.ArticleID)
	assert.True(t, got.Liked)
	assert.Equal(t, "Details", got.Body)
}
