package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/masterbook/internal/models"
	"github.com/mmynk/masterbook/internal/storage"
	"github.com/mmynk/masterbook/internal/storage/memory"
)

func TestGroupStoreAdd(t *testing.T) {
	s := NewGroupStore(nil, sequentialIDs("g"), tickingClock())

	first := s.Add(models.NewGroup{Title: "Wedding", MasterIDs: []string{"m1", "m2", "m1"}})
	second := s.Add(models.NewGroup{Title: "Repairs"})

	assert.Equal(t, "g-1", first)
	assert.Equal(t, "g-2", second)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, second, list[0].ID, "newest first")

	g, ok := s.GetByID(first)
	require.True(t, ok)
	assert.Equal(t, []string{"m1", "m2", "m1"}, g.MasterIDs, "duplicates are kept")
	assert.False(t, g.IsFavorite)
	assert.False(t, g.IsArchived)
	assert.NotZero(t, g.CreatedAt)

	empty, _ := s.GetByID(second)
	assert.NotNil(t, empty.MasterIDs)
	assert.Empty(t, empty.MasterIDs)
}

func TestGroupStoreDoesNotAliasCallerSlices(t *testing.T) {
	s := NewGroupStore(nil)
	ids := []string{"m1"}
	id := s.Add(models.NewGroup{Title: "T", MasterIDs: ids})
	ids[0] = "changed"

	g, _ := s.GetByID(id)
	assert.Equal(t, []string{"m1"}, g.MasterIDs)

	g.MasterIDs[0] = "changed"
	again, _ := s.GetByID(id)
	assert.Equal(t, []string{"m1"}, again.MasterIDs)
}

func TestGroupStoreUpdate(t *testing.T) {
	s := NewGroupStore(nil)
	id := s.Add(models.NewGroup{
		Title:       "Wedding",
		Description: "June",
		CoverURI:    "file:///cover.jpg",
		MasterIDs:   []string{"m1"},
	})

	t.Run("absent cover is unchanged", func(t *testing.T) {
		g, ok := s.Update(models.GroupPatch{ID: id, Title: models.Some("Wedding 2026")})
		require.True(t, ok)
		assert.Equal(t, "Wedding 2026", g.Title)
		assert.Equal(t, "June", g.Description)
		assert.Equal(t, "file:///cover.jpg", g.CoverURI)
	})

	t.Run("value replaces cover", func(t *testing.T) {
		g, _ := s.Update(models.GroupPatch{ID: id, CoverURI: models.Set("y")})
		assert.Equal(t, "y", g.CoverURI)
	})

	t.Run("null clears cover", func(t *testing.T) {
		g, _ := s.Update(models.GroupPatch{ID: id, CoverURI: models.Null[string]()})
		assert.Empty(t, g.CoverURI)
	})

	t.Run("members and flags", func(t *testing.T) {
		g, _ := s.Update(models.GroupPatch{
			ID:         id,
			MasterIDs:  models.Some([]string{"m3", "m4"}),
			IsFavorite: models.Some(true),
			IsArchived: models.Some(true),
		})
		assert.Equal(t, []string{"m3", "m4"}, g.MasterIDs)
		assert.True(t, g.IsFavorite)
		assert.True(t, g.IsArchived)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, ok := s.Update(models.GroupPatch{ID: "missing", Title: models.Some("x")})
		assert.False(t, ok)
	})
}

func TestGroupStoreArchiveAndFavorite(t *testing.T) {
	s := NewGroupStore(nil)
	id := s.Add(models.NewGroup{Title: "Wedding"})

	g, ok := s.Archive(id, models.Optional[bool]{})
	require.True(t, ok)
	assert.True(t, g.IsArchived, "no value flips")

	g, _ = s.Archive(id, models.Optional[bool]{})
	assert.False(t, g.IsArchived)

	g, _ = s.Archive(id, models.Some(true))
	assert.True(t, g.IsArchived)
	g, _ = s.Archive(id, models.Some(true))
	assert.True(t, g.IsArchived, "explicit value sets")

	g, _ = s.ToggleFavorite(id)
	assert.True(t, g.IsFavorite)
	g, _ = s.ToggleFavorite(id)
	assert.False(t, g.IsFavorite)

	_, ok = s.Archive("missing", models.Some(true))
	assert.False(t, ok)
	_, ok = s.ToggleFavorite("missing")
	assert.False(t, ok)
}

func TestGroupStorePersistence(t *testing.T) {
	ctx := context.Background()

	t.Run("volatile by default", func(t *testing.T) {
		s := NewGroupStore(nil)
		assert.False(t, s.Persistent())
		s.Add(models.NewGroup{Title: "Scratch"})
		s.Flush()

		fresh := NewGroupStore(nil)
		fresh.Load(ctx)
		assert.Empty(t, fresh.List())
	})

	t.Run("round trip when enabled", func(t *testing.T) {
		kv := memory.New()
		s := NewGroupStore(kv)
		assert.True(t, s.Persistent())
		id := s.Add(models.NewGroup{Title: "Wedding", MasterIDs: []string{"m1"}})
		s.ToggleFavorite(id)
		s.Flush()

		var raw []models.Group
		stored(t, kv, storage.KeyGroups, &raw)
		require.Len(t, raw, 1)

		reloaded := NewGroupStore(kv)
		reloaded.Load(ctx)
		assert.Equal(t, s.List(), reloaded.List())
	})
}
