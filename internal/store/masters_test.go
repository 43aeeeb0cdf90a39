package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/masterbook/internal/models"
	"github.com/mmynk/masterbook/internal/storage"
	"github.com/mmynk/masterbook/internal/storage/memory"
)

func newMaster(name, category string) models.NewMaster {
	return models.NewMaster{
		Name:     name,
		Role:     "Barber",
		Price:    "25",
		Currency: models.CurrencyEuro,
		Category: category,
	}
}

func TestMasterStoreAdd(t *testing.T) {
	s := NewMasterStore(nil)

	a := s.Add(newMaster("Anna", "Hair"))
	b := s.Add(newMaster("Boris", "Shoes"))

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID, "newest first")
	assert.Equal(t, a.ID, list[1].ID)
	assert.False(t, list[0].Favorite)
	assert.Equal(t, models.CurrencyEuro, list[0].Currency)

	got, ok := s.Get(a.ID)
	require.True(t, ok)
	assert.Equal(t, "Anna", got.Name)
}

func TestMasterStoreUniqueIDs(t *testing.T) {
	// Every add lands in the same millisecond; ids must still differ.
	s := NewMasterStore(nil, frozenClock())

	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		m := s.Add(newMaster("M", "C"))
		require.False(t, seen[m.ID], "duplicate id %s", m.ID)
		seen[m.ID] = true
	}
	assert.Len(t, s.List(), 500)
}

func TestMasterStoreToggleFavorite(t *testing.T) {
	s := NewMasterStore(nil)
	m := s.Add(newMaster("Anna", "Hair"))

	toggled, ok := s.ToggleFavorite(m.ID)
	require.True(t, ok)
	assert.True(t, toggled.Favorite)

	toggled, ok = s.ToggleFavorite(m.ID)
	require.True(t, ok)
	assert.False(t, toggled.Favorite, "double toggle restores the original value")

	_, ok = s.ToggleFavorite("missing")
	assert.False(t, ok)
	assert.Len(t, s.List(), 1)
}

func TestMasterStoreCategories(t *testing.T) {
	s := NewMasterStore(nil)
	assert.Empty(t, s.Categories())

	s.Add(newMaster("A", "Hair"))
	s.Add(newMaster("B", "Shoes"))
	s.Add(newMaster("C", "Hair"))
	s.Add(newMaster("D", "Nails"))

	// First appearance in newest-first order.
	assert.Equal(t, []string{"Nails", "Hair", "Shoes"}, s.Categories())
}

func TestMasterStoreListIsACopy(t *testing.T) {
	s := NewMasterStore(nil)
	s.Add(newMaster("Anna", "Hair"))

	list := s.List()
	list[0].Name = "changed"

	assert.Equal(t, "Anna", s.List()[0].Name)
}

func TestMasterStorePersistence(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		kv := memory.New()
		s := NewMasterStore(kv)
		a := s.Add(newMaster("Anna", "Hair"))
		s.Add(newMaster("Boris", "Shoes"))
		s.ToggleFavorite(a.ID)
		s.Flush()

		reloaded := NewMasterStore(kv)
		reloaded.Load(ctx)
		assert.Equal(t, s.List(), reloaded.List())

		m, ok := reloaded.Get(a.ID)
		require.True(t, ok)
		assert.True(t, m.Favorite)
	})

	t.Run("stored snapshot is newest first", func(t *testing.T) {
		kv := memory.New()
		s := NewMasterStore(kv)
		s.Add(newMaster("Anna", "Hair"))
		s.Add(newMaster("Boris", "Shoes"))
		s.Flush()

		var raw []models.Master
		stored(t, kv, storage.KeyMasters, &raw)
		require.Len(t, raw, 2)
		assert.Equal(t, "Boris", raw[0].Name)
	})

	t.Run("legacy snapshot loads", func(t *testing.T) {
		kv := memory.New()
		legacy := `[{"id":"1718000000001","name":"Anna","role":"Barber","price":"20","currency":"$","category":"Hair"},` +
			`{"id":"1718000000000","name":"Oleg","role":"Cobbler","price":"10","currency":"€","category":"Shoes","photoUri":"file:///o.jpg","favorite":true}]`
		require.NoError(t, kv.Set(ctx, storage.KeyMasters, legacy))

		s := NewMasterStore(kv)
		s.Load(ctx)

		list := s.List()
		require.Len(t, list, 2)
		assert.Equal(t, "Anna", list[0].Name)
		assert.False(t, list[0].Favorite)
		assert.Equal(t, "file:///o.jpg", list[1].PhotoURI)
		assert.True(t, list[1].Favorite)

		// New entries go in front of loaded ones.
		added := s.Add(newMaster("Zoe", "Nails"))
		assert.Equal(t, added.ID, s.List()[0].ID)
		s.Flush()
	})

	t.Run("load failure starts empty", func(t *testing.T) {
		kv := newFlakyKV()
		kv.getErr = errors.New("io error")

		s := NewMasterStore(kv)
		s.Load(ctx)
		assert.Empty(t, s.List())
	})

	t.Run("malformed snapshot starts empty", func(t *testing.T) {
		kv := memory.New()
		require.NoError(t, kv.Set(ctx, storage.KeyMasters, "{not json"))

		s := NewMasterStore(kv)
		s.Load(ctx)
		assert.Empty(t, s.List())
	})

	t.Run("write failure is swallowed and later writes catch up", func(t *testing.T) {
		kv := newFlakyKV()
		s := NewMasterStore(kv)

		kv.failSets.Store(true)
		first := s.Add(newMaster("Anna", "Hair"))
		s.Flush()
		_, ok, _ := kv.Store.Get(ctx, storage.KeyMasters)
		assert.False(t, ok, "failed write stored nothing")

		// Memory is still correct.
		_, found := s.Get(first.ID)
		assert.True(t, found)

		kv.failSets.Store(false)
		s.Add(newMaster("Boris", "Shoes"))
		s.Flush()

		var raw []models.Master
		stored(t, kv.Store, storage.KeyMasters, &raw)
		assert.Len(t, raw, 2, "the next write carries the earlier mutation too")
	})

	t.Run("rapid mutations end on the latest snapshot", func(t *testing.T) {
		kv := memory.New()
		s := NewMasterStore(kv)
		m := s.Add(newMaster("Anna", "Hair"))
		for i := 0; i < 51; i++ {
			s.ToggleFavorite(m.ID)
		}
		s.Flush()

		var raw []models.Master
		stored(t, kv, storage.KeyMasters, &raw)
		require.Len(t, raw, 1)
		assert.True(t, raw[0].Favorite)
		assert.LessOrEqual(t, kv.Writes(), 52)
	})
}
