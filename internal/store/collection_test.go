package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	id  string
	val int
}

func newItems(oldestFirst bool) *collection[item] {
	return newCollection(func(i item) string { return i.id }, nil, oldestFirst)
}

func TestCollectionOrder(t *testing.T) {
	c := newItems(false)
	c.add(item{"a", 1})
	c.add(item{"b", 2})
	c.add(item{"c", 3})
	assert.Equal(t, []item{{"c", 3}, {"b", 2}, {"a", 1}}, c.snapshot())

	o := newItems(true)
	o.add(item{"a", 1})
	o.add(item{"b", 2})
	assert.Equal(t, []item{{"a", 1}, {"b", 2}}, o.snapshot())
}

func TestCollectionReplaceRoundTrip(t *testing.T) {
	c := newItems(false)
	c.add(item{"a", 1})
	c.add(item{"b", 2})

	d := newItems(false)
	d.replace(c.snapshot())
	assert.Equal(t, c.snapshot(), d.snapshot())

	d.add(item{"c", 3})
	assert.Equal(t, "c", d.snapshot()[0].id)
}

func TestCollectionDuplicateIDsResolveToNewest(t *testing.T) {
	c := newItems(false)
	c.replace([]item{{"x", 2}, {"x", 1}})

	got, ok := c.get("x")
	require.True(t, ok)
	assert.Equal(t, 2, got.val)
}

func TestCollectionRemoveReindexes(t *testing.T) {
	c := newItems(true)
	c.add(item{"a", 1})
	c.add(item{"b", 2})
	c.add(item{"c", 3})

	require.True(t, c.remove("a"))
	assert.Equal(t, 2, c.len())

	got, ok := c.update("c", func(i *item) { i.val = 30 })
	require.True(t, ok)
	assert.Equal(t, 30, got.val)
	assert.Equal(t, []item{{"b", 2}, {"c", 30}}, c.snapshot())
}
