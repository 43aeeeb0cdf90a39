package store

import "slices"

// collection keeps entities in creation order with an id -> position index,
// so lookups never scan. Display order is newest-first unless oldestFirst is set.
type collection[T any] struct {
	items       []T
	index       map[string]int
	idOf        func(T) string
	clone       func(T) T
	oldestFirst bool
}

func newCollection[T any](idOf func(T) string, clone func(T) T, oldestFirst bool) *collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &collection[T]{
		index:       make(map[string]int),
		idOf:        idOf,
		clone:       clone,
		oldestFirst: oldestFirst,
	}
}

func (c *collection[T]) add(item T) {
	c.items = append(c.items, item)
	c.index[c.idOf(item)] = len(c.items) - 1
}

func (c *collection[T]) get(id string) (T, bool) {
	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.clone(c.items[i]), true
}

// update applies fn to the entity in place and returns a copy of the result.
func (c *collection[T]) update(id string, fn func(*T)) (T, bool) {
	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	fn(&c.items[i])
	return c.clone(c.items[i]), true
}

func (c *collection[T]) remove(id string) bool {
	i, ok := c.index[id]
	if !ok {
		return false
	}
	c.items = slices.Delete(c.items, i, i+1)
	c.reindex()
	return true
}

func (c *collection[T]) len() int {
	return len(c.items)
}

// snapshot returns a deep copy in display order.
func (c *collection[T]) snapshot() []T {
	out := make([]T, len(c.items))
	for i, item := range c.items {
		out[i] = c.clone(item)
	}
	if !c.oldestFirst {
		slices.Reverse(out)
	}
	return out
}

// replace swaps the contents for items given in display order.
// When ids repeat, lookups resolve to the newest entry.
func (c *collection[T]) replace(display []T) {
	items := slices.Clone(display)
	if !c.oldestFirst {
		slices.Reverse(items)
	}
	c.items = items
	c.reindex()
}

func (c *collection[T]) reindex() {
	clear(c.index)
	for i, item := range c.items {
		c.index[c.idOf(item)] = i
	}
}
