// internal/store/collection.go
package store

import (
	"sync"

	"github.com/scmdash/scm-backend/internal/models"
)

// Collection is an ordered, in-memory sequence of records owned by a single
// session. Readers always receive copies so they never observe a
// half-applied mutation.
type Collection[T models.Record[T]] struct {
	mu    sync.RWMutex
	items []T
	seed  []T
}

func NewCollection[T models.Record[T]](seed []T) *Collection[T] {
	c := &Collection[T]{seed: cloneAll(seed)}
	c.items = cloneAll(seed)
	return c
}

func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneAll(c.items)
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) Find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if idx := c.indexOf(id); idx >= 0 {
		return c.items[idx].Clone(), true
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) Contains(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.indexOf(id) >= 0
}

// Insert appends a record built by build. build runs under the write lock and
// receives the current length and an existence check, so identifier
// generation and insertion are atomic.
func (c *Collection[T]) Insert(build func(size int, taken func(id string) bool) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	record := build(len(c.items), func(id string) bool { return c.indexOf(id) >= 0 })
	c.items = append(c.items, record.Clone())
	return record.Clone()
}

// Modify applies fn to the stored record in place. It reports false when the
// identifier is unknown.
func (c *Collection[T]) Modify(id string, fn func(record *T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		var zero T
		return zero, false
	}
	fn(&c.items[idx])
	return c.items[idx].Clone(), true
}

func (c *Collection[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return false
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	return true
}

// Replace swaps the whole contents, used when loading a persisted catalogue.
func (c *Collection[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = cloneAll(items)
}

// Reset restores the seed the collection was constructed with.
func (c *Collection[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = cloneAll(c.seed)
}

func (c *Collection[T]) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, len(c.items))
	for i, item := range c.items {
		ids[i] = item.GetID()
	}
	return ids
}

func (c *Collection[T]) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].GetID() == id {
			return i
		}
	}
	return -1
}

func cloneAll[T models.Record[T]](in []T) []T {
	out := make([]T, len(in))
	for i, item := range in {
		out[i] = item.Clone()
	}
	return out
}
