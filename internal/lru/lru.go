package lru

import (
	"github.com/pkg/errors"
)

// ErrInvalidCapacity is returned by New when capacity is less than 1.
var ErrInvalidCapacity = errors.New("lru: capacity must be at least 1")

// EvictCallback is invoked for entries displaced by capacity eviction.
// It is not invoked for Delete, RemoveOldest, or Reset; those removals are
// caller-initiated.
type EvictCallback[K comparable, V any] func(key K, value V)

// Cache is a bounded key–value map ordered by recency of use.
//
// A map gives O(1) key lookup, and an arena-backed doubly-linked list
// maintains recency ordering: lru is the least-recently-used slot, mru the
// most-recently-used. Every operation is O(1) and non-blocking.
//
// Cache is not safe for concurrent use.
type Cache[K comparable, V any] struct {
	capacity int
	entries  []entry[K, V]
	index    map[K]int
	lru      int
	mru      int
	free     []int
	onEvict  EvictCallback[K, V]
}

// New constructs an empty cache holding at most capacity entries.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	return NewWithEvict[K, V](capacity, nil)
}

// NewWithEvict is New with an eviction callback. onEvict may be nil.
func NewWithEvict[K comparable, V any](capacity int, onEvict EvictCallback[K, V]) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Cache[K, V]{
		capacity: capacity,
		entries:  make([]entry[K, V], 0, capacity),
		index:    make(map[K]int, capacity),
		lru:      none,
		mru:      none,
		onEvict:  onEvict,
	}, nil
}

// Put inserts or updates a key and marks it most recently used.
//
// Inserting a new key at full capacity evicts the least-recently-used entry
// first, so Len never exceeds MaxSize.
func (c *Cache[K, V]) Put(key K, value V) {
	if i, ok := c.index[key]; ok {
		c.entries[i].value = value
		// Already MRU: only the value changes, no relinking.
		if c.entries[i].next != none {
			c.unlink(i)
			c.pushMRU(i)
		}
		return
	}

	if len(c.index) == c.capacity {
		c.evictOldest()
	}

	i := c.alloc()
	e := &c.entries[i]
	e.key = key
	e.value = value
	c.index[key] = i
	c.pushMRU(i)
}

// Get returns the value stored for key and marks it most recently used.
// A miss does not mutate the cache.
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	i, ok := c.index[key]
	if !ok {
		return value, false
	}
	if c.entries[i].next != none {
		c.unlink(i)
		c.pushMRU(i)
	}
	return c.entries[i].value, true
}

// Peek returns the value stored for key without updating recency.
func (c *Cache[K, V]) Peek(key K) (value V, ok bool) {
	i, ok := c.index[key]
	if !ok {
		return value, false
	}
	return c.entries[i].value, true
}

// Contains reports whether key is present without updating recency.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Delete removes key if present and reports whether it was there.
// Deleting an absent key is a no-op.
func (c *Cache[K, V]) Delete(key K) bool {
	i, ok := c.index[key]
	if !ok {
		return false
	}
	c.unlink(i)
	delete(c.index, key)
	c.release(i)
	return true
}

// Oldest returns the least-recently-used entry without removing it.
func (c *Cache[K, V]) Oldest() (key K, value V, ok bool) {
	if c.lru == none {
		return key, value, false
	}
	e := &c.entries[c.lru]
	return e.key, e.value, true
}

// RemoveOldest removes and returns the least-recently-used entry.
func (c *Cache[K, V]) RemoveOldest() (key K, value V, ok bool) {
	i := c.lru
	if i == none {
		return key, value, false
	}
	key = c.entries[i].key
	value = c.entries[i].value
	c.unlink(i)
	delete(c.index, key)
	c.release(i)
	return key, value, true
}

// Reset discards all entries. Capacity is unchanged and the arena's backing
// storage is kept for reuse.
func (c *Cache[K, V]) Reset() {
	clear(c.entries)
	c.entries = c.entries[:0]
	c.free = c.free[:0]
	clear(c.index)
	c.lru = none
	c.mru = none
}

// Len returns the number of live entries.
func (c *Cache[K, V]) Len() int {
	return len(c.index)
}

// MaxSize returns the capacity fixed at construction.
func (c *Cache[K, V]) MaxSize() int {
	return c.capacity
}

// Keys returns keys in MRU -> LRU order.
//
// This is a debug/teaching helper used by the demo.
func (c *Cache[K, V]) Keys() []K {
	out := make([]K, 0, len(c.index))
	for i := c.mru; i != none; i = c.entries[i].prev {
		out = append(out, c.entries[i].key)
	}
	return out
}

// evictOldest drops the LRU entry to make room for an insert.
// This is the only path that fires the eviction callback.
func (c *Cache[K, V]) evictOldest() {
	i := c.lru
	if i == none {
		return
	}
	key := c.entries[i].key
	value := c.entries[i].value
	c.unlink(i)
	delete(c.index, key)
	c.release(i)
	if c.onEvict != nil {
		c.onEvict(key, value)
	}
}
