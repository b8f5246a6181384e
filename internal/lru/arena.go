package lru

// none marks a missing neighbor or an empty lru/mru endpoint.
const none = -1

// entry is one arena slot. prev and next are arena indices, not pointers:
// the recency list is threaded through the slice, so reordering is pure
// index bookkeeping and never allocates.
type entry[K comparable, V any] struct {
	key   K
	value V
	prev  int
	next  int
}

// alloc returns a slot for a new entry, preferring recycled slots.
// The arena never holds more than capacity slots: eviction releases a slot
// before the insert that triggered it allocates one.
func (c *Cache[K, V]) alloc() int {
	if n := len(c.free); n > 0 {
		i := c.free[n-1]
		c.free = c.free[:n-1]
		return i
	}
	c.entries = append(c.entries, entry[K, V]{})
	return len(c.entries) - 1
}

// release zeroes a slot and puts it on the free list.
// Zeroing drops the slot's key and value references so they can be collected.
func (c *Cache[K, V]) release(i int) {
	c.entries[i] = entry[K, V]{prev: none, next: none}
	c.free = append(c.free, i)
}

// unlink splices slot i out of the recency list, joining its neighbors and
// moving the lru/mru endpoints inward when i was an endpoint.
func (c *Cache[K, V]) unlink(i int) {
	e := &c.entries[i]
	if e.prev == none {
		c.lru = e.next
	} else {
		c.entries[e.prev].next = e.next
	}
	if e.next == none {
		c.mru = e.prev
	} else {
		c.entries[e.next].prev = e.prev
	}
	e.prev, e.next = none, none
}

// pushMRU appends slot i at the most-recently-used end.
// The slot must already be unlinked. On an empty list it becomes both
// endpoints.
func (c *Cache[K, V]) pushMRU(i int) {
	e := &c.entries[i]
	e.prev = c.mru
	e.next = none
	if c.mru == none {
		c.lru = i
	} else {
		c.entries[c.mru].next = i
	}
	c.mru = i
}
