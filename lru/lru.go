package lru

import (
	"container/list"
	"errors"
)

// ErrInvalidSize is returned when a cache is created or resized with a
// non-positive size.
var ErrInvalidSize = errors.New("lru: size must be positive")

// EvictCallback is invoked when an entry is evicted or purged from the cache.
type EvictCallback[K comparable, V any] func(key K, value V)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Cache is a fixed-size cache with least-recently-used eviction.
type Cache[K comparable, V any] struct {
	size    int
	order   *list.List // front is most recently used
	items   map[K]*list.Element
	onEvict EvictCallback[K, V]
}

// New creates a cache holding at most size entries.
func New[K comparable, V any](size int) (*Cache[K, V], error) {
	return NewWithEvict[K, V](size, nil)
}

// NewWithEvict creates a cache holding at most size entries, calling onEvict
// for every entry displaced by capacity pressure, removal or purge.
func NewWithEvict[K comparable, V any](size int, onEvict EvictCallback[K, V]) (*Cache[K, V], error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	return &Cache[K, V]{
		size:    size,
		order:   list.New(),
		items:   make(map[K]*list.Element),
		onEvict: onEvict,
	}, nil
}

// Add stores value under key and marks it most recently used. It reports
// whether an older entry was evicted to make room.
func (c *Cache[K, V]) Add(key K, value V) bool {
	if el, ok := c.items[key]; ok {
		c.order.MoveToFront(el)
		el.Value.(*entry[K, V]).value = value
		return false
	}

	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
	if c.order.Len() <= c.size {
		return false
	}
	c.removeElement(c.order.Back())
	return true
}

// Get returns the value stored under key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	if el, ok := c.items[key]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present without updating recency.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Peek returns the value stored under key without updating recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	if el, ok := c.items[key]; ok {
		return el.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Remove deletes key from the cache, reporting whether it was present.
func (c *Cache[K, V]) Remove(key K) bool {
	el, ok := c.items[key]
	if !ok {
		return false
	}
	c.removeElement(el)
	return true
}

// RemoveOldest evicts the least recently used entry and returns it.
func (c *Cache[K, V]) RemoveOldest() (K, V, bool) {
	el := c.order.Back()
	if el == nil {
		var zk K
		var zv V
		return zk, zv, false
	}
	ent := el.Value.(*entry[K, V])
	c.removeElement(el)
	return ent.key, ent.value, true
}

// GetOldest returns the least recently used entry without removing it.
func (c *Cache[K, V]) GetOldest() (K, V, bool) {
	el := c.order.Back()
	if el == nil {
		var zk K
		var zv V
		return zk, zv, false
	}
	ent := el.Value.(*entry[K, V])
	return ent.key, ent.value, true
}

// Keys returns the cached keys from least to most recently used.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, c.order.Len())
	for el := c.order.Back(); el != nil; el = el.Prev() {
		keys = append(keys, el.Value.(*entry[K, V]).key)
	}
	return keys
}

// Values returns the cached values from least to most recently used.
func (c *Cache[K, V]) Values() []V {
	values := make([]V, 0, c.order.Len())
	for el := c.order.Back(); el != nil; el = el.Prev() {
		values = append(values, el.Value.(*entry[K, V]).value)
	}
	return values
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	return c.order.Len()
}

// Purge removes all entries, invoking the eviction callback for each.
func (c *Cache[K, V]) Purge() {
	for el := c.order.Back(); el != nil; el = c.order.Back() {
		c.removeElement(el)
	}
}

// Resize changes the cache bound, evicting oldest entries as needed. It
// returns the number of entries evicted, or ErrInvalidSize for a
// non-positive size.
func (c *Cache[K, V]) Resize(size int) (int, error) {
	if size <= 0 {
		return 0, ErrInvalidSize
	}
	evicted := 0
	for c.order.Len() > size {
		c.removeElement(c.order.Back())
		evicted++
	}
	c.size = size
	return evicted, nil
}

func (c *Cache[K, V]) removeElement(el *list.Element) {
	ent := el.Value.(*entry[K, V])
	c.order.Remove(el)
	delete(c.items, ent.key)
	if c.onEvict != nil {
		c.onEvict(ent.key, ent.value)
	}
}
