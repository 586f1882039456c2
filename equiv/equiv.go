// Package equiv provides maps and sets keyed by a caller-supplied
// equivalence relation instead of Go's built-in equality.
//
// An Equivalence pairs a hash function with an equality predicate; the two
// must agree, i.e. equal keys must hash identically. Prebuilt equivalences
// cover Go-native equality (Natural) and case-insensitive strings (Fold).
//
// Maps and sets are not safe for concurrent use; callers must synchronize
// externally.
package equiv

import (
	"hash/maphash"
	"iter"
	"strings"

	"github.com/taigrr/colorhash"
)

// Equivalence defines when two keys are interchangeable and how they bucket.
// Equal keys must produce the same Hash value.
type Equivalence[K any] struct {
	Hash  func(K) uint64
	Equal func(a, b K) bool
}

// Natural returns the equivalence induced by Go's == operator.
func Natural[K comparable]() Equivalence[K] {
	seed := maphash.MakeSeed()
	return Equivalence[K]{
		Hash:  func(k K) uint64 { return maphash.Comparable(seed, k) },
		Equal: func(a, b K) bool { return a == b },
	}
}

// Fold returns a case-insensitive string equivalence. Keys are compared and
// bucketed after simple lowercase folding.
func Fold() Equivalence[string] {
	return Equivalence[string]{
		Hash:  func(k string) uint64 { return uint64(colorhash.HashString(strings.ToLower(k))) },
		Equal: func(a, b string) bool { return strings.ToLower(a) == strings.ToLower(b) },
	}
}

type pair[K, V any] struct {
	key   K
	value V
}

// Map associates values with keys under an Equivalence. The stored key is
// the one supplied first; putting an equivalent key replaces the value but
// keeps the original key.
type Map[K, V any] struct {
	eq      Equivalence[K]
	buckets map[uint64][]pair[K, V]
	size    int
}

// NewMap creates an empty map keyed by eq. NewMap panics when either
// function of eq is nil.
func NewMap[K, V any](eq Equivalence[K]) *Map[K, V] {
	if eq.Hash == nil || eq.Equal == nil {
		panic("equiv: incomplete equivalence")
	}
	return &Map[K, V]{
		eq:      eq,
		buckets: make(map[uint64][]pair[K, V]),
	}
}

// Put stores value under key, reporting whether an equivalent key was
// already present.
func (m *Map[K, V]) Put(key K, value V) bool {
	h := m.eq.Hash(key)
	bucket := m.buckets[h]
	for i := range bucket {
		if m.eq.Equal(bucket[i].key, key) {
			bucket[i].value = value
			return true
		}
	}
	m.buckets[h] = append(bucket, pair[K, V]{key: key, value: value})
	m.size++
	return false
}

// Get returns the value stored under a key equivalent to key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	bucket := m.buckets[m.eq.Hash(key)]
	for i := range bucket {
		if m.eq.Equal(bucket[i].key, key) {
			return bucket[i].value, true
		}
	}
	var zero V
	return zero, false
}

// Has reports whether a key equivalent to key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes the entry for a key equivalent to key, reporting whether
// one was present.
func (m *Map[K, V]) Delete(key K) bool {
	h := m.eq.Hash(key)
	bucket := m.buckets[h]
	for i := range bucket {
		if m.eq.Equal(bucket[i].key, key) {
			last := len(bucket) - 1
			bucket[i] = bucket[last]
			bucket = bucket[:last]
			if len(bucket) == 0 {
				delete(m.buckets, h)
			} else {
				m.buckets[h] = bucket
			}
			m.size--
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.size
}

// All returns the entries as a range-over-func sequence. Iteration order is
// unspecified. The map must not be mutated while ranging.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, bucket := range m.buckets {
			for _, p := range bucket {
				if !yield(p.key, p.value) {
					return
				}
			}
		}
	}
}

// Keys returns the stored keys as a range-over-func sequence.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Set is a collection of keys under an Equivalence.
type Set[K any] struct {
	m *Map[K, struct{}]
}

// NewSet creates an empty set keyed by eq.
func NewSet[K any](eq Equivalence[K]) *Set[K] {
	return &Set[K]{m: NewMap[K, struct{}](eq)}
}

// Add inserts key, reporting whether an equivalent key was already present.
func (s *Set[K]) Add(key K) bool {
	return s.m.Put(key, struct{}{})
}

// Has reports whether a key equivalent to key is present.
func (s *Set[K]) Has(key K) bool {
	return s.m.Has(key)
}

// Delete removes a key equivalent to key, reporting whether one was present.
func (s *Set[K]) Delete(key K) bool {
	return s.m.Delete(key)
}

// Len returns the number of keys.
func (s *Set[K]) Len() int {
	return s.m.Len()
}

// All returns the stored keys as a range-over-func sequence.
func (s *Set[K]) All() iter.Seq[K] {
	return s.m.Keys()
}
