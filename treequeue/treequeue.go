package treequeue

import (
	"cmp"
	"errors"
	"iter"
	"math"
)

// Sentinel errors for package treequeue.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// ErrEmpty is returned by the demanding access forms (Element, Remove,
	// RemoveLast) when the queue holds no elements.
	ErrEmpty = errors.New("treequeue: queue is empty")

	// ErrConcurrentModification is reported by an iterator that observed a
	// structural change made outside the iterator itself.
	ErrConcurrentModification = errors.New("treequeue: queue modified during iteration")

	// ErrIteratorState is returned by Iterator.Remove when no element has
	// been returned yet, or when the last returned element was already
	// removed.
	ErrIteratorState = errors.New("treequeue: Remove requires a preceding call to Next")
)

type settings struct {
	capacity int
}

// Option configures a queue at construction time.
type Option func(*settings)

// WithCapacity bounds the queue to at most n elements. Once full, an offered
// element either evicts the current greatest element (when it sorts strictly
// before it) or is rejected. A non-positive n leaves the queue unbounded.
func WithCapacity(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// Queue is an ordered, optionally bounded queue backed by a red-black tree.
// The zero value is not usable; construct queues with New, NewFunc or one of
// the From helpers. A Queue must not be used concurrently without external
// synchronization.
type Queue[T any] struct {
	compare  func(a, b T) int
	nilNode  *node[T] // shared black sentinel, self-referencing
	root     *node[T]
	min      *node[T]
	max      *node[T]
	size     int
	capacity int
	mods     uint64 // structural modification counter for fail-fast iteration
}

// New creates an empty queue ordered by cmp.Compare.
func New[T cmp.Ordered](opts ...Option) *Queue[T] {
	return NewFunc(cmp.Compare[T], opts...)
}

// NewFunc creates an empty queue ordered by compare, which must define a
// total order: negative when a sorts before b, zero on ties, positive when
// a sorts after b. NewFunc panics if compare is nil.
func NewFunc[T any](compare func(a, b T) int, opts ...Option) *Queue[T] {
	if compare == nil {
		panic("treequeue: nil compare function")
	}
	s := settings{capacity: math.MaxInt}
	for _, opt := range opts {
		opt(&s)
	}

	sentinel := &node[T]{color: black}
	sentinel.left = sentinel
	sentinel.right = sentinel
	sentinel.parent = sentinel

	return &Queue[T]{
		compare:  compare,
		nilNode:  sentinel,
		root:     sentinel,
		min:      sentinel,
		max:      sentinel,
		capacity: s.capacity,
	}
}

// FromSlice creates a natural-order queue and offers every element of items
// in slice order, preserving tie-break semantics for equal elements.
func FromSlice[T cmp.Ordered](items []T, opts ...Option) *Queue[T] {
	return FromSliceFunc(cmp.Compare[T], items, opts...)
}

// FromSliceFunc creates a comparator-order queue and offers every element of
// items in slice order.
func FromSliceFunc[T any](compare func(a, b T) int, items []T, opts ...Option) *Queue[T] {
	q := NewFunc(compare, opts...)
	for _, v := range items {
		q.Offer(v)
	}
	return q
}

// FromSeq creates a natural-order queue and offers every element yielded by
// seq in sequence order.
func FromSeq[T cmp.Ordered](seq iter.Seq[T], opts ...Option) *Queue[T] {
	q := New[T](opts...)
	for v := range seq {
		q.Offer(v)
	}
	return q
}

// Offer inserts v, reporting whether the queue accepted it. When the queue
// is at capacity, v is accepted only if it sorts strictly before the current
// greatest element, which is evicted to make room; otherwise the queue is
// left unchanged and Offer reports false.
func (q *Queue[T]) Offer(v T) bool {
	if q.size >= q.capacity {
		if q.compare(v, q.max.item) >= 0 {
			return false
		}
		q.deleteNode(q.max)
	}
	q.insert(v)
	return true
}

// Peek returns the least element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}
	return q.min.item, true
}

// PeekLast returns the greatest element without removing it.
func (q *Queue[T]) PeekLast() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}
	return q.max.item, true
}

// Element returns the least element without removing it, or ErrEmpty when
// the queue holds no elements.
func (q *Queue[T]) Element() (T, error) {
	v, ok := q.Peek()
	if !ok {
		return v, ErrEmpty
	}
	return v, nil
}

// Poll removes and returns the least element. The boolean is false when the
// queue is empty.
func (q *Queue[T]) Poll() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}
	n := q.min
	v := n.item
	q.deleteNode(n)
	return v, true
}

// PollLast removes and returns the greatest element. The boolean is false
// when the queue is empty.
func (q *Queue[T]) PollLast() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}
	n := q.max
	v := n.item
	q.deleteNode(n)
	return v, true
}

// Remove removes and returns the least element, or ErrEmpty when the queue
// holds no elements.
func (q *Queue[T]) Remove() (T, error) {
	v, ok := q.Poll()
	if !ok {
		return v, ErrEmpty
	}
	return v, nil
}

// RemoveLast removes and returns the greatest element, or ErrEmpty when the
// queue holds no elements.
func (q *Queue[T]) RemoveLast() (T, error) {
	v, ok := q.PollLast()
	if !ok {
		return v, ErrEmpty
	}
	return v, nil
}

// Contains reports whether an element comparing equal to v is present.
// Equality is decided by the queue's comparison function, not by ==.
func (q *Queue[T]) Contains(v T) bool {
	return q.lookup(v) != q.nilNode
}

// RemoveValue removes one element comparing equal to v, reporting whether
// one was found. With duplicates present, which of the equal elements is
// removed is unspecified.
func (q *Queue[T]) RemoveValue(v T) bool {
	n := q.lookup(v)
	if n == q.nilNode {
		return false
	}
	q.deleteNode(n)
	return true
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.size
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

// Cap returns the configured capacity bound. Unbounded queues report
// math.MaxInt.
func (q *Queue[T]) Cap() int {
	return q.capacity
}

// Remaining returns how many more elements the queue accepts before the
// eviction policy applies.
func (q *Queue[T]) Remaining() int {
	return q.capacity - q.size
}

// CompareFunc returns the comparison function the queue orders by.
func (q *Queue[T]) CompareFunc() func(a, b T) int {
	return q.compare
}

// Clear removes all elements.
func (q *Queue[T]) Clear() {
	q.root = q.nilNode
	q.min = q.nilNode
	q.max = q.nilNode
	q.size = 0
	q.mods++
}

// Snapshot returns the elements in ascending order, or nil when the queue is
// empty. The returned slice is a copy.
func (q *Queue[T]) Snapshot() []T {
	if q.size == 0 {
		return nil
	}
	out := make([]T, 0, q.size)
	for x := q.min; x != q.nilNode; x = q.successor(x) {
		out = append(out, x.item)
	}
	return out
}

// Clone returns an independent queue with the same comparison function,
// capacity and contents. Elements are re-inserted in ascending order, which
// preserves the relative order of equal elements. O(n log n).
func (q *Queue[T]) Clone() *Queue[T] {
	dup := NewFunc(q.compare)
	dup.capacity = q.capacity
	for x := q.min; x != q.nilNode; x = q.successor(x) {
		dup.insert(x.item)
	}
	return dup
}
