package treequeue

import "iter"

// Iterator walks queue elements in comparator order, least to greatest for
// Ascend and greatest to least for Descend. The usage follows the scanner
// pattern:
//
//	it := q.Ascend()
//	for it.Next() {
//		use(it.Value())
//	}
//	if err := it.Err(); err != nil {
//		// queue was modified behind the iterator's back
//	}
//
// Iteration is fail-fast: any structural change to the queue other than
// through the iterator's own Remove stops the walk with
// ErrConcurrentModification. A failed iterator cannot be reused; create a
// fresh one.
type Iterator[T any] struct {
	q        *Queue[T]
	next     *node[T]
	lastRet  *node[T]
	expected uint64
	desc     bool
	cur      T
	err      error
}

// Ascend returns an iterator from the least element to the greatest.
func (q *Queue[T]) Ascend() *Iterator[T] {
	return &Iterator[T]{q: q, next: q.min, expected: q.mods}
}

// Descend returns an iterator from the greatest element to the least.
func (q *Queue[T]) Descend() *Iterator[T] {
	return &Iterator[T]{q: q, next: q.max, expected: q.mods, desc: true}
}

// Next advances the iterator, reporting whether an element is available via
// Value. It returns false when the walk is exhausted or when a concurrent
// structural modification was detected; Err distinguishes the two.
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.expected != it.q.mods {
		it.err = ErrConcurrentModification
		return false
	}
	if it.next == it.q.nilNode {
		return false
	}
	it.cur = it.next.item
	it.lastRet = it.next
	if it.desc {
		it.next = it.q.predecessor(it.next)
	} else {
		it.next = it.q.successor(it.next)
	}
	return true
}

// Value returns the element produced by the last successful call to Next.
func (it *Iterator[T]) Value() T {
	return it.cur
}

// Err returns the first failure observed by the iterator, if any. A nil
// result after Next returns false means the walk simply finished.
func (it *Iterator[T]) Err() error {
	return it.err
}

// Remove deletes the element last returned by Next from the queue. It
// returns ErrIteratorState when Next has not been called, or when Remove
// was already called for the current element. The deletion relinks nodes
// without moving items between them, so the iterator's position survives.
func (it *Iterator[T]) Remove() error {
	if it.err != nil {
		return it.err
	}
	if it.expected != it.q.mods {
		it.err = ErrConcurrentModification
		return it.err
	}
	if it.lastRet == nil {
		return ErrIteratorState
	}
	it.q.deleteNode(it.lastRet)
	it.lastRet = nil
	it.expected = it.q.mods
	return nil
}

// All returns the elements in ascending order as a range-over-func sequence.
// The sequence panics with ErrConcurrentModification if the queue is
// structurally modified while ranging.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		expected := q.mods
		for x := q.min; x != q.nilNode; x = q.successor(x) {
			if q.mods != expected {
				panic(ErrConcurrentModification)
			}
			if !yield(x.item) {
				return
			}
		}
	}
}

// Backward returns the elements in descending order as a range-over-func
// sequence, with the same fail-fast behavior as All.
func (q *Queue[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		expected := q.mods
		for x := q.max; x != q.nilNode; x = q.predecessor(x) {
			if q.mods != expected {
				panic(ErrConcurrentModification)
			}
			if !yield(x.item) {
				return
			}
		}
	}
}
