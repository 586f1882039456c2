// Package treequeue provides an ordered, optionally capacity-bounded queue
// backed by a red-black tree.
//
// A Queue keeps its elements totally ordered by a comparison function and
// gives double-ended access: the least element is reachable through
// Peek/Poll/Remove and the greatest through PeekLast/PollLast/RemoveLast.
// Both extremes are cached, so peeking either end is O(1); every other
// operation is bounded by the tree height, O(log n).
//
// Capacity and Eviction:
//
// A queue built with WithCapacity keeps at most n elements using
// "keep the best n" semantics. When an insertion would exceed the bound,
// the candidate is compared against the current greatest element: if the
// candidate sorts strictly before it, the greatest element is evicted and
// the candidate takes its place; otherwise the candidate is rejected and
// Offer reports false. Rejection is not an error.
//
// Ordering and Duplicates:
//
// Element order is determined entirely by the comparison function. Elements
// that compare equal are all retained (multiset semantics) and keep their
// insertion order relative to each other: ties descend to the right during
// placement, so the first element inserted wins positional priority among
// equals. No secondary sequence key is kept.
//
// Iteration:
//
// Ascend and Descend return scanner-style iterators that detect structural
// modification of the queue between steps and stop with
// ErrConcurrentModification. This is a best-effort diagnostic for misuse,
// not a concurrency guarantee. All and Backward expose the same walks as
// range-over-func sequences.
//
// Concurrency:
//
// A Queue is not safe for concurrent use. Callers sharing a queue across
// goroutines must serialize access externally for the whole duration of any
// compound operation, iteration in particular.
package treequeue
