package treequeue

import (
	"errors"
	"slices"
	"testing"
)

func TestOfferAndAscendingOrder(t *testing.T) {
	q := New[int]()
	for _, v := range []int{5, 3, 8, 1, 4} {
		if !q.Offer(v) {
			t.Fatalf("Offer(%d) rejected on unbounded queue", v)
		}
	}

	want := []int{1, 3, 4, 5, 8}
	if got := q.Snapshot(); !slices.Equal(got, want) {
		t.Fatalf("ascending order = %v, want %v", got, want)
	}
	if q.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", q.Len())
	}
}

func TestBoundedEviction(t *testing.T) {
	q := New[int](WithCapacity(3))
	for _, v := range []int{5, 3, 8} {
		if !q.Offer(v) {
			t.Fatalf("Offer(%d) rejected below capacity", v)
		}
	}

	// 1 sorts before the current maximum 8, so 8 is evicted.
	if !q.Offer(1) {
		t.Fatalf("Offer(1) rejected, want eviction of 8")
	}
	if q.Contains(8) {
		t.Fatalf("8 still present after eviction")
	}
	if got, want := q.Snapshot(), []int{1, 3, 5}; !slices.Equal(got, want) {
		t.Fatalf("contents after eviction = %v, want %v", got, want)
	}

	// 10 sorts after the current maximum 5 and must be rejected.
	if q.Offer(10) {
		t.Fatalf("Offer(10) accepted at capacity, want rejection")
	}
	if got, want := q.Snapshot(), []int{1, 3, 5}; !slices.Equal(got, want) {
		t.Fatalf("contents changed by rejected offer: %v, want %v", got, want)
	}

	// An element equal to the current maximum is rejected as well.
	if q.Offer(5) {
		t.Fatalf("Offer(5) accepted at capacity, want rejection of tie with max")
	}
}

func TestDuplicatesAreKept(t *testing.T) {
	q := New[int]()
	for range 3 {
		q.Offer(3)
	}
	if q.Len() != 3 {
		t.Fatalf("Len() = %d after inserting 3 duplicates, want 3", q.Len())
	}
	for i := range 3 {
		v, ok := q.Poll()
		if !ok || v != 3 {
			t.Fatalf("Poll() #%d = %v, %v; want 3, true", i+1, v, ok)
		}
	}
	if _, ok := q.Poll(); ok {
		t.Fatalf("Poll() on drained queue reported an element")
	}
}

func TestEmptyQueueAccess(t *testing.T) {
	q := New[string]()

	if v, ok := q.Poll(); ok {
		t.Fatalf("Poll() on empty queue = %q, true", v)
	}
	if v, ok := q.PollLast(); ok {
		t.Fatalf("PollLast() on empty queue = %q, true", v)
	}
	if v, ok := q.Peek(); ok {
		t.Fatalf("Peek() on empty queue = %q, true", v)
	}
	if v, ok := q.PeekLast(); ok {
		t.Fatalf("PeekLast() on empty queue = %q, true", v)
	}

	if _, err := q.Remove(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("Remove() error = %v, want ErrEmpty", err)
	}
	if _, err := q.RemoveLast(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("RemoveLast() error = %v, want ErrEmpty", err)
	}
	if _, err := q.Element(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("Element() error = %v, want ErrEmpty", err)
	}
}

func TestPeekIsIdempotent(t *testing.T) {
	q := FromSlice([]int{4, 2, 9})

	for range 3 {
		if v, ok := q.Peek(); !ok || v != 2 {
			t.Fatalf("Peek() = %v, %v; want 2, true", v, ok)
		}
		if v, ok := q.PeekLast(); !ok || v != 9 {
			t.Fatalf("PeekLast() = %v, %v; want 9, true", v, ok)
		}
	}
	if q.Len() != 3 {
		t.Fatalf("Len() = %d after repeated peeks, want 3", q.Len())
	}
}

func TestDoubleEndedRemoval(t *testing.T) {
	q := FromSlice([]int{7, 1, 5, 3, 9})

	if v, err := q.Remove(); err != nil || v != 1 {
		t.Fatalf("Remove() = %v, %v; want 1, nil", v, err)
	}
	if v, err := q.RemoveLast(); err != nil || v != 9 {
		t.Fatalf("RemoveLast() = %v, %v; want 9, nil", v, err)
	}
	if v, ok := q.PollLast(); !ok || v != 7 {
		t.Fatalf("PollLast() = %v, %v; want 7, true", v, ok)
	}
	if got, want := q.Snapshot(), []int{3, 5}; !slices.Equal(got, want) {
		t.Fatalf("remaining = %v, want %v", got, want)
	}
}

func TestContainsAndRemoveValue(t *testing.T) {
	q := FromSlice([]int{6, 2, 8, 4})

	if !q.Contains(4) {
		t.Fatalf("Contains(4) = false, want true")
	}
	if q.Contains(5) {
		t.Fatalf("Contains(5) = true, want false")
	}

	if !q.RemoveValue(4) {
		t.Fatalf("RemoveValue(4) = false, want true")
	}
	if q.Contains(4) {
		t.Fatalf("4 still present after RemoveValue")
	}
	if q.RemoveValue(4) {
		t.Fatalf("RemoveValue(4) = true on absent element")
	}
	if got, want := q.Snapshot(), []int{2, 6, 8}; !slices.Equal(got, want) {
		t.Fatalf("remaining = %v, want %v", got, want)
	}
}

func TestCapacityIntrospection(t *testing.T) {
	q := New[int](WithCapacity(4))

	if q.Cap() != 4 {
		t.Fatalf("Cap() = %d, want 4", q.Cap())
	}
	for i := range 3 {
		q.Offer(i)
		if q.Remaining()+q.Len() != 4 {
			t.Fatalf("Remaining()+Len() = %d, want 4", q.Remaining()+q.Len())
		}
	}
	if q.Remaining() != 1 {
		t.Fatalf("Remaining() = %d, want 1", q.Remaining())
	}
}

func TestClear(t *testing.T) {
	q := FromSlice([]int{3, 1, 2})
	q.Clear()

	if !q.IsEmpty() || q.Len() != 0 {
		t.Fatalf("queue not empty after Clear: len=%d", q.Len())
	}
	if _, ok := q.Peek(); ok {
		t.Fatalf("Peek() reported an element after Clear")
	}
	if !q.Offer(5) {
		t.Fatalf("Offer rejected after Clear")
	}
	if v, ok := q.Peek(); !ok || v != 5 {
		t.Fatalf("Peek() = %v, %v after re-insert; want 5, true", v, ok)
	}
}

func TestComparatorOrder(t *testing.T) {
	type job struct {
		name string
		prio int
	}
	byPrio := func(a, b job) int { return a.prio - b.prio }

	q := NewFunc(byPrio, WithCapacity(2))
	q.Offer(job{"low", 10})
	q.Offer(job{"high", 1})

	// At capacity: a medium job evicts the lowest-priority (greatest) one.
	if !q.Offer(job{"mid", 5}) {
		t.Fatalf("Offer(mid) rejected, want eviction of low")
	}
	if v, ok := q.Peek(); !ok || v.name != "high" {
		t.Fatalf("Peek() = %+v, want high", v)
	}
	if v, ok := q.PeekLast(); !ok || v.name != "mid" {
		t.Fatalf("PeekLast() = %+v, want mid", v)
	}
}

func TestTieBreakKeepsInsertionOrder(t *testing.T) {
	type entry struct {
		key int
		seq int
	}
	byKey := func(a, b entry) int { return a.key - b.key }

	q := NewFunc(byKey)
	for i := range 4 {
		q.Offer(entry{key: 7, seq: i})
	}
	q.Offer(entry{key: 3, seq: 99})

	got := make([]int, 0, 4)
	for _, e := range q.Snapshot() {
		if e.key == 7 {
			got = append(got, e.seq)
		}
	}
	if !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Fatalf("equal elements out of insertion order: %v", got)
	}
}

func TestClone(t *testing.T) {
	q := FromSlice([]int{4, 1, 3}, WithCapacity(3))
	dup := q.Clone()

	if !slices.Equal(dup.Snapshot(), q.Snapshot()) {
		t.Fatalf("clone contents = %v, want %v", dup.Snapshot(), q.Snapshot())
	}

	// Clone keeps the capacity bound.
	if dup.Offer(9) {
		t.Fatalf("clone accepted 9 at capacity, want rejection")
	}

	// The two queues are independent.
	dup.Poll()
	if q.Len() != 3 {
		t.Fatalf("mutating clone changed original: len=%d", q.Len())
	}
}

func TestNewFuncNilCompare(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("NewFunc(nil) did not panic")
		}
	}()
	NewFunc[int](nil)
}
