package treequeue

import "encoding/json"

// MarshalJSON encodes the queue as a JSON array of its elements in ascending
// order. Only the logical contents are persisted; tree shape, capacity and
// comparison function are not part of the encoding.
func (q *Queue[T]) MarshalJSON() ([]byte, error) {
	items := q.Snapshot()
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

// UnmarshalJSON replaces the queue's contents with the elements of a JSON
// array, offering them one at a time in array order. The queue keeps its
// configured comparison function and capacity, so decoding into a bounded
// queue re-applies the eviction policy.
func (q *Queue[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	q.Clear()
	for _, v := range items {
		q.Offer(v)
	}
	return nil
}
