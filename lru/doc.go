// Package lru provides a fixed-size cache with least-recently-used eviction.
//
// A Cache tracks recency on Add and Get; Peek and Contains inspect entries
// without touching recency. When the cache is full, adding a new key evicts
// the least recently used entry, optionally reporting it through an eviction
// callback.
//
// The cache is not safe for concurrent use; callers must synchronize
// externally.
package lru
