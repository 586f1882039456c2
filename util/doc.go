// Package util provides the thin helper layer of the goutil toolbox: string
// manipulation, SHA-256 digest helpers, and file-system convenience wrappers.
//
// Key Components:
//
// Hashing:
//   - HashBytes, HashString, HashReader, HashFile for SHA-256 hex digests
//   - BucketPath for distributing content hashes over a fixed bucket space
//   - HashTree for concurrent digesting of whole directory trees
//
// Files:
//   - WriteFileAtomic for crash-safe writes via a temp file and rename
//   - ReadLines/WriteLines for line-oriented text files
//   - EnsureDir and CopyFile convenience wrappers
//
// Strings:
//   - Truncate, Abbreviate, DefaultIfEmpty, FirstNonEmpty, EqualFoldAny,
//     Reverse
//
// All helpers are pure functions or operate on paths handed in by the
// caller; nothing in this package keeps state between calls.
package util
