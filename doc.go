// Package main provides the goutil command-line interface.
//
// goutil is a general-purpose utility library for Go: string, file and
// hashing helpers plus a handful of collection data structures, most notably
// an ordered, capacity-bounded queue backed by a red-black tree. This binary
// exposes a few of the library's capabilities as a command-line toolbox.
//
// The main binary supports multiple subcommands:
//   - topn: Keep the best n lines of a file or stdin
//   - hash: Digest files or directory trees with SHA-256
//   - seed: Generate sample data files for the other commands
package main
