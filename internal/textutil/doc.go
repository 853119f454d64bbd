// Package textutil provides text processing utilities for tag-set parsing and
// string similarity.
//
// The primary use cases are:
//   - Parsing comma-separated genre/keyword fields into normalized tag sets
//   - Computing a normalized similarity ratio between two strings for fuzzy
//     title matching
//
// Tag parsing lowercases tokens, trims surrounding whitespace, and drops empty
// entries so every matching call site shares identical tokenization semantics.
package textutil
