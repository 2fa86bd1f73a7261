// Package dynarr is a from-scratch generic dynamic array for Go — a
// contiguous, growable container with the memory-management discipline of
// a production standard-library vector.
//
// 🚀 What is dynarr?
//
//	A small, zero-runtime-dependency library split into two layers:
//		• rawstore/ — exclusively-owned raw slot storage: allocate, index,
//		  O(1) swap, release. Never touches element lifetimes.
//		• vector/   — the typed container: size accounting, growth,
//		  push/emplace, positional insert/erase, copy/move assignment.
//
// ✨ Why choose dynarr?
//
//   - Strong failure guarantees — every mutating operation either fully
//     succeeds or leaves the container exactly as it was
//   - Explicit element lifecycle — construct/destroy primitives instead of
//     append magic; dead slots are zeroed so the GC is never pinned by
//     stale references
//   - Fallible construction as a first-class citizen — default and copy
//     constructors may return errors, wired in via functional options
//   - Pure Go — no cgo, no hidden deps
//
// Quick ASCII picture of a Vector with size 3, capacity 5:
//
//	┌───┬───┬───┬ ─ ┬ ─ ┐
//	│ a │ b │ c │   │   │
//	└───┴───┴───┴ ─ ┴ ─ ┘
//	  live [0,size)   dead [size,cap)
//
// Dive into vector/doc.go and rawstore/doc.go for the full API surface,
// complexity notes, and the failure-guarantee contract of each operation.
//
//	go get github.com/katalvlaran/dynarr/vector
package dynarr
