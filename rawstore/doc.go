// Package rawstore provides the raw, exclusively-owned slot storage that
// backs the typed container in package vector.
//
// A Storage[T] owns a single contiguous block sized for a fixed number of
// element slots. It never constructs or destroys elements: which slots
// hold live values is entirely the owner's accounting. The package only
// answers "give me slot i", "how many slots", and "hand the whole block to
// someone else" — allocation policy, growth, and element lifetimes all
// live one layer up.
//
// Core operations:
//
//	New[T](capacity)   — allocate a block for capacity slots   // O(capacity)
//	(*Storage).At(i)   — pointer to raw slot i                 // O(1)
//	(*Storage).Cap()   — slot capacity                         // O(1)
//	(*Storage).Swap(o) — exchange blocks, no allocation        // O(1)
//	(*Storage).Move()  — take the block, leave receiver empty  // O(1)
//	(*Storage).Release() — drop the block                      // O(1)
//
// Ownership rules:
//
//   - Exactly one Storage value owns a block at any time. Swap and Move
//     transfer ownership wholesale; neither can fail.
//   - A Storage value must not be copied by assignment: two owners of one
//     block have no defined semantics. Transfer with Move or Swap instead.
//   - Release drops the block wholesale; any values still in it die with
//     it. The owner's per-slot accounting is void after Release.
//
// Errors:
//
//	ErrNegativeCapacity — capacity below zero requested.
//	ErrAllocation       — the request cannot be satisfied (the block's
//	                      byte size would not be representable).
//
// Reading a slot that the owner never marked live yields an unspecified
// (zero) value; At panics on an out-of-range index, which is a contract
// violation by the caller, not a recoverable condition.
package rawstore
