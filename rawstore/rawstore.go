package rawstore

import (
	"errors"
	"math"
	"unsafe"
)

// Sentinel errors for storage allocation.
var (
	// ErrNegativeCapacity indicates a capacity below zero was requested.
	ErrNegativeCapacity = errors.New("rawstore: negative capacity")

	// ErrAllocation indicates the allocation request cannot be satisfied:
	// capacity*sizeof(T) would overflow the addressable byte range.
	ErrAllocation = errors.New("rawstore: cannot satisfy allocation request")
)

// Storage owns a contiguous block of element-sized slots.
//
// The zero value is a valid empty storage (capacity 0, no block).
// Storage values must not be copied by assignment; transfer ownership
// with Move or Swap. See the package documentation for the full rules.
type Storage[T any] struct {
	block []T // len(block) == capacity; slot liveness is the owner's accounting
}

// MaxCapacity reports the largest slot count New can accept for element
// type T: the count at which capacity*sizeof(T) still fits in an int.
// Zero-sized element types have no practical bound.
func MaxCapacity[T any]() int {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return math.MaxInt
	}

	return math.MaxInt / int(size)
}

// New allocates a Storage with room for capacity slots of T.
// Capacity 0 allocates nothing and yields a valid empty storage.
//
// Returns ErrNegativeCapacity for capacity < 0, and ErrAllocation when the
// block's byte size would not be representable. On failure no partial
// state is retained. A request the runtime itself cannot satisfy is fatal
// in Go (make aborts the process); this guard covers every refusable case.
//
// Complexity: O(capacity) — the runtime zeroes the block.
func New[T any](capacity int) (Storage[T], error) {
	if capacity < 0 {
		return Storage[T]{}, ErrNegativeCapacity
	}
	if capacity > MaxCapacity[T]() {
		return Storage[T]{}, ErrAllocation
	}
	if capacity == 0 {
		return Storage[T]{}, nil
	}

	return Storage[T]{block: make([]T, capacity)}, nil
}

// Cap returns the slot capacity of the storage.
//
// Complexity: O(1)
func (s *Storage[T]) Cap() int {
	return len(s.block)
}

// At returns a pointer to raw slot i.
// The caller is responsible for the slot holding a live value before
// reading it as one. Panics if i is outside [0, Cap()) — a contract
// violation by the caller.
//
// Complexity: O(1)
func (s *Storage[T]) At(i int) *T {
	if i < 0 || i >= len(s.block) {
		panic("rawstore: slot index out of range")
	}

	return &s.block[i]
}

// Swap exchanges the owned block and capacity with other in O(1):
// no allocation, no element construction or destruction, pure ownership
// transfer. Self-swap is a no-op.
func (s *Storage[T]) Swap(other *Storage[T]) {
	if s == other {
		return
	}
	s.block, other.block = other.block, s.block
}

// Move returns the storage and leaves the receiver empty (capacity 0,
// no block), so releasing the receiver afterwards is a no-op.
//
// Complexity: O(1)
func (s *Storage[T]) Move() Storage[T] {
	out := Storage[T]{block: s.block}
	s.block = nil

	return out
}

// Release drops the owned block; no-op when the storage is empty.
// For the owner this is wholesale destruction: any values still held in
// the block die with it.
//
// Complexity: O(1)
func (s *Storage[T]) Release() {
	s.block = nil
}
