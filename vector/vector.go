package vector

import (
	"iter"

	"github.com/katalvlaran/dynarr/rawstore"
)

// Vector is a growable contiguous container of T.
//
// It exclusively owns its storage; slots [0,size) hold live values and
// slots [size,Cap()) are dead. The zero value is not ready for use —
// construct with New, NewWithSize, or Move.
type Vector[T any] struct {
	data rawstore.Storage[T] // owned block; liveness tracked by size
	size int                 // count of live elements, 0 <= size <= data.Cap()
	opts options[T]
}

// New returns an empty Vector with zero capacity.
//
// Complexity: O(1)
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, opt := range opts {
		opt(&v.opts)
	}

	return v
}

// NewWithSize returns a Vector holding n default-constructed elements,
// with size == capacity == n. A failing default constructor destroys
// whatever was built and returns the error; no vector is produced.
// Panics if n is negative (programmer error).
//
// Complexity: O(n)
func NewWithSize[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	if n < 0 {
		panic("vector: negative size")
	}
	v := New[T](opts...)

	fresh, err := rawstore.New[T](n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		val, cErr := v.newElement()
		if cErr != nil {
			fresh.Release() // built elements die with the block
			return nil, constructErr(cErr)
		}
		*fresh.At(i) = val
	}
	v.data = fresh
	v.size = n

	return v, nil
}

// Move is the move-construction analog: it returns a new Vector that has
// taken ownership of src's storage, size, and element hooks, leaving src
// valid and empty.
//
// Complexity: O(1)
func Move[T any](src *Vector[T]) *Vector[T] {
	out := &Vector[T]{data: src.data.Move(), size: src.size, opts: src.opts}
	src.size = 0

	return out
}

// Len returns the number of live elements.
//
// Complexity: O(1)
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the slot capacity of the owned storage.
//
// Complexity: O(1)
func (v *Vector[T]) Cap() int { return v.data.Cap() }

// At returns the value of the element at index i.
// Panics if i is outside [0, Len()).
//
// Complexity: O(1)
func (v *Vector[T]) At(i int) T {
	v.checkIndex(i)

	return *v.data.At(i)
}

// Ptr returns a mutable pointer to the element at index i.
// The pointer is invalidated by any reallocating operation.
// Panics if i is outside [0, Len()).
//
// Complexity: O(1)
func (v *Vector[T]) Ptr(i int) *T {
	v.checkIndex(i)

	return v.data.At(i)
}

// All iterates the live elements in index order, read-only.
// The vector must not be mutated during iteration.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.data.At(i)) {
				return
			}
		}
	}
}

// Refs iterates mutable pointers to the live elements in index order.
// The vector must not be resized or reallocated during iteration.
func (v *Vector[T]) Refs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data.At(i)) {
				return
			}
		}
	}
}

// Swap exchanges storage, size, and element hooks with other in O(1).
// No allocation, no element construction or destruction; cannot fail.
// Self-swap is a no-op.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == other {
		return
	}
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.opts, other.opts = other.opts, v.opts
}

// MoveFrom is the move-assignment analog: it exchanges state with src in
// O(1), leaving src valid (holding the receiver's former contents).
// Self-move is a no-op.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Swap(src)
}

// checkIndex panics unless i addresses a live element.
func (v *Vector[T]) checkIndex(i int) {
	if i < 0 || i >= v.size {
		panic("vector: index out of range")
	}
}

// newElement runs the default constructor hook, or yields the zero value
// when no hook is configured (that path cannot fail).
func (v *Vector[T]) newElement() (T, error) {
	if v.opts.construct != nil {
		return v.opts.construct()
	}
	var zero T

	return zero, nil
}

// cloneElement runs the clone hook, or copies by plain assignment when no
// hook is configured (that path cannot fail).
func (v *Vector[T]) cloneElement(val T) (T, error) {
	if v.opts.clone != nil {
		return v.opts.clone(val)
	}

	return val, nil
}

// destroyAt is the explicit "destroy value at slot" primitive: the slot
// is zeroed so the dead range never pins referenced memory.
func destroyAt[T any](s *rawstore.Storage[T], i int) {
	var zero T
	*s.At(i) = zero
}

// destroyRange destroys slots [from, to).
func destroyRange[T any](s *rawstore.Storage[T], from, to int) {
	for i := from; i < to; i++ {
		destroyAt(s, i)
	}
}

// relocateRange moves n live elements from src[srcFrom:] into
// dst[dstFrom:]. A move is a slot transfer and cannot fail; the originals
// are destroyed wholesale when the caller releases src's block.
func relocateRange[T any](dst, src *rawstore.Storage[T], dstFrom, srcFrom, n int) {
	for i := 0; i < n; i++ {
		*dst.At(dstFrom + i) = *src.At(srcFrom + i)
	}
}
