package vector

import "github.com/katalvlaran/dynarr/rawstore"

// Reserve grows capacity to at least n; a no-op when n <= Cap().
//
// On growth, a fresh storage is allocated, all live elements are
// relocated into it (a slot transfer — cannot fail), and the storages are
// swapped. A failed allocation returns its error with the vector
// untouched: size, element values, and element order are exactly as
// before the call. Capacity never shrinks.
//
// Complexity: O(n) on growth, O(1) otherwise.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.data.Cap() {
		return nil
	}

	fresh, err := rawstore.New[T](n)
	if err != nil {
		return err
	}
	relocateRange(&fresh, &v.data, 0, 0, v.size)
	v.data.Swap(&fresh)
	fresh.Release() // old block; the relocated originals die with it

	return nil
}

// Resize sets the element count to n.
//
// Growing reserves capacity first, then default-constructs the newly
// exposed slots [size, n). If the constructor fails partway, every
// element it built in this call is destroyed and size is left unchanged;
// capacity gained by the reserve step is retained. Shrinking destroys
// slots [n, size). Size is updated last, after all construction and
// destruction succeeded. Panics if n is negative (programmer error).
//
// Complexity: O(|n - Len()|) plus relocation cost on growth.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic("vector: negative size")
	}
	if err := v.Reserve(n); err != nil {
		return err
	}

	if n > v.size {
		for i := v.size; i < n; i++ {
			val, err := v.newElement()
			if err != nil {
				destroyRange(&v.data, v.size, i)
				return constructErr(err)
			}
			*v.data.At(i) = val
		}
	} else {
		destroyRange(&v.data, n, v.size)
	}
	v.size = n

	return nil
}

// growStorage allocates the storage for one growth step: capacity
// max(1, 2*size), clamped to the representable slot budget for T.
// Returns ErrAllocation when the vector is already at that budget.
func (v *Vector[T]) growStorage() (rawstore.Storage[T], error) {
	limit := rawstore.MaxCapacity[T]()
	if v.size >= limit {
		return rawstore.Storage[T]{}, rawstore.ErrAllocation
	}

	newCap := 1
	if v.size > 0 {
		newCap = v.size * 2
		if newCap/2 != v.size || newCap > limit {
			newCap = limit
		}
	}

	return rawstore.New[T](newCap)
}
