package vector

import "github.com/katalvlaran/dynarr/rawstore"

// Clone returns a deep copy of the vector with capacity == Len(),
// duplicating each element through the clone hook (plain assignment when
// none is configured). A failing hook releases the partial copy and
// returns the error; the source is never touched.
//
// Complexity: O(Len())
func (v *Vector[T]) Clone() (*Vector[T], error) {
	fresh, err := rawstore.New[T](v.size)
	if err != nil {
		return nil, err
	}
	for i := 0; i < v.size; i++ {
		val, cErr := v.cloneElement(*v.data.At(i))
		if cErr != nil {
			fresh.Release() // partially built copy dies with the block
			return nil, constructErr(cErr)
		}
		*fresh.At(i) = val
	}

	return &Vector[T]{data: fresh, size: v.size, opts: v.opts}, nil
}

// CopyFrom is the copy-assignment analog: it makes the receiver
// element-equal to src, duplicating elements through src's clone hook.
// The receiver's own hooks are preserved. Self-assignment is a checked
// no-op.
//
// When src fits within the current capacity the copy happens in place —
// copy-assign over the overlapping prefix, then construct or destroy the
// remainder — and no reallocation occurs. A hook failure on that path
// gives the basic guarantee: every slot in [0, Len()) stays live and the
// size is unchanged, but prefix elements already overwritten keep their
// new values.
//
// When src does not fit, the copy is built clone-and-swap: a full deep
// copy is constructed first and only then swapped in, so a failure
// leaves the receiver completely untouched.
//
// Complexity: O(Len() + src.Len())
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	if src.size <= v.data.Cap() {
		return v.copyInPlace(src)
	}

	tmp, err := src.Clone()
	if err != nil {
		return err
	}
	v.data.Swap(&tmp.data)
	v.size = src.size
	tmp.data.Release() // former contents die with the discarded block

	return nil
}

// copyInPlace overwrites the receiver with src's elements without
// reallocating. Requires src.size <= v.data.Cap().
func (v *Vector[T]) copyInPlace(src *Vector[T]) error {
	overlap := min(v.size, src.size)
	for i := 0; i < overlap; i++ {
		val, err := src.cloneElement(*src.data.At(i))
		if err != nil {
			return constructErr(err) // prefix [0,i) already overwritten; all slots live
		}
		*v.data.At(i) = val
	}

	if src.size > v.size {
		for i := v.size; i < src.size; i++ {
			val, err := src.cloneElement(*src.data.At(i))
			if err != nil {
				destroyRange(&v.data, v.size, i)
				return constructErr(err)
			}
			*v.data.At(i) = val
		}
	} else {
		destroyRange(&v.data, src.size, v.size)
	}
	v.size = src.size

	return nil
}
