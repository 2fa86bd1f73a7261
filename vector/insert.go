package vector

// PushBack appends val.
//
// With spare capacity the value lands directly in slot Len() — no
// relocation, amortized O(1). At capacity, the vector grows to
// max(1, 2*size) through a temporary storage: val is placed at the tail
// of the new storage first, existing elements are relocated ahead of it,
// and only then are the storages swapped — so a failed allocation leaves
// the vector completely unaffected.
//
// Complexity: amortized O(1); O(n) on a growth step.
func (v *Vector[T]) PushBack(val T) error {
	if v.size < v.data.Cap() {
		*v.data.At(v.size) = val
		v.size++

		return nil
	}

	fresh, err := v.growStorage()
	if err != nil {
		return err
	}
	*fresh.At(v.size) = val // tail first; live slots still untouched
	relocateRange(&fresh, &v.data, 0, 0, v.size)
	v.data.Swap(&fresh)
	fresh.Release()
	v.size++

	return nil
}

// EmplaceBack constructs a new element at the end via ctor and returns
// its index. Equivalent to Emplace(Len(), ctor).
func (v *Vector[T]) EmplaceBack(ctor Constructor[T]) (int, error) {
	return v.Emplace(v.size, ctor)
}

// PopBack destroys the last element and shrinks the size by one.
// No-op on an empty vector. Capacity is unchanged.
//
// Complexity: O(1)
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	destroyAt(&v.data, v.size-1)
	v.size--
}

// Insert places val at index i, shifting elements [i, Len()) one slot
// rightward. Equivalent to Emplace with a constructor that cannot fail.
// Panics if i is outside [0, Len()].
func (v *Vector[T]) Insert(i int, val T) (int, error) {
	return v.Emplace(i, func() (T, error) { return val, nil })
}

// Emplace constructs a new element via ctor and places it at index i;
// prior elements at [i, Len()) shift one slot rightward. On success the
// size grows by exactly one and the returned index is the slot where the
// new element lives. Panics if i is outside [0, Len()] or ctor is nil
// (programmer errors).
//
// Three paths:
//
//  1. Spare capacity, i == Len(): construct in place at the tail.
//  2. Spare capacity, middle: construct into a temporary, extend the live
//     range by moving the current last element into the tail slot, shift
//     [i, Len()-1) rightward by backward move-assignment, then move the
//     temporary into slot i. The constructor is the only fallible step
//     and runs before any slot is touched, so a failure leaves the
//     vector exactly as it was.
//  3. Capacity exhausted: allocate max(1, 2*size) storage, construct the
//     new element directly at its final offset i in the new storage, then
//     relocate the prefix [0,i) and suffix [i,Len()) of the old storage
//     around it and swap. Allocation or construction failure discards
//     only the new storage; the vector is unaffected.
//
// Complexity: O(Len() - i) with spare capacity; O(Len()) on growth.
func (v *Vector[T]) Emplace(i int, ctor Constructor[T]) (int, error) {
	if i < 0 || i > v.size {
		panic("vector: insert position out of range")
	}
	if ctor == nil {
		panic("vector: nil constructor")
	}

	if v.size < v.data.Cap() {
		val, err := ctor()
		if err != nil {
			return 0, constructErr(err)
		}
		if i == v.size {
			*v.data.At(v.size) = val
		} else {
			*v.data.At(v.size) = *v.data.At(v.size - 1) // extend live range by one
			for j := v.size - 1; j > i; j-- {
				*v.data.At(j) = *v.data.At(j - 1)
			}
			*v.data.At(i) = val
		}
	} else {
		fresh, err := v.growStorage()
		if err != nil {
			return 0, err
		}
		val, cErr := ctor()
		if cErr != nil {
			fresh.Release()
			return 0, constructErr(cErr)
		}
		*fresh.At(i) = val // final offset first, before any relocation
		relocateRange(&fresh, &v.data, 0, 0, i)
		relocateRange(&fresh, &v.data, i+1, i, v.size-i)
		v.data.Swap(&fresh)
		fresh.Release()
	}
	v.size++

	return i, nil
}

// Erase removes the element at index i, shifting elements [i+1, Len())
// one slot leftward by move-assignment and destroying the vacated tail
// slot. Returns i, which now addresses the element that followed the
// erased one (or equals the new Len() when the last element was erased).
// Cannot fail. Panics if i is outside [0, Len()).
//
// Complexity: O(Len() - i)
func (v *Vector[T]) Erase(i int) int {
	v.checkIndex(i)

	for j := i; j < v.size-1; j++ {
		*v.data.At(j) = *v.data.At(j + 1)
	}
	destroyAt(&v.data, v.size-1)
	v.size--

	return i
}
