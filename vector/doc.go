// Package vector implements a generic, growable, contiguous container —
// a dynamic array with explicit element lifecycle and strong failure
// guarantees, backed by the raw slot storage of package rawstore.
//
// A Vector[T] owns one rawstore.Storage plus a size: slots [0,size) hold
// live values, slots [size,cap) are dead (zeroed, so stale references
// never pin memory). The vector is the only layer that constructs or
// destroys elements in that storage; rawstore only allocates, indexes,
// swaps, and releases blocks.
//
// Core methods:
//
//	// Construction & assignment
//	New(opts...)                 — empty vector                       // O(1)
//	NewWithSize(n, opts...)      — n default-constructed elements     // O(n)
//	Clone()                      — deep copy, capacity == size        // O(n)
//	CopyFrom(src)                — copy assignment                    // O(n)
//	Move(src) / MoveFrom(src)    — move construction / assignment     // O(1)
//	Swap(other)                  — O(1), identity-checked
//
//	// Capacity & size
//	Len() / Cap()                                                     // O(1)
//	Reserve(n)                   — grow capacity, never shrinks       // O(n)
//	Resize(n)                    — grow with defaults or shrink       // O(n)
//
//	// Access & iteration
//	At(i) / Ptr(i)               — value / mutable pointer            // O(1)
//	All() / Refs()               — forward iteration, read / mutable
//
//	// Mutation
//	PushBack(v)                  — amortized O(1)
//	EmplaceBack(ctor)            — amortized O(1)
//	PopBack()                                                         // O(1)
//	Insert(i, v) / Emplace(i, ctor)                                   // O(n)
//	Erase(i)                                                          // O(n)
//
// Failure guarantees:
//
// Every mutating operation either fully succeeds or fails with the vector
// exactly as it was before the call. The two failure sources are
// allocation (rawstore.ErrAllocation, rawstore.ErrNegativeCapacity) and
// element construction (ErrConstruct, wrapping the hook's own error). The
// one deliberate exception: Resize while growing under a failing default
// constructor guarantees only that the elements it already built in that
// call are destroyed and size is unchanged — capacity may have grown. The
// in-place path of CopyFrom gives the basic guarantee (all slots stay
// live); its reallocating path is clone-and-swap and therefore strong.
//
// Fallible element semantics are wired in with functional options:
//
//	v := vector.New[Conn](
//	  vector.WithDefault(dialDefault),   // func() (Conn, error)
//	  vector.WithClone(dupConn),         // func(Conn) (Conn, error)
//	)
//
// Without hooks, T is constructed as its zero value and copied by plain
// assignment; neither can fail.
//
// Growth doubles capacity (max(1, 2*size)), so appending n elements one
// at a time performs O(log n) reallocations. Relocation into new storage
// is a slot transfer and cannot fail, which is what preserves the
// strong guarantee on every growth path: all fallible steps (allocation,
// construction of the incoming element) complete before the first live
// slot is touched.
//
// Iterator/pointer invalidation rules: any operation that reallocates
// (growth paths of Reserve, Resize, PushBack, EmplaceBack, Insert,
// Emplace, and the reallocating path of CopyFrom) invalidates all
// pointers obtained via Ptr/Refs; Insert/Erase additionally overwrite
// slots at and after the position. Indices remain valid as documented by
// each operation.
//
// Not provided: concurrent use (external synchronization required),
// custom allocators, small-buffer optimization.
//
// Contract violations — indices outside the documented ranges, negative
// sizes, nil constructors — panic; they are programmer errors, not
// recoverable conditions.
package vector
