// Package vector: element capability hooks and functional configuration.
// This file defines:
//   - Constructor / CloneFunc (fallible element lifecycle hooks),
//   - Option and the WithX constructors (validation panics on nil hooks),
//   - the ErrConstruct sentinel and its wrapping helper.
package vector

import (
	"errors"
	"fmt"
)

// ErrConstruct indicates an element lifecycle hook (default constructor
// or clone) failed. The hook's own error is wrapped alongside, so both
// errors.Is(err, ErrConstruct) and errors.Is(err, cause) hold.
var ErrConstruct = errors.New("vector: element construction failed")

// Constructor builds a new element value. Used for default construction
// (NewWithSize, Resize growth) and in-place emplacement (Emplace,
// EmplaceBack). A non-nil error aborts the operation with the documented
// guarantee of the caller.
type Constructor[T any] func() (T, error)

// CloneFunc duplicates an element value. Used on every copy path
// (Clone, CopyFrom). A non-nil error aborts the copy.
type CloneFunc[T any] func(T) (T, error)

// Option configures element semantics of a Vector before first use.
type Option[T any] func(*options[T])

// options holds the resolved hooks. Unset hooks mean the operation
// cannot fail: zero-value construction and plain-assignment copying.
type options[T any] struct {
	construct Constructor[T]
	clone     CloneFunc[T]
}

// WithDefault sets the fallible default constructor used by NewWithSize
// and Resize. Panics on a nil hook (programmer error).
func WithDefault[T any](fn Constructor[T]) Option[T] {
	if fn == nil {
		panic("vector: WithDefault requires a non-nil constructor")
	}

	return func(o *options[T]) { o.construct = fn }
}

// WithClone sets the fallible copy constructor used by Clone and
// CopyFrom. Panics on a nil hook (programmer error).
func WithClone[T any](fn CloneFunc[T]) Option[T] {
	if fn == nil {
		panic("vector: WithClone requires a non-nil clone func")
	}

	return func(o *options[T]) { o.clone = fn }
}

// constructErr wraps a hook failure under the ErrConstruct sentinel.
func constructErr(cause error) error {
	return fmt.Errorf("%w: %w", ErrConstruct, cause)
}
