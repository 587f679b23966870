package blas

import (
	"fmt"

	"github.com/andrei-papou/ndarray/internal/ndarray"
)

// ensureStandardLayout rewrites a into dense row-major storage: all elements
// are copied out in logical order and installed as the array's new backing
// buffer with canonical strides. A no-op when the array is already in
// standard layout, so repeated calls never copy.
//
// Only owned arrays can be rewritten; a borrowed view has no storage of its
// own to replace. The replacement invalidates any previously obtained raw
// pointers into the old storage, so it must complete before any adapter is
// constructed from the result.
func ensureStandardLayout[T ndarray.DType](a *ndarray.Array[T]) error {
	if a.IsStandardLayout() {
		return nil
	}
	if !a.Owned() {
		return fmt.Errorf("cannot densify a borrowed view: %w", ErrIncompatibleLayout)
	}
	if err := a.SetStorage(a.Flatten(), a.Shape()); err != nil {
		return fmt.Errorf("densify: %w", err)
	}
	return nil
}
