package blas

import (
	"fmt"

	"github.com/andrei-papou/ndarray/internal/ndarray"
)

// NewView validates a and wraps it as a read-only adapter. The array must
// already be in a BLAS-compatible layout: for rank > 1 its innermost axis
// must be contiguous. No elements are copied or moved.
func NewView[T ndarray.DType](a *ndarray.Array[T]) (*View[T], error) {
	if a.Rank() > 1 {
		if err := contiguousCheck(a.Shape(), a.Strides()); err != nil {
			return nil, err
		}
	}
	if err := sizeCheck(a.Shape(), a.Strides()); err != nil {
		return nil, err
	}
	return &View[T]{arr: a}, nil
}

// MustView is like NewView but panics on error.
func MustView[T ndarray.DType](a *ndarray.Array[T]) *View[T] {
	v, err := NewView(a)
	if err != nil {
		panic(err)
	}
	return v
}

// NewViewMut validates a and wraps it as a read-write adapter. The same
// layout requirements as NewView apply; no elements are copied or moved.
func NewViewMut[T ndarray.DType](a *ndarray.Array[T]) (*ViewMut[T], error) {
	if a.Rank() > 1 {
		if err := contiguousCheck(a.Shape(), a.Strides()); err != nil {
			return nil, err
		}
	}
	if err := sizeCheck(a.Shape(), a.Strides()); err != nil {
		return nil, err
	}
	return &ViewMut[T]{arr: a}, nil
}

// MustViewMut is like NewViewMut but panics on error.
func MustViewMut[T ndarray.DType](a *ndarray.Array[T]) *ViewMut[T] {
	v, err := NewViewMut(a)
	if err != nil {
		panic(err)
	}
	return v
}

// Prepare makes a usable through the BLAS interface no matter its current
// layout, copying elements if needed to produce a contiguous view:
//
//   - rank 0 and 1 views need no layout work;
//   - a rank-2 view is densified in place only when its innermost axis is
//     not contiguous;
//   - higher ranks are always densified, since they are not directly
//     representable as a vector or matrix and the caller will reinterpret
//     the dense buffer.
//
// The result is always a read-write adapter, because write access to the
// array is required to perform the potential in-place storage replacement.
// Densifying a borrowed view is not possible and fails with
// ErrIncompatibleLayout.
func Prepare[T ndarray.DType](a *ndarray.Array[T]) (*ViewMut[T], error) {
	if err := sizeCheck(a.Shape(), a.Strides()); err != nil {
		return nil, err
	}
	switch a.Rank() {
	case 0, 1:
	case 2:
		if !IsInnerContiguous(a.Shape(), a.Strides()) {
			if err := ensureStandardLayout(a); err != nil {
				return nil, fmt.Errorf("prepare: %w", err)
			}
		}
	default:
		if err := ensureStandardLayout(a); err != nil {
			return nil, fmt.Errorf("prepare: %w", err)
		}
	}
	return &ViewMut[T]{arr: a}, nil
}

// MustPrepare is like Prepare but panics on error.
func MustPrepare[T ndarray.DType](a *ndarray.Array[T]) *ViewMut[T] {
	v, err := Prepare(a)
	if err != nil {
		panic(err)
	}
	return v
}
