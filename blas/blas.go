// Copyright 2025 The ndarray Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package blas

import (
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/andrei-papou/ndarray"
	internalblas "github.com/andrei-papou/ndarray/internal/blas"
)

// MaxDim is the largest dimension or stride magnitude representable in the
// int32 size fields of the BLAS interface.
const MaxDim = internalblas.MaxDim

// Sentinel errors surfaced by the checked conversion entry points.
// Match with errors.Is.
var (
	ErrRangeExceeded      = internalblas.ErrRangeExceeded
	ErrIncompatibleLayout = internalblas.ErrIncompatibleLayout
)

// Vector is the descriptor contract a BLAS binding consumes for a rank-1
// view: base pointer, element count and increment between elements.
type Vector[T ndarray.DType] = internalblas.Vector[T]

// Matrix is the descriptor contract a BLAS binding consumes for a rank-2
// view: base pointer, dimensions and the leading dimension.
type Matrix[T ndarray.DType] = internalblas.Matrix[T]

// View is a read-only adapter over a validated array borrow.
// MutPtr panics: a View never grants write access.
type View[T ndarray.DType] = internalblas.View[T]

// ViewMut is a read-write adapter over a validated array borrow.
type ViewMut[T ndarray.DType] = internalblas.ViewMut[T]

// IsInnerContiguous reports whether the innermost axis of the given layout is
// contiguous: unit stride, or length <= 1. Only the innermost axis is
// examined; see the package documentation for the transpose caveat.
func IsInnerContiguous(shape ndarray.Shape, strides []int) bool {
	return internalblas.IsInnerContiguous(shape, strides)
}

// NewView validates a and wraps it as a read-only adapter. The array must
// already be in a BLAS-compatible layout: for rank > 1 its innermost axis
// must be contiguous. No elements are copied or moved.
//
// Errors with ErrRangeExceeded if any dimension or stride magnitude exceeds
// MaxDim, and with ErrIncompatibleLayout if the innermost axis is not
// contiguous.
func NewView[T ndarray.DType](a *ndarray.Array[T]) (*View[T], error) {
	return internalblas.NewView(a)
}

// MustView is like NewView but panics on error.
func MustView[T ndarray.DType](a *ndarray.Array[T]) *View[T] {
	return internalblas.MustView(a)
}

// NewViewMut validates a and wraps it as a read-write adapter. The same
// layout requirements as NewView apply; no elements are copied or moved.
func NewViewMut[T ndarray.DType](a *ndarray.Array[T]) (*ViewMut[T], error) {
	return internalblas.NewViewMut(a)
}

// MustViewMut is like NewViewMut but panics on error.
func MustViewMut[T ndarray.DType](a *ndarray.Array[T]) *ViewMut[T] {
	return internalblas.MustViewMut(a)
}

// Prepare makes a usable through the BLAS interface no matter its current
// layout, copying elements into dense row-major storage if needed. Rank 0
// and 1 views pass through unchanged; a rank-2 view is densified in place
// only when its innermost axis is not contiguous; higher ranks are always
// densified for the caller to reinterpret.
//
// The result is always a read-write adapter, because write access is
// required to perform the potential in-place storage replacement. Densifying
// replaces the array's backing storage and invalidates previously obtained
// pointers into it.
//
// Errors with ErrRangeExceeded if any dimension or stride magnitude exceeds
// MaxDim, and with ErrIncompatibleLayout if a densifying copy is needed but
// the array is a borrowed view.
func Prepare[T ndarray.DType](a *ndarray.Array[T]) (*ViewMut[T], error) {
	return internalblas.Prepare(a)
}

// MustPrepare is like Prepare but panics on error.
func MustPrepare[T ndarray.DType](a *ndarray.Array[T]) *ViewMut[T] {
	return internalblas.MustPrepare(a)
}

// Vector64 converts a read-only float64 vector adapter to a blas64.Vector.
// The Data slice aliases the adapter's storage; the routine receiving it
// must treat it as read-only.
func Vector64(v Vector[float64]) blas64.Vector {
	return internalblas.Vector64(v)
}

// Vector64Mut converts a mutable float64 vector adapter to a blas64.Vector.
// It panics if v is a read-only adapter.
func Vector64Mut(v Vector[float64]) blas64.Vector {
	return internalblas.Vector64Mut(v)
}

// General64 converts a read-only float64 matrix adapter to a blas64.General.
// The Data slice aliases the adapter's storage; the routine receiving it
// must treat it as read-only.
func General64(m Matrix[float64]) blas64.General {
	return internalblas.General64(m)
}

// General64Mut converts a mutable float64 matrix adapter to a blas64.General.
// It panics if m is a read-only adapter.
func General64Mut(m Matrix[float64]) blas64.General {
	return internalblas.General64Mut(m)
}

// Vector32 converts a read-only float32 vector adapter to a blas32.Vector.
func Vector32(v Vector[float32]) blas32.Vector {
	return internalblas.Vector32(v)
}

// Vector32Mut converts a mutable float32 vector adapter to a blas32.Vector.
// It panics if v is a read-only adapter.
func Vector32Mut(v Vector[float32]) blas32.Vector {
	return internalblas.Vector32Mut(v)
}

// General32 converts a read-only float32 matrix adapter to a blas32.General.
func General32(m Matrix[float32]) blas32.General {
	return internalblas.General32(m)
}

// General32Mut converts a mutable float32 matrix adapter to a blas32.General.
// It panics if m is a read-only adapter.
func General32Mut(m Matrix[float32]) blas32.General {
	return internalblas.General32Mut(m)
}
