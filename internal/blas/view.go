package blas

import (
	"fmt"

	"github.com/andrei-papou/ndarray/internal/ndarray"
)

// Vector is the descriptor contract a BLAS binding consumes for a rank-1
// view: base pointer, element count and increment between elements.
type Vector[T ndarray.DType] interface {
	Len() int32
	Inc() int32
	Ptr() *T
	MutPtr() *T
}

// Matrix is the descriptor contract a BLAS binding consumes for a rank-2
// view: base pointer, dimensions and the leading dimension (stride between
// consecutive rows).
type Matrix[T ndarray.DType] interface {
	Rows() int32
	Cols() int32
	LeadDim() int32
	Ptr() *T
	MutPtr() *T
}

// View is a read-only adapter over a validated array borrow. Its descriptor
// fields are derived from the wrapped array on every call.
//
// MutPtr panics: a View never grants write access.
type View[T ndarray.DType] struct {
	arr *ndarray.Array[T]
}

// ViewMut is a read-write adapter over a validated array borrow. While the
// raw pointer is in foreign hands the caller must ensure no other access to
// the same storage.
type ViewMut[T ndarray.DType] struct {
	arr *ndarray.Array[T]
}

var (
	_ Vector[float64] = (*View[float64])(nil)
	_ Matrix[float64] = (*View[float64])(nil)
	_ Vector[float64] = (*ViewMut[float64])(nil)
	_ Matrix[float64] = (*ViewMut[float64])(nil)
)

func requireRank[T ndarray.DType](a *ndarray.Array[T], rank int, accessor string) {
	if a.Rank() != rank {
		panic(fmt.Sprintf("blas: %s called on rank-%d view", accessor, a.Rank()))
	}
}

func vectorLen[T ndarray.DType](a *ndarray.Array[T]) int32 {
	requireRank(a, 1, "Len")
	return int32(a.Shape()[0])
}

func vectorInc[T ndarray.DType](a *ndarray.Array[T]) int32 {
	requireRank(a, 1, "Inc")
	return int32(a.Strides()[0])
}

func matrixRows[T ndarray.DType](a *ndarray.Array[T]) int32 {
	requireRank(a, 2, "Rows")
	return int32(a.Shape()[0])
}

func matrixCols[T ndarray.DType](a *ndarray.Array[T]) int32 {
	requireRank(a, 2, "Cols")
	return int32(a.Shape()[1])
}

// The leading dimension is the stride between consecutive rows. The inner
// axis must be unit-stride (or degenerate) for the single-stride traversal
// to be valid.
func matrixLeadDim[T ndarray.DType](a *ndarray.Array[T]) int32 {
	requireRank(a, 2, "LeadDim")
	if a.Shape()[1] > 1 && a.Strides()[1] != 1 {
		panic(fmt.Sprintf("blas: LeadDim on non-contiguous inner axis (stride %d)", a.Strides()[1]))
	}
	return int32(a.Strides()[0])
}

func basePtr[T ndarray.DType](a *ndarray.Array[T]) *T {
	base := a.Base()
	if a.NumElements() == 0 || len(base) == 0 {
		return nil
	}
	return &base[0]
}

// Len returns the element count of a rank-1 view.
func (v *View[T]) Len() int32 { return vectorLen(v.arr) }

// Inc returns the element increment of a rank-1 view.
func (v *View[T]) Inc() int32 { return vectorInc(v.arr) }

// Rows returns the row count of a rank-2 view.
func (v *View[T]) Rows() int32 { return matrixRows(v.arr) }

// Cols returns the column count of a rank-2 view.
func (v *View[T]) Cols() int32 { return matrixCols(v.arr) }

// LeadDim returns the stride between consecutive rows of a rank-2 view.
func (v *View[T]) LeadDim() int32 { return matrixLeadDim(v.arr) }

// Ptr returns the read-only base pointer, or nil for an empty view.
func (v *View[T]) Ptr() *T { return basePtr(v.arr) }

// MutPtr always panics: the wrapped borrow is read-only, and handing a
// writable pointer to foreign code expecting write access must fail loudly
// rather than degrade to read-only behavior.
func (v *View[T]) MutPtr() *T {
	panic("blas: MutPtr called on read-only View")
}

// Len returns the element count of a rank-1 view.
func (v *ViewMut[T]) Len() int32 { return vectorLen(v.arr) }

// Inc returns the element increment of a rank-1 view.
func (v *ViewMut[T]) Inc() int32 { return vectorInc(v.arr) }

// Rows returns the row count of a rank-2 view.
func (v *ViewMut[T]) Rows() int32 { return matrixRows(v.arr) }

// Cols returns the column count of a rank-2 view.
func (v *ViewMut[T]) Cols() int32 { return matrixCols(v.arr) }

// LeadDim returns the stride between consecutive rows of a rank-2 view.
func (v *ViewMut[T]) LeadDim() int32 { return matrixLeadDim(v.arr) }

// Ptr returns the read-only base pointer, or nil for an empty view.
func (v *ViewMut[T]) Ptr() *T { return basePtr(v.arr) }

// MutPtr returns the writable base pointer, or nil for an empty view.
func (v *ViewMut[T]) MutPtr() *T { return basePtr(v.arr) }
