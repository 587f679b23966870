package blas

import (
	"fmt"
	"unsafe"

	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/andrei-papou/ndarray/internal/ndarray"
)

// Zero-copy bridge to gonum's blas32/blas64 descriptor structs. The Data
// slices alias the adapter's storage; they are rebuilt from the raw pointer
// over exactly the extent the descriptor spans.
//
// The read-only conversions (Vector64, General64, ...) obtain the pointer via
// Ptr and must only be passed to routine arguments the routine reads. The Mut
// conversions go through MutPtr, so handing a read-only adapter to a
// destination argument fails loudly instead of silently aliasing.

// vectorSlice rebuilds the element slice a vector descriptor spans.
func vectorSlice[T ndarray.DType](v Vector[T], p *T) []T {
	n := int(v.Len())
	if n == 0 || p == nil {
		return nil
	}
	inc := int(v.Inc())
	if inc < 1 {
		panic(fmt.Sprintf("blas: vector increment %d not supported by the gonum bridge", inc))
	}
	return unsafe.Slice(p, (n-1)*inc+1)
}

// generalSlice rebuilds the element slice a matrix descriptor spans.
func generalSlice[T ndarray.DType](m Matrix[T], p *T) []T {
	rows, cols := int(m.Rows()), int(m.Cols())
	if rows == 0 || cols == 0 || p == nil {
		return nil
	}
	ld := int(m.LeadDim())
	if ld < cols {
		panic(fmt.Sprintf("blas: leading dimension %d smaller than column count %d", ld, cols))
	}
	return unsafe.Slice(p, (rows-1)*ld+cols)
}

// Vector64 converts a read-only float64 vector adapter to a blas64.Vector.
func Vector64(v Vector[float64]) blas64.Vector {
	return blas64.Vector{N: int(v.Len()), Inc: int(v.Inc()), Data: vectorSlice(v, v.Ptr())}
}

// Vector64Mut converts a mutable float64 vector adapter to a blas64.Vector.
// It panics if v is a read-only adapter.
func Vector64Mut(v Vector[float64]) blas64.Vector {
	return blas64.Vector{N: int(v.Len()), Inc: int(v.Inc()), Data: vectorSlice(v, v.MutPtr())}
}

// General64 converts a read-only float64 matrix adapter to a blas64.General.
func General64(m Matrix[float64]) blas64.General {
	return blas64.General{
		Rows:   int(m.Rows()),
		Cols:   int(m.Cols()),
		Stride: int(m.LeadDim()),
		Data:   generalSlice(m, m.Ptr()),
	}
}

// General64Mut converts a mutable float64 matrix adapter to a blas64.General.
// It panics if m is a read-only adapter.
func General64Mut(m Matrix[float64]) blas64.General {
	return blas64.General{
		Rows:   int(m.Rows()),
		Cols:   int(m.Cols()),
		Stride: int(m.LeadDim()),
		Data:   generalSlice(m, m.MutPtr()),
	}
}

// Vector32 converts a read-only float32 vector adapter to a blas32.Vector.
func Vector32(v Vector[float32]) blas32.Vector {
	return blas32.Vector{N: int(v.Len()), Inc: int(v.Inc()), Data: vectorSlice(v, v.Ptr())}
}

// Vector32Mut converts a mutable float32 vector adapter to a blas32.Vector.
// It panics if v is a read-only adapter.
func Vector32Mut(v Vector[float32]) blas32.Vector {
	return blas32.Vector{N: int(v.Len()), Inc: int(v.Inc()), Data: vectorSlice(v, v.MutPtr())}
}

// General32 converts a read-only float32 matrix adapter to a blas32.General.
func General32(m Matrix[float32]) blas32.General {
	return blas32.General{
		Rows:   int(m.Rows()),
		Cols:   int(m.Cols()),
		Stride: int(m.LeadDim()),
		Data:   generalSlice(m, m.Ptr()),
	}
}

// General32Mut converts a mutable float32 matrix adapter to a blas32.General.
// It panics if m is a read-only adapter.
func General32Mut(m Matrix[float32]) blas32.General {
	return blas32.General{
		Rows:   int(m.Rows()),
		Cols:   int(m.Cols()),
		Stride: int(m.LeadDim()),
		Data:   generalSlice(m, m.MutPtr()),
	}
}
