package blas

import (
	"fmt"
	"math"

	"github.com/andrei-papou/ndarray/internal/ndarray"
)

// MaxDim is the largest dimension or stride magnitude representable in the
// int32 size fields of the BLAS interface.
const MaxDim = math.MaxInt32

// sizeCheck confirms every dimension and every stride magnitude fits MaxDim,
// so that the casts performed by the adapters are proven safe up front.
func sizeCheck(shape ndarray.Shape, strides []int) error {
	for i, dim := range shape {
		if dim > MaxDim {
			return fmt.Errorf("axis %d has length %d: %w", i, dim, ErrRangeExceeded)
		}
	}
	for i, stride := range strides {
		if stride > MaxDim || stride < -MaxDim {
			return fmt.Errorf("axis %d has stride %d: %w", i, stride, ErrRangeExceeded)
		}
	}
	return nil
}

// IsInnerContiguous reports whether the innermost axis is contiguous: its
// stride is 1, or it has length <= 1 so the stride is irrelevant. A rank-0
// view is vacuously contiguous.
//
// Only the innermost axis is examined. A transposed matrix that is contiguous
// along its outer axis fails this check and must be densified (or the caller
// should pass a transpose flag to the BLAS routine instead); transpose
// auto-detection is deliberately not attempted.
func IsInnerContiguous(shape ndarray.Shape, strides []int) bool {
	rank := len(shape)
	if rank == 0 {
		return true
	}
	return shape[rank-1] <= 1 || strides[rank-1] == 1
}

func contiguousCheck(shape ndarray.Shape, strides []int) error {
	if !IsInnerContiguous(shape, strides) {
		return fmt.Errorf("shape %v with strides %v: %w", shape, strides, ErrIncompatibleLayout)
	}
	return nil
}
