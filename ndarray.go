// Copyright 2025 The ndarray Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides the public API for strided N-dimensional arrays.
//
// An Array is a shape plus per-axis element strides over a flat buffer. It
// either owns its buffer or is a borrowed view into another array's (or the
// caller's) storage. Views produced by Transpose and SliceAxis share storage
// and may be non-contiguous; the blas subpackage adapts arrays to the flat
// descriptor convention a BLAS implementation consumes.
//
// Example:
//
//	a, err := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	t := a.Transpose() // 3x2 view, shares storage with a
package ndarray

import (
	internalnd "github.com/andrei-papou/ndarray/internal/ndarray"
)

// DType is a constraint for supported array element types: the four element
// types BLAS implementations operate on.
type DType = internalnd.DType

// Shape represents the dimensions of an array.
// Example: Shape{2, 3} represents a 2×3 matrix.
type Shape = internalnd.Shape

// Array is a strided N-dimensional view over a flat element buffer.
type Array[T DType] = internalnd.Array[T]

// Zeros creates an owned array of the given shape filled with zero values.
//
// Example:
//
//	y, err := ndarray.Zeros[float64](ndarray.Shape{3})
func Zeros[T DType](shape Shape) (*Array[T], error) {
	return internalnd.Zeros[T](shape)
}

// FromSlice creates an owned array of the given shape from a copy of data.
//
// Example:
//
//	a, err := ndarray.FromSlice([]float64{1, 2, 3, 4}, ndarray.Shape{2, 2})
func FromSlice[T DType](data []T, shape Shape) (*Array[T], error) {
	return internalnd.FromSlice(data, shape)
}

// AsStrided creates a borrowed view over data with explicit shape and
// strides. The view shares storage with data and cannot be reallocated.
//
// This is a low-level constructor; every addressable element index must fall
// within data.
func AsStrided[T DType](data []T, shape Shape, strides []int) (*Array[T], error) {
	return internalnd.AsStrided(data, shape, strides)
}
