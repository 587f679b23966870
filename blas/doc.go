// Copyright 2025 The ndarray Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package blas adapts strided arrays to the flat base-pointer, dimension and
// stride descriptor convention consumed by BLAS implementations, with a
// zero-copy bridge to gonum's blas32 and blas64 packages.
//
// # Overview
//
// BLAS supports strided vectors and matrices, but a matrix must be
// contiguous in its innermost dimension and every size field must fit a
// signed 32-bit integer. This package proves both properties before handing
// out a raw pointer:
//
//   - NewView / NewViewMut wrap an array that is already in a compatible
//     layout, without copying;
//   - Prepare copies elements into dense row-major storage first if needed,
//     so the result is always usable.
//
// Blocks sliced out of a larger matrix keep their leading dimension and are
// used without copying, as long as the inner axis stays contiguous.
//
// # Basic Usage
//
//	a, _ := ndarray.FromSlice([]float64{
//	    1, 2, 3,
//	    4, 5, 6,
//	    7, 8, 9,
//	}, ndarray.Shape{3, 3})
//	x, _ := ndarray.FromSlice([]float64{1, 0, 1}, ndarray.Shape{3})
//	y, _ := ndarray.Zeros[float64](ndarray.Shape{3})
//
//	// y = 1*a*x + 1*y
//	blas64.Gemv(gblas.NoTrans, 1,
//	    blas.General64(blas.MustView(a)),
//	    blas.Vector64(blas.MustView(x)),
//	    1, blas.Vector64Mut(blas.MustViewMut(y)))
//
// # Aliasing
//
// Adapters borrow the array's storage; the descriptor slices handed to a
// BLAS routine alias it directly. While a routine holds a descriptor
// obtained through a mutable adapter, no other access to the same storage
// may occur. Prepare may replace the array's backing storage, which
// invalidates pointers obtained from earlier adapters; construct adapters
// after any Prepare call, never before.
//
// # Transposed matrices
//
// Only the innermost axis is checked for contiguity. A transposed view is
// therefore rejected (or densified by Prepare) even though its outer axis is
// contiguous; pass a transpose flag to the BLAS routine instead of
// transposing the array when the copy matters.
package blas
