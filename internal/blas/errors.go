// Package blas adapts strided arrays to the flat descriptor convention
// consumed by BLAS implementations.
package blas

import "errors"

// Sentinel errors surfaced by the checked conversion entry points.
// Match with errors.Is; returned errors may carry additional context.
var (
	// ErrRangeExceeded reports a dimension or stride whose magnitude does not
	// fit the int32 size fields of the BLAS interface.
	ErrRangeExceeded = errors.New("blas: dimension or stride exceeds int32 range")

	// ErrIncompatibleLayout reports an innermost axis that is not contiguous
	// when no densifying copy was requested or possible.
	ErrIncompatibleLayout = errors.New("blas: innermost axis is not contiguous")
)
