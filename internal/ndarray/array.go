package ndarray

import "fmt"

// Array is a strided N-dimensional view over a flat element buffer.
//
// An Array either owns its buffer (constructed by Zeros, FromSlice or Clone)
// or borrows storage belonging to another Array or to the caller (views
// produced by Transpose, SliceAxis and AsStrided). Only owned arrays may have
// their storage replaced in place.
type Array[T DType] struct {
	data    []T   // Backing buffer, shared between views
	shape   Shape // Array dimensions
	strides []int // Element strides, possibly zero or negative
	offset  int   // Index of the first element within data
	owned   bool  // Whether storage may be replaced in place
}

// Zeros creates an owned array of the given shape filled with zero values.
func Zeros[T DType](shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Array[T]{
		data:    make([]T, shape.NumElements()),
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
		owned:   true,
	}, nil
}

// FromSlice creates an owned array of the given shape from a copy of data.
func FromSlice[T DType](data []T, shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	buf := make([]T, len(data))
	copy(buf, data)
	return &Array[T]{
		data:    buf,
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
		owned:   true,
	}, nil
}

// AsStrided creates a borrowed view over data with explicit shape and strides.
// The view shares storage with data; it is not owned and cannot be normalized.
//
// Every addressable element index must fall within data. Degenerate axes
// (length 0 or 1) place no constraint on their stride, so views with strides
// far larger than the buffer are constructible as long as no element is
// actually reachable through them.
func AsStrided[T DType](data []T, shape Shape, strides []int) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(strides) != len(shape) {
		return nil, fmt.Errorf("strides length %d does not match shape rank %d", len(strides), len(shape))
	}
	if shape.NumElements() > 0 {
		lo, hi := 0, 0
		for i, dim := range shape {
			span := (dim - 1) * strides[i]
			if span >= 0 {
				hi += span
			} else {
				lo += span
			}
		}
		if lo < 0 || hi >= len(data) {
			return nil, fmt.Errorf("shape %v with strides %v addresses [%d, %d], outside buffer of length %d",
				shape, strides, lo, hi, len(data))
		}
	}
	return &Array[T]{
		data:    data,
		shape:   shape.Clone(),
		strides: append([]int(nil), strides...),
	}, nil
}

// Shape returns the array's shape.
func (a *Array[T]) Shape() Shape {
	return a.shape
}

// Strides returns the array's element strides.
func (a *Array[T]) Strides() []int {
	return a.strides
}

// Rank returns the number of dimensions.
func (a *Array[T]) Rank() int {
	return len(a.shape)
}

// NumElements returns the total number of elements.
func (a *Array[T]) NumElements() int {
	return a.shape.NumElements()
}

// Owned reports whether the array owns its backing storage.
func (a *Array[T]) Owned() bool {
	return a.owned
}

// IsStandardLayout reports whether the array's strides are the canonical
// dense row-major strides for its shape.
func (a *Array[T]) IsStandardLayout() bool {
	return a.shape.IsStandardStrides(a.strides)
}

// Base returns the raw storage slice starting at the array's first element.
// WARNING: Direct access to underlying memory. Use with caution.
func (a *Array[T]) Base() []T {
	return a.data[a.offset:]
}

func (a *Array[T]) index(idx []int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("ndarray: %d indices for rank-%d array", len(idx), len(a.shape)))
	}
	pos := a.offset
	for i, j := range idx {
		if j < 0 || j >= a.shape[i] {
			panic(fmt.Sprintf("ndarray: index %d out of range for axis %d with length %d", j, i, a.shape[i]))
		}
		pos += j * a.strides[i]
	}
	return pos
}

// At returns the element at the given logical index.
// It panics if the index is out of bounds.
func (a *Array[T]) At(idx ...int) T {
	return a.data[a.index(idx)]
}

// SetAt stores v at the given logical index.
// It panics if the index is out of bounds.
func (a *Array[T]) SetAt(v T, idx ...int) {
	a.data[a.index(idx)] = v
}

// Transpose returns a borrowed view with the axis order reversed.
// The view shares storage with a; no elements are moved.
func (a *Array[T]) Transpose() *Array[T] {
	rank := len(a.shape)
	shape := make(Shape, rank)
	strides := make([]int, rank)
	for i := 0; i < rank; i++ {
		shape[i] = a.shape[rank-1-i]
		strides[i] = a.strides[rank-1-i]
	}
	return &Array[T]{
		data:    a.data,
		shape:   shape,
		strides: strides,
		offset:  a.offset,
	}
}

// SliceAxis returns a borrowed view selecting [start, stop) with the given
// step along one axis. The view shares storage with a.
func (a *Array[T]) SliceAxis(axis, start, stop, step int) (*Array[T], error) {
	if axis < 0 || axis >= len(a.shape) {
		return nil, fmt.Errorf("axis %d out of range for rank-%d array", axis, len(a.shape))
	}
	if step < 1 {
		return nil, fmt.Errorf("step must be >= 1, got %d", step)
	}
	if start < 0 || stop < start || stop > a.shape[axis] {
		return nil, fmt.Errorf("slice [%d, %d) out of range for axis %d with length %d",
			start, stop, axis, a.shape[axis])
	}
	shape := a.shape.Clone()
	strides := append([]int(nil), a.strides...)
	shape[axis] = (stop - start + step - 1) / step
	strides[axis] *= step
	return &Array[T]{
		data:    a.data,
		shape:   shape,
		strides: strides,
		offset:  a.offset + start*a.strides[axis],
	}, nil
}

// Clone returns an owned deep copy of the array. Shape and strides are
// preserved, so cloning a non-contiguous view yields an owned array with the
// same layout over private storage.
func (a *Array[T]) Clone() *Array[T] {
	buf := make([]T, len(a.data))
	copy(buf, a.data)
	return &Array[T]{
		data:    buf,
		shape:   a.shape.Clone(),
		strides: append([]int(nil), a.strides...),
		offset:  a.offset,
		owned:   true,
	}
}

// Flatten copies all elements out in logical row-major order into a fresh
// slice, regardless of the array's memory layout.
func (a *Array[T]) Flatten() []T {
	out := make([]T, a.NumElements())
	if len(out) == 0 {
		return out
	}
	rank := len(a.shape)
	if rank == 0 {
		out[0] = a.data[a.offset]
		return out
	}
	idx := make([]int, rank)
	for i := range out {
		pos := a.offset
		for d, j := range idx {
			pos += j * a.strides[d]
		}
		out[i] = a.data[pos]
		// Odometer increment, innermost axis fastest
		for d := rank - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < a.shape[d] {
				break
			}
			idx[d] = 0
		}
	}
	return out
}

// SetStorage replaces the array's backing storage in place. The new buffer
// becomes the array's storage with canonical row-major strides for shape.
// Any slice previously obtained through Base is invalidated.
//
// Only owned arrays may replace their storage; borrowed views cannot be
// reallocated.
func (a *Array[T]) SetStorage(data []T, shape Shape) error {
	if !a.owned {
		return fmt.Errorf("cannot replace storage of a borrowed view")
	}
	if err := shape.Validate(); err != nil {
		return fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	a.data = data
	a.shape = shape.Clone()
	a.strides = shape.ComputeStrides()
	a.offset = 0
	return nil
}
