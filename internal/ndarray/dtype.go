// Package ndarray provides the core strided N-dimensional array type.
package ndarray

// DType is a constraint for supported array element types.
// The set mirrors the element types BLAS implementations operate on.
type DType interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}
