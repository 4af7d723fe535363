package view

import (
	"fmt"
	"math"
)

// Shape represents the dimensions of a view.
type Shape []int

// NumElements returns the total number of elements in the view.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides calculates element strides for the shape under the given layout.
// Row-major: the last dimension varies fastest, stride[i] = product of all
// dimensions after i. Column-major: the first dimension varies fastest,
// stride[i] = product of all dimensions before i.
func (s Shape) Strides(layout Layout) []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	switch layout {
	case RowMajor:
		strides[len(s)-1] = 1
		for i := len(s) - 2; i >= 0; i-- {
			strides[i] = strides[i+1] * s[i+1]
		}
	case ColMajor:
		strides[0] = 1
		for i := 1; i < len(s); i++ {
			strides[i] = strides[i-1] * s[i-1]
		}
	default:
		panic("unknown layout")
	}
	return strides
}

// byteSize computes NumElements * elemSize, reporting overflow.
func (s Shape) byteSize(elemSize int) (int, error) {
	n := 1
	for _, dim := range s {
		if dim != 0 && n > math.MaxInt/dim {
			return 0, fmt.Errorf("%w: shape %v element count overflows", ErrAllocation, s)
		}
		n *= dim
	}
	if n > math.MaxInt/elemSize {
		return 0, fmt.Errorf("%w: shape %v with %d-byte elements overflows", ErrAllocation, s, elemSize)
	}
	return n * elemSize, nil
}
