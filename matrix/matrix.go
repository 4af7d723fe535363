// Copyright 2025 The ndview Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides dense matrix and vector helpers over strided
// views, including layout-specific consumers that alias memory directly
// and therefore assert a fixed physical order instead of converting.
package matrix

import (
	"fmt"

	"github.com/ndview-dev/ndview/view"
)

// NewColMajor creates a rows×cols column-major float32 matrix filled with
// sequential values 1..rows*cols in column order (the storage's native
// traversal: each column is filled top to bottom before the next).
func NewColMajor(rows, cols int) (*view.View[float32], error) {
	m, err := view.Create[float32](view.Shape{rows, cols}, view.ColMajor)
	if err != nil {
		return nil, err
	}

	count := float32(0)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			count++
			if err := m.Set(count, r, c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// NewRowMajor creates a rows×cols row-major float32 matrix filled with
// sequential values 1..rows*cols in row order.
func NewRowMajor(rows, cols int) (*view.View[float32], error) {
	m, err := view.Create[float32](view.Shape{rows, cols}, view.RowMajor)
	if err != nil {
		return nil, err
	}

	count := float32(0)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			count++
			if err := m.Set(count, r, c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// DescribeColMajor accepts only column-major matrices and returns a short
// description. It aliases no memory itself, but stands in for consumers
// that do and therefore reject the other layout rather than convert.
func DescribeColMajor(m *view.View[float32]) (string, error) {
	if err := m.RequireLayout(view.ColMajor); err != nil {
		return "", err
	}
	shape := m.Shape()
	return fmt.Sprintf("column-major matrix %dx%d", shape[0], shape[1]), nil
}

// DescribeRowMajor accepts only row-major matrices and returns a short
// description.
func DescribeRowMajor(m *view.View[float32]) (string, error) {
	if err := m.RequireLayout(view.RowMajor); err != nil {
		return "", err
	}
	shape := m.Shape()
	return fmt.Sprintf("row-major matrix %dx%d", shape[0], shape[1]), nil
}

// Describe accepts a matrix in either layout without copying and returns a
// short description. Consumers that index through the view's strides are
// layout-agnostic; only those that alias the storage directly need the
// layout-asserting variants above.
func Describe(m *view.View[float32]) (string, error) {
	shape := m.Shape()
	if len(shape) != 2 {
		return "", fmt.Errorf("%w: expected 2 indices, got rank %d", view.ErrIndexOutOfRange, len(shape))
	}
	return fmt.Sprintf("matrix %dx%d", shape[0], shape[1]), nil
}

// Modify sets element (0,0) of a column-major matrix to 99 in place.
// The write is visible through every alias of the matrix's storage.
func Modify(m *view.View[float32]) error {
	if err := m.RequireLayout(view.ColMajor); err != nil {
		return err
	}
	return m.Set(99, 0, 0)
}

// Sum returns the element-wise sum of two matrices as a fresh view with
// a's layout. Shapes and layouts must match exactly; mixing layouts would
// require a conversion copy, which this package never performs implicitly.
func Sum(a, b *view.View[float32]) (*view.View[float32], error) {
	if !a.Shape().Equal(b.Shape()) {
		return nil, fmt.Errorf("shape mismatch: %v vs %v", a.Shape(), b.Shape())
	}
	if err := b.RequireLayout(a.Layout()); err != nil {
		return nil, err
	}

	out, err := view.Create[float32](a.Shape(), a.Layout())
	if err != nil {
		return nil, err
	}

	// Same shape and layout means identical physical order.
	aData, bData, outData := a.Data(), b.Data(), out.Data()
	for i := range outData {
		outData[i] = aData[i] + bData[i]
	}
	return out, nil
}
