// Copyright 2025 The ndview Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/ndview-dev/ndview/view"
)

// NewVector creates a 1-D float32 vector of length n filled with
// sequential values 1..n.
func NewVector(n int) (*view.View[float32], error) {
	v, err := view.Create[float32](view.Shape{n}, view.RowMajor)
	if err != nil {
		return nil, err
	}

	data := v.Data()
	for i := range data {
		data[i] = float32(i) + 1
	}
	return v, nil
}

// VectorModify sets element 0 of a vector to 99 in place.
func VectorModify(v *view.View[float32]) error {
	return v.Set(99, 0)
}

// DoubleInPlace doubles every element of a view through its storage. Works
// for any layout and ownership; on a Borrowed view the caller's memory is
// mutated directly.
func DoubleInPlace[T view.Scalar](v *view.View[T]) {
	data := v.Data()
	for i := range data {
		data[i] *= 2
	}
}

// SubInPlace subtracts b from a element-wise, writing the result into a's
// storage. Shapes and layouts must match. The subtraction runs on
// vectorized float64 block kernels.
func SubInPlace(a, b *view.View[float64]) error {
	if !a.Shape().Equal(b.Shape()) {
		return fmt.Errorf("shape mismatch: %v vs %v", a.Shape(), b.Shape())
	}
	if err := b.RequireLayout(a.Layout()); err != nil {
		return err
	}

	// a -= b as a = a + (-1 * b).
	neg := make([]float64, b.NumElements())
	vecmath.ScaleBlock(neg, b.Data(), -1)
	vecmath.AddBlockInPlace(a.Data(), neg)
	return nil
}
