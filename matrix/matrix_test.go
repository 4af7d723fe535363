// Copyright 2025 The ndview Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndview-dev/ndview/view"
)

// TestNewColMajor_SequentialValues verifies the column-order fill: values
// count down each column before moving to the next.
func TestNewColMajor_SequentialValues(t *testing.T) {
	m, err := NewColMajor(3, 4)
	require.NoError(t, err)

	assert.Equal(t, view.ColMajor, m.Layout())
	require.True(t, m.Shape().Equal(view.Shape{3, 4}))

	count := float32(0)
	for c := 0; c < 4; c++ {
		for r := 0; r < 3; r++ {
			count++
			got, err := m.At(r, c)
			require.NoError(t, err)
			assert.Equal(t, count, got, "element (%d,%d)", r, c)
		}
	}

	// Column-major physical order of a column-order fill is sequential.
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, m.Data())
}

// TestNewRowMajor_SequentialValues verifies the row-order fill.
func TestNewRowMajor_SequentialValues(t *testing.T) {
	m, err := NewRowMajor(3, 4)
	require.NoError(t, err)

	assert.Equal(t, view.RowMajor, m.Layout())

	count := float32(0)
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			count++
			got, err := m.At(r, c)
			require.NoError(t, err)
			assert.Equal(t, count, got, "element (%d,%d)", r, c)
		}
	}

	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, m.Data())
}

func TestDescribe_LayoutSpecific(t *testing.T) {
	col, err := NewColMajor(3, 4)
	require.NoError(t, err)
	row, err := NewRowMajor(3, 4)
	require.NoError(t, err)

	desc, err := DescribeColMajor(col)
	require.NoError(t, err)
	assert.Equal(t, "column-major matrix 3x4", desc)

	desc, err = DescribeRowMajor(row)
	require.NoError(t, err)
	assert.Equal(t, "row-major matrix 3x4", desc)

	// Wrong layout is rejected, never converted.
	_, err = DescribeColMajor(row)
	assert.ErrorIs(t, err, view.ErrLayoutMismatch)

	_, err = DescribeRowMajor(col)
	assert.ErrorIs(t, err, view.ErrLayoutMismatch)
}

func TestDescribe_AnyLayout(t *testing.T) {
	col, err := NewColMajor(3, 4)
	require.NoError(t, err)
	row, err := NewRowMajor(3, 4)
	require.NoError(t, err)

	desc, err := Describe(col)
	require.NoError(t, err)
	assert.Equal(t, "matrix 3x4", desc)

	desc, err = Describe(row)
	require.NoError(t, err)
	assert.Equal(t, "matrix 3x4", desc)

	vec, err := NewVector(5)
	require.NoError(t, err)
	_, err = Describe(vec)
	assert.ErrorIs(t, err, view.ErrIndexOutOfRange)
}

func TestDescribe_WrappedCallerMemory(t *testing.T) {
	// Logical matrix [1 2 3; 4 5 6] in each physical order.
	colData := []float32{1, 4, 2, 5, 3, 6}
	rowData := []float32{1, 2, 3, 4, 5, 6}

	col, err := view.Wrap(colData, view.Shape{2, 3}, view.ColMajor)
	require.NoError(t, err)
	row, err := view.Wrap(rowData, view.Shape{2, 3}, view.RowMajor)
	require.NoError(t, err)

	desc, err := DescribeColMajor(col)
	require.NoError(t, err)
	assert.Equal(t, "column-major matrix 2x3", desc)

	desc, err = DescribeRowMajor(row)
	require.NoError(t, err)
	assert.Equal(t, "row-major matrix 2x3", desc)

	// Same logical element through both layouts.
	a, _ := col.At(1, 1)
	b, _ := row.At(1, 1)
	assert.Equal(t, float32(5), a)
	assert.Equal(t, float32(5), b)
}

func TestModify(t *testing.T) {
	data := []float32{1, 4, 2, 5, 3, 6} // column-major [1 2 3; 4 5 6]
	m, err := view.Wrap(data, view.Shape{2, 3}, view.ColMajor)
	require.NoError(t, err)

	require.NoError(t, Modify(m))

	got, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(99), got)
	assert.Equal(t, float32(99), data[0], "write must land in caller memory")

	row, err := NewRowMajor(2, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, Modify(row), view.ErrLayoutMismatch)
}

func TestSum(t *testing.T) {
	a, err := NewColMajor(2, 3)
	require.NoError(t, err)
	b, err := NewColMajor(2, 3)
	require.NoError(t, err)

	out, err := Sum(a, b)
	require.NoError(t, err)

	assert.Equal(t, view.ColMajor, out.Layout())
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			av, _ := a.At(r, c)
			got, _ := out.At(r, c)
			assert.Equal(t, av*2, got, "element (%d,%d)", r, c)
		}
	}
}

func TestSum_MismatchRejected(t *testing.T) {
	col, err := NewColMajor(2, 3)
	require.NoError(t, err)
	row, err := NewRowMajor(2, 3)
	require.NoError(t, err)

	_, err = Sum(col, row)
	assert.ErrorIs(t, err, view.ErrLayoutMismatch)

	small, err := NewColMajor(2, 2)
	require.NoError(t, err)
	_, err = Sum(col, small)
	assert.Error(t, err)
}

func TestMatrix4View(t *testing.T) {
	var m4 Matrix4

	v, err := m4.View()
	require.NoError(t, err)

	assert.Equal(t, view.Borrowed, v.Ownership())
	require.True(t, v.Shape().Equal(view.Shape{4, 4}))

	// Mutation through the view is visible in the struct.
	require.NoError(t, v.Set(1.0, 0, 0))
	assert.Equal(t, float32(1.0), m4.At(0, 0))

	// Two views over the same Matrix4 alias each other.
	w, err := m4.View()
	require.NoError(t, err)
	require.NoError(t, w.Set(7, 3, 2))
	got, err := v.At(3, 2)
	require.NoError(t, err)
	assert.Equal(t, float32(7), got)
}
