// Copyright 2025 The ndview Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package view

import (
	"io"

	"github.com/ndview-dev/ndview/internal/view"
)

// Type aliases for public API

// Scalar is a constraint for supported element types.
// Supported types: float32, float64, int32, int64, uint8.
type Scalar = view.Scalar

// DataType represents the runtime element type of a view.
type DataType = view.DataType

// Element type constants.
const (
	Float32 DataType = view.Float32
	Float64 DataType = view.Float64
	Int32   DataType = view.Int32
	Int64   DataType = view.Int64
	Uint8   DataType = view.Uint8
)

// Layout describes the physical element ordering of a view's storage.
type Layout = view.Layout

// Layout constants.
const (
	RowMajor Layout = view.RowMajor
	ColMajor Layout = view.ColMajor
)

// Ownership describes who manages a view's backing storage.
type Ownership = view.Ownership

// Ownership constants.
const (
	Owned    Ownership = view.Owned
	Borrowed Ownership = view.Borrowed
)

// Shape represents the dimensions of a view.
// Example: Shape{2, 3, 4} represents a 3-D view with dimensions 2×3×4.
type Shape = view.Shape

// View is a generic type-safe strided view.
//
// T is the element type (float32, float64, int32, int64, uint8).
//
// View provides:
//   - Logical multi-dimensional indexing over either physical layout
//   - Zero-copy access to owned or borrowed storage
//   - Aliasing with shared, reference-counted buffers
type View[T Scalar] = view.View[T]

// Raw is the untyped low-level view representation.
type Raw = view.Raw

// Error sentinels.
var (
	// ErrAllocation reports that backing storage could not be obtained.
	ErrAllocation = view.ErrAllocation
	// ErrIndexOutOfRange reports a coordinate exceeding an axis extent.
	ErrIndexOutOfRange = view.ErrIndexOutOfRange
	// ErrLayoutMismatch reports an operation requiring a layout the view
	// does not have.
	ErrLayoutMismatch = view.ErrLayoutMismatch
)

// Creation functions

// Create allocates a zero-initialized Owned view.
//
// Example:
//
//	m, err := view.Create[float32](view.Shape{2, 3}, view.RowMajor)
func Create[T Scalar](shape Shape, layout Layout) (*View[T], error) {
	return view.Create[T](shape, layout)
}

// Wrap constructs a Borrowed view over caller-supplied memory without
// copying. The view must not be used after the slice's backing array is
// released (caller contract).
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	m, err := view.Wrap(data, view.Shape{2, 3}, view.RowMajor)
func Wrap[T Scalar](data []T, shape Shape, layout Layout) (*View[T], error) {
	return view.Wrap(data, shape, layout)
}

// NewRaw creates a new untyped Owned view with the given shape, dtype and
// layout.
//
// This is a low-level function. Most users should use Create instead.
func NewRaw(shape Shape, dtype DataType, layout Layout) (*Raw, error) {
	return view.NewRaw(shape, dtype, layout)
}

// FromRaw wraps an existing Raw view in a typed facade.
// Panics if T does not match the Raw view's dtype.
func FromRaw[T Scalar](raw *Raw) *View[T] {
	return view.FromRaw[T](raw)
}

// NewSharedPair allocates one buffer and returns two 1-D float32 views
// sharing it: the first of length n1 filled with increasing values, the
// second of length n2 filled with decreasing values.
func NewSharedPair(n1, n2 int) (*View[float32], *View[float32], error) {
	return view.NewSharedPair(n1, n2)
}

// Utility functions

// Inspect writes a human-readable summary of a view (dtype, rank, shape,
// strides, layout, ownership) to w.
func Inspect(w io.Writer, r *Raw) {
	view.Inspect(w, r)
}

// FillIndexProduct fills a 2-D float32 view with v(i,j) = i*j using the
// checked element-access path.
func FillIndexProduct(v *View[float32]) error {
	return view.FillIndexProduct(v)
}

// FillIndexProductFast fills a 2-D float32 view with v(i,j) = i*j through
// the raw data slice.
func FillIndexProductFast(v *View[float32]) error {
	return view.FillIndexProductFast(v)
}

// FillSpecialized dispatches on runtime element type and rank, filling 2-D
// float32 and int32 views with type-specific patterns. It returns a
// description of the operation performed.
func FillSpecialized(r *Raw) string {
	return view.FillSpecialized(r)
}
