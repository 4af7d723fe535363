// Copyright 2025 The ndview Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package view provides strided multi-dimensional views over owned and
// borrowed numeric memory.
//
// # Overview
//
// A View presents a uniform indexable, mutable surface over a block of
// numeric elements, regardless of whether the block was allocated by the
// view itself (Owned) or supplied by the caller (Borrowed), and regardless
// of row-major or column-major physical layout. This package provides:
//   - Generic type-safe views (View[T])
//   - Row-major and column-major stride computation
//   - Zero-copy wrapping of caller-owned slices
//   - Aliased views with shared, reference-counted storage
//
// # Basic Usage
//
//	import "github.com/ndview-dev/ndview/view"
//
//	func main() {
//	    m, _ := view.Create[float32](view.Shape{2, 3}, view.RowMajor)
//	    _ = m.Set(1.5, 1, 2)
//	    v, _ := m.At(1, 2) // 1.5
//	}
//
// # Supported Element Types
//
// The Scalar constraint covers float32, float64, int32, int64 and uint8
// (uint8 is useful for images).
//
// # Layouts
//
// A view's layout is fixed at construction. Row-major views store the last
// logical dimension contiguously; column-major views store the first.
// Strides are derived once from shape and layout, and RequireLayout lets
// layout-specific consumers assert the physical order before aliasing
// memory directly. Layouts are never converted implicitly: a mismatch is
// an error the caller must resolve, because implicit conversion would
// silently break the zero-copy guarantee.
//
// # Ownership
//
// Owned views allocate their storage and free it when the last aliasing
// view is released. Borrowed views reference caller memory: they must
// never outlive it, and that contract cannot be checked at runtime.
//
// # Concurrency
//
// Views are not safe for concurrent mutation. Callers serialize access to
// shared storage themselves.
package view
