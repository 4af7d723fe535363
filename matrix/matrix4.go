// Copyright 2025 The ndview Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import "github.com/ndview-dev/ndview/view"

// Matrix4 is a fixed 4×4 float32 matrix with inline storage. Its View
// method exposes that storage as a Borrowed strided view: mutation through
// the view is visible in the struct and vice versa, with no copy in either
// direction.
type Matrix4 struct {
	m [16]float32
}

// View returns a Borrowed 4×4 row-major view over the matrix's storage.
// The view must not outlive the Matrix4 value it was created from.
func (m4 *Matrix4) View() (*view.View[float32], error) {
	return view.Wrap(m4.m[:], view.Shape{4, 4}, view.RowMajor)
}

// At returns element (r, c) directly from the inline storage.
func (m4 *Matrix4) At(r, c int) float32 {
	return m4.m[r*4+c]
}
