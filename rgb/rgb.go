// Copyright 2025 The ndview Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package rgb processes H×W×3 uint8 image views in place.
package rgb

import (
	"fmt"

	"github.com/ndview-dev/ndview/view"
)

// Brighten doubles the brightness of an RGB image in place, clamping each
// channel at 255. The image must be a rank-3 view with three channels in
// the last dimension. Works for any layout and ownership; on a Borrowed
// view the caller's pixels are mutated directly.
func Brighten(img *view.View[uint8]) error {
	shape := img.Shape()
	if len(shape) != 3 || shape[2] != 3 {
		return fmt.Errorf("%w: expected HxWx3 image, got shape %v", view.ErrIndexOutOfRange, shape)
	}

	for y := 0; y < shape[0]; y++ {
		for x := 0; x < shape[1]; x++ {
			for ch := 0; ch < 3; ch++ {
				v, err := img.At(y, x, ch)
				if err != nil {
					return err
				}
				doubled := uint16(v) * 2
				if doubled > 255 {
					doubled = 255
				}
				if err := img.Set(uint8(doubled), y, x, ch); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
