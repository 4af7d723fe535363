package view

import "fmt"

// FillIndexProduct fills a 2-D view with the product of its logical
// indices, v(i,j) = i*j, going through the checked element-access path.
// Kept alongside FillIndexProductFast to compare the per-element overhead
// of checked access against direct storage access (see benchmarks).
func FillIndexProduct(v *View[float32]) error {
	shape := v.Shape()
	if len(shape) != 2 {
		return fmt.Errorf("%w: expected 2 indices, got rank %d", ErrIndexOutOfRange, len(shape))
	}
	for i := 0; i < shape[0]; i++ {
		for j := 0; j < shape[1]; j++ {
			if err := v.Set(float32(i*j), i, j); err != nil {
				return err
			}
		}
	}
	return nil
}

// FillIndexProductFast fills a 2-D view with v(i,j) = i*j through the raw
// data slice, hoisting the stride math out of the element loop.
func FillIndexProductFast(v *View[float32]) error {
	shape := v.Shape()
	if len(shape) != 2 {
		return fmt.Errorf("%w: expected 2 indices, got rank %d", ErrIndexOutOfRange, len(shape))
	}

	data := v.Data()
	strides := v.Strides()
	for i := 0; i < shape[0]; i++ {
		rowBase := i * strides[0]
		for j := 0; j < shape[1]; j++ {
			data[rowBase+j*strides[1]] = float32(i * j)
		}
	}
	return nil
}

// FillSpecialized dispatches on the runtime element type and rank of an
// untyped view and fills it with a type-specific pattern: 2-D float32 views
// get i*j + 0.5, 2-D int32 views get i + j. Anything else is reported as
// unsupported without touching the data.
func FillSpecialized(r *Raw) string {
	shape := r.Shape()

	switch {
	case r.DType() == Float32 && len(shape) == 2:
		v := FromRaw[float32](r)
		data := v.Data()
		strides := v.Strides()
		for i := 0; i < shape[0]; i++ {
			for j := 0; j < shape[1]; j++ {
				data[i*strides[0]+j*strides[1]] = float32(i*j) + 0.5
			}
		}
		return "used specialized 2-D float32 fill"

	case r.DType() == Int32 && len(shape) == 2:
		v := FromRaw[int32](r)
		data := v.Data()
		strides := v.Strides()
		for i := 0; i < shape[0]; i++ {
			for j := 0; j < shape[1]; j++ {
				data[i*strides[0]+j*strides[1]] = int32(i + j)
			}
		}
		return "used specialized 2-D int32 fill"

	default:
		return "unsupported element type or rank"
	}
}
