package view

import (
	"fmt"
	"iter"
	"unsafe"
)

// View is a typed strided view over numeric memory. It presents the same
// indexable, mutable surface regardless of whether the storage was
// allocated internally (Owned) or supplied by the caller (Borrowed), and
// regardless of row-major or column-major physical layout.
//
// Views are not safe for concurrent mutation; callers serialize access to
// shared storage themselves.
//
// Example:
//
//	m, _ := view.Create[float32](view.Shape{2, 3}, view.RowMajor)
//	_ = m.Set(1.5, 1, 2)
//	v, _ := m.At(1, 2) // 1.5
type View[T Scalar] struct {
	raw *Raw
}

// Create allocates a zero-initialized Owned view of the given shape and
// layout. It fails with ErrAllocation if the size computation overflows or
// the shape is invalid.
func Create[T Scalar](shape Shape, layout Layout) (*View[T], error) {
	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy), layout)
	if err != nil {
		return nil, err
	}
	return &View[T]{raw: raw}, nil
}

// Wrap constructs a Borrowed view over caller-supplied memory without
// copying. The slice length must equal the shape's element count. The
// caller keeps ownership: the view must never be read or written after the
// slice's backing array is released, and that contract cannot be checked
// at runtime.
func Wrap[T Scalar](data []T, shape Shape, layout Layout) (*View[T], error) {
	var dummy T
	dtype := inferDataType(dummy)

	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrAllocation, shape, shape.NumElements(), len(data))
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: cannot wrap empty slice", ErrAllocation)
	}

	bytes := unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*dtype.Size())
	raw, err := WrapRaw(bytes, shape, dtype, layout)
	if err != nil {
		return nil, err
	}
	return &View[T]{raw: raw}, nil
}

// FromRaw wraps an existing Raw view in a typed facade.
// Panics if T does not match the Raw view's dtype.
func FromRaw[T Scalar](raw *Raw) *View[T] {
	var dummy T
	if inferDataType(dummy) != raw.DType() {
		panic(fmt.Sprintf("view dtype is %s, requested %s", raw.DType(), inferDataType(dummy)))
	}
	return &View[T]{raw: raw}
}

// Raw returns the underlying untyped view.
// Used by runtime-dispatched consumers (see FillSpecialized).
func (v *View[T]) Raw() *Raw {
	return v.raw
}

// Shape returns the view's shape.
func (v *View[T]) Shape() Shape {
	return v.raw.Shape()
}

// Strides returns the view's element strides.
func (v *View[T]) Strides() []int {
	return v.raw.Strides()
}

// Layout returns the view's physical layout.
func (v *View[T]) Layout() Layout {
	return v.raw.Layout()
}

// Ownership reports whether the view owns its storage.
func (v *View[T]) Ownership() Ownership {
	return v.raw.Ownership()
}

// DType returns the view's runtime element type.
func (v *View[T]) DType() DataType {
	return v.raw.DType()
}

// NumElements returns the total number of elements.
func (v *View[T]) NumElements() int {
	return v.raw.NumElements()
}

// Data returns a typed slice over the view's storage (zero-copy).
// The slice is in physical order, not logical order.
//
// WARNING: Modifications to the returned slice modify the view.
func (v *View[T]) Data() []T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(v.raw.AsFloat32()).([]T)
	case float64:
		return any(v.raw.AsFloat64()).([]T)
	case int32:
		return any(v.raw.AsInt32()).([]T)
	case int64:
		return any(v.raw.AsInt64()).([]T)
	case uint8:
		return any(v.raw.AsUint8()).([]T)
	default:
		panic("unsupported type")
	}
}

// offsetOf computes the flat element offset sum(indices[d] * strides[d]),
// rejecting index tuples of the wrong arity or out of bounds.
func (v *View[T]) offsetOf(indices []int) (int, error) {
	shape := v.raw.Shape()
	if len(indices) != len(shape) {
		return 0, fmt.Errorf("%w: expected %d indices, got %d", ErrIndexOutOfRange, len(shape), len(indices))
	}

	offset := 0
	strides := v.raw.Strides()
	for d, idx := range indices {
		if idx < 0 || idx >= shape[d] {
			return 0, fmt.Errorf("%w: index %d out of bounds for dimension %d (size %d)",
				ErrIndexOutOfRange, idx, d, shape[d])
		}
		offset += idx * strides[d]
	}
	return offset, nil
}

// At returns the element at the given logical coordinates.
// Fails with ErrIndexOutOfRange if any coordinate exceeds its axis extent.
func (v *View[T]) At(indices ...int) (T, error) {
	offset, err := v.offsetOf(indices)
	if err != nil {
		var zero T
		return zero, err
	}
	return v.Data()[offset], nil
}

// Set writes the element at the given logical coordinates. The mutation is
// immediately visible through every view aliasing the same storage.
// Fails with ErrIndexOutOfRange if any coordinate exceeds its axis extent.
func (v *View[T]) Set(value T, indices ...int) error {
	offset, err := v.offsetOf(indices)
	if err != nil {
		return err
	}
	v.Data()[offset] = value
	return nil
}

// RequireLayout returns ErrLayoutMismatch unless the view's layout equals
// expected, and succeeds as a no-op otherwise.
func (v *View[T]) RequireLayout(expected Layout) error {
	return v.raw.RequireLayout(expected)
}

// Flat returns a restartable traversal of the elements in logical
// (shape-order) sequence, independent of physical layout: each logical
// index is translated to its strided offset. The sequence is finite and
// can be ranged over any number of times.
func (v *View[T]) Flat() iter.Seq[T] {
	return func(yield func(T) bool) {
		shape := v.raw.Shape()
		strides := v.raw.Strides()
		data := v.Data()

		if len(shape) == 0 {
			yield(data[0])
			return
		}

		idx := make([]int, len(shape))
		for {
			offset := 0
			for d := range idx {
				offset += idx[d] * strides[d]
			}
			if !yield(data[offset]) {
				return
			}

			// Advance the logical index, last dimension fastest.
			d := len(idx) - 1
			for d >= 0 {
				idx[d]++
				if idx[d] < shape[d] {
					break
				}
				idx[d] = 0
				d--
			}
			if d < 0 {
				return
			}
		}
	}
}

// Alias returns a new view over the same storage. Mutation through either
// view is visible through the other. For Owned views the storage reference
// count is incremented; Release must be called on both views for the
// storage to be dropped.
func (v *View[T]) Alias() *View[T] {
	return &View[T]{raw: v.raw.Clone()}
}

// Release drops this view's storage reference. Owned storage is freed when
// the last aliasing view releases it; Borrowed storage is never touched.
func (v *View[T]) Release() {
	v.raw.Release()
}

// String returns a human-readable summary of the view.
func (v *View[T]) String() string {
	return fmt.Sprintf("View[%s]%v %s %s", v.raw.DType(), v.raw.Shape(), v.raw.Layout(), v.raw.Ownership())
}
