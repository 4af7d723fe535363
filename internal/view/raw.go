package view

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"
)

// sharedBuffer is a reference-counted block of owned storage. Multiple Raw
// views may alias one buffer (see NewSharedPair); mutation through any of
// them is immediately visible through the others.
type sharedBuffer struct {
	data     []byte
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// newSharedBuffer creates a zero-initialized buffer with refCount = 1.
func newSharedBuffer(size int) *sharedBuffer {
	buf := &sharedBuffer{
		data: make([]byte, size),
	}
	buf.refCount.Store(1)
	return buf
}

// addRef increments the reference count (for Clone operations).
func (sb *sharedBuffer) addRef() {
	sb.refCount.Add(1)
}

// release decrements the reference count and drops the storage at zero.
func (sb *sharedBuffer) release() {
	if sb.refCount.Add(-1) == 0 {
		sb.mu.Lock()
		defer sb.mu.Unlock()
		sb.data = nil
	}
}

// Raw is the untyped view representation: a window of byte storage plus the
// shape, stride, layout and ownership bookkeeping needed to address it.
//
// Owned views hold a reference-counted sharedBuffer. Borrowed views hold a
// plain byte slice over caller memory; releasing them never touches the
// underlying storage, and using them after that storage is gone is
// undefined (caller contract, not checked at runtime).
type Raw struct {
	buffer    *sharedBuffer // Owned storage; nil for Borrowed views
	borrowed  []byte        // Caller storage; nil for Owned views
	shape     Shape         // View dimensions
	stride    []int         // Element strides, consistent with shape+layout
	layout    Layout        // Physical ordering, fixed at creation
	dtype     DataType      // Runtime type information
	ownership Ownership     // Owned or Borrowed
	offset    int           // Byte offset into the buffer, for aliased views
}

// NewRaw creates an Owned Raw view with zero-initialized storage.
func NewRaw(shape Shape, dtype DataType, layout Layout) (*Raw, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocation, err)
	}

	byteSize, err := shape.byteSize(dtype.Size())
	if err != nil {
		return nil, err
	}

	return &Raw{
		buffer:    newSharedBuffer(byteSize),
		shape:     shape.Clone(),
		stride:    shape.Strides(layout),
		layout:    layout,
		dtype:     dtype,
		ownership: Owned,
		offset:    0,
	}, nil
}

// WrapRaw creates a Borrowed Raw view over caller-supplied bytes without
// copying. The byte length must match the shape exactly. The caller keeps
// ownership of the memory and must keep it alive for as long as the view
// (or any alias of it) is used.
func WrapRaw(data []byte, shape Shape, dtype DataType, layout Layout) (*Raw, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocation, err)
	}

	byteSize, err := shape.byteSize(dtype.Size())
	if err != nil {
		return nil, err
	}
	if len(data) != byteSize {
		return nil, fmt.Errorf("%w: shape %v needs %d bytes, got %d", ErrAllocation, shape, byteSize, len(data))
	}

	return &Raw{
		borrowed:  data,
		shape:     shape.Clone(),
		stride:    shape.Strides(layout),
		layout:    layout,
		dtype:     dtype,
		ownership: Borrowed,
		offset:    0,
	}, nil
}

// Shape returns the view's shape.
func (r *Raw) Shape() Shape {
	return r.shape
}

// Strides returns the view's element strides.
func (r *Raw) Strides() []int {
	return r.stride
}

// DType returns the view's element type.
func (r *Raw) DType() DataType {
	return r.dtype
}

// Layout returns the view's physical layout.
func (r *Raw) Layout() Layout {
	return r.layout
}

// Ownership reports whether the view owns its storage.
func (r *Raw) Ownership() Ownership {
	return r.ownership
}

// NumElements returns the total number of elements.
func (r *Raw) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the view's window size in bytes.
func (r *Raw) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// RequireLayout returns ErrLayoutMismatch unless the view's layout equals
// expected. Layout-specific consumers call this before aliasing memory
// directly; the check is never resolved by converting the data.
func (r *Raw) RequireLayout(expected Layout) error {
	if r.layout != expected {
		return fmt.Errorf("%w: have %s, want %s", ErrLayoutMismatch, r.layout, expected)
	}
	return nil
}

// bytes returns the view's byte window into its storage.
func (r *Raw) bytes() []byte {
	if r.ownership == Borrowed {
		return r.borrowed[r.offset : r.offset+r.ByteSize()]
	}
	return r.buffer.data[r.offset : r.offset+r.ByteSize()]
}

// Data returns the raw byte window.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *Raw) Data() []byte {
	return r.bytes()
}

// AsFloat32 interprets the data as []float32.
// Panics if the view's dtype is not Float32.
func (r *Raw) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("view dtype is %s, not float32", r.dtype))
	}
	data := r.bytes()
	return unsafe.Slice((*float32)(unsafe.Pointer(&data[0])), r.NumElements())
}

// AsFloat64 interprets the data as []float64.
// Panics if the view's dtype is not Float64.
func (r *Raw) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("view dtype is %s, not float64", r.dtype))
	}
	data := r.bytes()
	return unsafe.Slice((*float64)(unsafe.Pointer(&data[0])), r.NumElements())
}

// AsInt32 interprets the data as []int32.
// Panics if the view's dtype is not Int32.
func (r *Raw) AsInt32() []int32 {
	if r.dtype != Int32 {
		panic(fmt.Sprintf("view dtype is %s, not int32", r.dtype))
	}
	data := r.bytes()
	return unsafe.Slice((*int32)(unsafe.Pointer(&data[0])), r.NumElements())
}

// AsInt64 interprets the data as []int64.
// Panics if the view's dtype is not Int64.
func (r *Raw) AsInt64() []int64 {
	if r.dtype != Int64 {
		panic(fmt.Sprintf("view dtype is %s, not int64", r.dtype))
	}
	data := r.bytes()
	return unsafe.Slice((*int64)(unsafe.Pointer(&data[0])), r.NumElements())
}

// AsUint8 interprets the data as []uint8.
// Panics if the view's dtype is not Uint8.
func (r *Raw) AsUint8() []uint8 {
	if r.dtype != Uint8 {
		panic(fmt.Sprintf("view dtype is %s, not uint8", r.dtype))
	}
	return r.bytes() // Already []byte = []uint8
}

// Clone creates a shallow copy that aliases the same storage. For Owned
// views the buffer reference count is incremented; for Borrowed views the
// new view references the same caller memory under the same contract.
// Mutation through either view is visible through the other.
func (r *Raw) Clone() *Raw {
	if r.ownership == Owned {
		r.buffer.addRef()
	}
	return &Raw{
		buffer:    r.buffer,
		borrowed:  r.borrowed,
		shape:     r.shape.Clone(),
		stride:    append([]int(nil), r.stride...),
		layout:    r.layout,
		dtype:     r.dtype,
		ownership: r.ownership,
		offset:    r.offset,
	}
}

// Release drops this view's reference. For Owned views the backing storage
// is freed once the last reference is gone; for Borrowed views only the
// view itself is discarded and the caller's memory is untouched.
func (r *Raw) Release() {
	if r.ownership == Owned {
		r.buffer.release()
	}
}

// window creates an aliased Owned view over a sub-range of an existing
// buffer. Used by NewSharedPair to hand out several views over one
// allocation.
func (r *Raw) window(offset int, shape Shape) *Raw {
	r.buffer.addRef()
	return &Raw{
		buffer:    r.buffer,
		shape:     shape.Clone(),
		stride:    shape.Strides(r.layout),
		layout:    r.layout,
		dtype:     r.dtype,
		ownership: Owned,
		offset:    r.offset + offset,
	}
}
