package view

import "errors"

// Error kinds surfaced by this package. All of them indicate programming
// errors (bad shape, wrong layout assumption, out-of-bounds coordinate),
// not transient conditions: none are retryable and none are downgraded.
var (
	// ErrAllocation reports that backing storage could not be obtained,
	// including size computations that overflow.
	ErrAllocation = errors.New("view: allocation failed")

	// ErrIndexOutOfRange reports a coordinate that exceeds an axis extent
	// or an index tuple whose arity does not match the view's rank.
	ErrIndexOutOfRange = errors.New("view: index out of range")

	// ErrLayoutMismatch reports an operation that requires a physical
	// layout the view does not have. Layouts are never converted
	// implicitly; the caller must construct the correct layout instead.
	ErrLayoutMismatch = errors.New("view: layout mismatch")
)
