package view

// Layout describes the physical element ordering of a view's storage.
// It is fixed at construction and never changed in place: converting a
// view between layouts would require a copy, which would silently defeat
// the zero-copy contract.
type Layout int

// Supported storage layouts.
const (
	// RowMajor stores the last logical dimension contiguously
	// (C / NumPy default ordering).
	RowMajor Layout = iota
	// ColMajor stores the first logical dimension contiguously
	// (Fortran / Eigen default ordering).
	ColMajor
)

// String returns a human-readable layout name.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "column-major"
	default:
		return "unknown"
	}
}

// Ownership describes who manages a view's backing storage.
type Ownership int

// Ownership modes.
const (
	// Owned views allocated their storage and drop it when the last
	// reference is released.
	Owned Ownership = iota
	// Borrowed views reference memory owned elsewhere. The view must not
	// be used after the underlying memory is released; this is a caller
	// contract that cannot be checked at runtime.
	Borrowed
)

// String returns a human-readable ownership name.
func (o Ownership) String() string {
	switch o {
	case Owned:
		return "owned"
	case Borrowed:
		return "borrowed"
	default:
		return "unknown"
	}
}
