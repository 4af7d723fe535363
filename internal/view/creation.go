package view

import "fmt"

// NewSharedPair allocates a single buffer and returns two 1-D float32 views
// over disjoint windows of it: the first of length n1 filled with
// increasing values 0..n1-1, the second of length n2 filled with decreasing
// values n2-1..0. Both views share ownership of the one allocation, so the
// storage outlives whichever view is released first.
func NewSharedPair(n1, n2 int) (*View[float32], *View[float32], error) {
	if n1 < 1 || n2 < 1 {
		return nil, nil, fmt.Errorf("%w: shared pair lengths must be >= 1, got %d and %d", ErrAllocation, n1, n2)
	}

	backing, err := NewRaw(Shape{n1 + n2}, Float32, RowMajor)
	if err != nil {
		return nil, nil, err
	}

	first := FromRaw[float32](backing.window(0, Shape{n1}))
	second := FromRaw[float32](backing.window(n1*Float32.Size(), Shape{n2}))

	// The allocating reference is no longer needed; the windows keep the
	// buffer alive.
	backing.Release()

	data1 := first.Data()
	for i := range data1 {
		data1[i] = float32(i)
	}
	data2 := second.Data()
	for i := range data2 {
		data2[i] = float32(len(data2) - i - 1)
	}

	return first, second, nil
}
