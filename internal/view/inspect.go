package view

import (
	"fmt"
	"io"
)

// Inspect writes a human-readable summary of a view to w: element type,
// rank, per-dimension extents and strides, layout and ownership. It is a
// diagnostic surface for demo and debugging code, not a serialization
// format.
func Inspect(w io.Writer, r *Raw) {
	fmt.Fprintf(w, "dtype: %s\n", r.DType())
	fmt.Fprintf(w, "rank: %d\n", len(r.Shape()))
	for i, dim := range r.Shape() {
		fmt.Fprintf(w, "shape[%d]: %d stride[%d]: %d\n", i, dim, i, r.Strides()[i])
	}
	fmt.Fprintf(w, "layout: %s\n", r.Layout())
	fmt.Fprintf(w, "ownership: %s\n", r.Ownership())
	fmt.Fprintf(w, "bytes: %d\n", r.ByteSize())
}
