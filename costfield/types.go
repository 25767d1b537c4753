package costfield

import (
	"github.com/mrutjes/gridrouter/geom"
)

// Field is a precomputed mapping (x,y,z) -> positive integer cost.
// It is built once per (gates, netlist) pair and is read-only for the
// remainder of a routing attempt.
type Field struct {
	width, height int
	values        []int
}

// idx maps a point to its offset in the flat values slice. Row-major
// over x, then y, then z — the same convention the teacher's
// GridGraph uses for its 2D row-major index, extended with a z term.
func (f *Field) idx(p geom.Point) int {
	return (p.Z*f.height+p.Y)*f.width + p.X
}

// At returns the precomputed cost at p. Points outside the field's
// bounds return 0; callers are expected to bounds-check separately
// (costfield does not duplicate grid bounds-checking policy).
func (f *Field) At(p geom.Point) int {
	if !p.InBounds(f.width, f.height) {
		return 0
	}
	return f.values[f.idx(p)]
}

// Width and Height report the field's footprint; Height is always
// geom.Height.
func (f *Field) Width() int  { return f.width }
func (f *Field) Height() int { return f.height }
