package costfield

import (
	"github.com/mrutjes/gridrouter/gate"
	"github.com/mrutjes/gridrouter/geom"
	"github.com/mrutjes/gridrouter/netlist"
)

// stencilEntry is one (offset, cost) pair in a severity tier's paint.
type stencilEntry struct {
	dx, dy, dz, cost int
}

// Stencils are overwrite-not-add: later entries for the same cell win.
// Preserved verbatim from the source implementation, including the
// asymmetric "minimal" shell (no below-neighbor) and the two
// mismatched costs at the tail of "low" (25 instead of 20) — see
// DESIGN.md Open Questions: the rule cascade is documented as written,
// not simplified.
var (
	highShell1 = []stencilEntry{
		{0, 0, 1, 150}, {0, -1, 0, 150}, {0, 1, 0, 150}, {-1, 0, 0, 150}, {1, 0, 0, 150},
	}
	highShell2 = []stencilEntry{
		{0, 0, 2, 50}, {0, -2, 0, 50}, {0, 2, 0, 50}, {-2, 0, 0, 50}, {2, 0, 0, 50},
		{-1, -1, 0, 50}, {-1, 1, 0, 50}, {1, 1, 0, 50}, {1, -1, 0, 50},
		{1, 0, 1, 50}, {-1, 0, 1, 50}, {0, -1, 1, 50}, {0, 1, 1, 50},
	}
	shell3 = []stencilEntry{
		{3, 0, 0, 5}, {-3, 0, 0, 5}, {0, 3, 0, 5}, {0, -3, 0, 5}, {0, 0, 3, 5},
		{2, 1, 0, 5}, {2, -1, 0, 5}, {2, 0, 1, 5},
		{-2, 1, 0, 5}, {-2, -1, 0, 5}, {-2, 0, 1, 5},
		{1, 2, 0, 5}, {1, -2, 0, 5}, {0, 2, 1, 5},
		{-1, 2, 0, 5}, {-1, -2, 0, 5}, {0, -2, 1, 5},
		{1, 0, 2, 5}, {-1, 0, 2, 5}, {0, 1, 2, 5}, {0, -1, 2, 5},
		{1, 1, 1, 5}, {1, -1, 1, 5}, {-1, 1, 1, 5}, {-1, -1, 1, 5},
	}
	medShell1 = []stencilEntry{
		{0, 0, 1, 50}, {0, -1, 0, 50}, {0, 1, 0, 50}, {-1, 0, 0, 50}, {1, 0, 0, 50},
	}
	medShell2 = []stencilEntry{
		{0, 0, 2, 25}, {0, -2, 0, 25}, {0, 2, 0, 25}, {-2, 0, 0, 25}, {2, 0, 0, 25},
		{-1, -1, 0, 25}, {-1, 1, 0, 25}, {1, 1, 0, 25}, {1, -1, 0, 25},
		{1, 0, 1, 25}, {-1, 0, 1, 25}, {0, -1, 1, 25}, {0, 1, 1, 25},
	}
	lowShells = []stencilEntry{
		{0, 0, 1, 40}, {0, -1, 0, 40}, {0, 1, 0, 40}, {-1, 0, 0, 40}, {1, 0, 0, 40},
		{0, 0, 2, 20}, {0, -2, 0, 20}, {0, 2, 0, 20}, {-2, 0, 0, 20}, {2, 0, 0, 20},
		{-1, -1, 0, 20}, {-1, 1, 0, 20}, {1, 1, 0, 20}, {1, -1, 0, 20},
		{1, 0, 1, 20}, {-1, 0, 1, 20},
		{0, -1, 1, 25}, {0, 1, 1, 25}, // mismatched cost, preserved as-is
	}
	minimalShell = []stencilEntry{
		{0, 0, 1, 30}, {0, -1, 0, 30}, {0, 1, 0, 30}, {-1, 0, 0, 30}, {1, 0, 0, 30},
	}
)

// New builds a Field for the given gates over a width×height base
// layer. The netlist supplies per-gate frequency; the gate set
// supplies free_sides. Construction is deterministic: identical
// (gates, netlist) input always yields a byte-identical Field.
func New(gates *gate.Set, nl netlist.Netlist, width, height int) *Field {
	f := &Field{width: width, height: height, values: make([]int, width*height*geom.Height)}
	for i := range f.values {
		f.values[i] = 1
	}

	freq := nl.Frequency()
	for _, g := range gates.All() {
		n := g.Point.FreeNeighborCount(width, height)
		fr := freq[g.ID]

		// High severity: independent "if", may fire alongside Medium below.
		if highCond(fr, n) {
			f.paint(g.Point, highShell1)
			f.paint(g.Point, highShell2)
			f.paint(g.Point, shell3)
		}

		// Medium/Low/Minimal form their own elif cascade, applied
		// regardless of whether High already painted this gate — so a
		// gate satisfying both High and Medium ends up with Medium's
		// (smaller) shell-1/shell-2 costs, since Medium paints last.
		switch {
		case medCond(fr, n):
			f.paint(g.Point, medShell1)
			f.paint(g.Point, medShell2)
			f.paint(g.Point, shell3)
		case lowCond(fr, n):
			f.paint(g.Point, lowShells)
		case minimalCond(fr, n):
			f.paint(g.Point, minimalShell)
		}
	}

	f.applyEdgeBias()

	return f
}

func highCond(freq, free int) bool {
	return freq >= 5 || (freq >= 4 && free <= 4) || (freq >= 3 && free <= 3)
}

func medCond(freq, free int) bool {
	return freq >= 4 || (freq >= 3 && free <= 4) || (freq >= 2 && free <= 3)
}

func lowCond(freq, free int) bool {
	return freq >= 3 || (freq >= 2 && free <= 3)
}

func minimalCond(freq, free int) bool {
	return freq >= 2
}

// paint overwrites the cost at each in-bounds offset from center;
// offsets landing out of bounds are skipped.
func (f *Field) paint(center geom.Point, entries []stencilEntry) {
	for _, e := range entries {
		p := geom.Point{X: center.X + e.dx, Y: center.Y + e.dy, Z: center.Z + e.dz}
		if !p.InBounds(f.width, f.height) {
			continue
		}
		f.values[f.idx(p)] = e.cost
	}
}

// applyEdgeBias adds 2*d to every cell, where d is the minimum
// distance to any of the grid's six boundary planes — interior cells
// become more expensive than border cells.
func (f *Field) applyEdgeBias() {
	for z := 0; z < geom.Height; z++ {
		for y := 0; y < f.height; y++ {
			for x := 0; x < f.width; x++ {
				d := minInt(x, f.width-1-x, y, f.height-1-y, z, geom.Height-1-z)
				p := geom.Point{X: x, Y: y, Z: z}
				f.values[f.idx(p)] += 2 * d
			}
		}
	}
}

func minInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
