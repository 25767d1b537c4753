package grid

import (
	"github.com/mrutjes/gridrouter/costfield"
	"github.com/mrutjes/gridrouter/gate"
	"github.com/mrutjes/gridrouter/geom"
)

// Wire is an ordered sequence of points connecting two gates. It owns
// its point sequence; its segment multiset is derived on demand, not
// stored, so a Wire built by one pathfinder and mutated by no one
// never drifts out of sync with its own points.
type Wire struct {
	Start, End gate.Gate
	Points     []geom.Point
}

// NewWire builds a Wire from an explicit point sequence. It does not
// validate geometry; Grid.TryAddWire is the single place validation
// happens, so every pathfinder can return its raw result uniformly.
func NewWire(start, end gate.Gate, points []geom.Point) *Wire {
	pts := make([]geom.Point, len(points))
	copy(pts, points)
	return &Wire{Start: start, End: end, Points: pts}
}

// Segments derives the wire's consecutive-point segments. Returns nil
// if the wire has fewer than two points.
func (w *Wire) Segments() []geom.Segment {
	if len(w.Points) < 2 {
		return nil
	}
	segs := make([]geom.Segment, 0, len(w.Points)-1)
	for i := 0; i+1 < len(w.Points); i++ {
		s, ok := geom.NewSegment(w.Points[i], w.Points[i+1])
		if !ok {
			continue // malformed; TryAddWire's validation will reject the wire
		}
		segs = append(segs, s)
	}
	return segs
}

// Interior returns the wire's points excluding both endpoints.
func (w *Wire) Interior() []geom.Point {
	if len(w.Points) <= 2 {
		return nil
	}
	return w.Points[1 : len(w.Points)-1]
}

// Len reports the wire's segment count.
func (w *Wire) Len() int {
	if len(w.Points) == 0 {
		return 0
	}
	return len(w.Points) - 1
}

// Grid is the global routing state for a single attempt.
type Grid struct {
	width, height int
	gates         *gate.Set
	field         *costfield.Field

	occupancy map[geom.Point]int
	segments  map[geom.Segment]struct{}
	wires     []*Wire

	totalSegments int
	reservations  map[geom.Point]struct{} // supplemented feature, see SPEC_FULL.md §9.1
}

// Snapshot is a comparable fingerprint of a Grid's mutable state,
// used to assert the round-trip property of spec.md §8: removing
// every placed wire in reverse order restores the initial snapshot.
type Snapshot struct {
	Occupancy     map[geom.Point]int
	Segments      map[geom.Segment]struct{}
	WireCount     int
	TotalSegments int
}
