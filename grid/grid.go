package grid

import (
	"fmt"

	"github.com/mrutjes/gridrouter/costfield"
	"github.com/mrutjes/gridrouter/gate"
	"github.com/mrutjes/gridrouter/geom"
)

// intersectionWeight is the 300:1 cost ratio between an extra pass
// over an occupied cell and a single wire segment (spec.md §4.3).
// The ratio must be preserved bit-exactly.
const intersectionWeight = 300

// New constructs a Grid over a width×height base layer, registering
// every gate in gates via PlaceNode and attaching field as the
// read-only cost field for this attempt. Returns ErrOutOfBounds if
// any gate falls outside the grid.
func New(width, height int, gates *gate.Set, field *costfield.Field) (*Grid, error) {
	g := &Grid{
		width:  width,
		height: height,
		gates:  gates,
		field:  field,
	}
	g.resetState()
	for _, gt := range gates.All() {
		if err := g.PlaceNode(gt); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// resetState (re)initializes occupancy, the segment set, the wire
// list, and the reservation halo to empty — the clean-grid state.
func (g *Grid) resetState() {
	g.occupancy = make(map[geom.Point]int)
	g.segments = make(map[geom.Segment]struct{})
	g.wires = g.wires[:0]
	g.totalSegments = 0
	g.reservations = make(map[geom.Point]struct{})
}

// Reset clears all placed wires and swaps in a freshly built cost
// field, matching the controller's "reset grid to a clean state"
// step between ordering attempts (spec.md §4.6.1a).
func (g *Grid) Reset(field *costfield.Field) {
	g.resetState()
	g.field = field
}

// PlaceNode registers a gate, failing if its coordinates are outside
// the grid. Gates placed this way never appear in occupancy — they
// are excluded from intersection accounting by construction.
func (g *Grid) PlaceNode(gt gate.Gate) error {
	if !gt.Point.InBounds(g.width, g.height) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, gt)
	}
	return nil
}

// Width, Height, and Gates expose the grid's static configuration.
func (g *Grid) Width() int          { return g.width }
func (g *Grid) Height() int         { return g.height }
func (g *Grid) Gates() *gate.Set    { return g.gates }
func (g *Grid) Field() *costfield.Field { return g.field }

// InBounds reports whether p lies within this grid's dimensions.
func (g *Grid) InBounds(p geom.Point) bool {
	return p.InBounds(g.width, g.height)
}

// HasSegment reports whether segment {p,q} is already used by a
// placed wire.
func (g *Grid) HasSegment(p, q geom.Point) bool {
	s, ok := geom.NewSegment(p, q)
	if !ok {
		return false
	}
	_, used := g.segments[s]
	return used
}

// Occupancy returns the number of placed wires whose interior passes
// through p. Gates are never counted, matching spec.md invariant 5.
func (g *Grid) Occupancy(p geom.Point) int {
	return g.occupancy[p]
}

// PointCost returns 1 if p is unoccupied or singly occupied, else
// 300*occupancy+1 — the dynamic crossing penalty step cost used by
// cost-aware pathfinders (spec.md §4.3).
func (g *Grid) PointCost(p geom.Point) int {
	occ := g.occupancy[p]
	if occ <= 1 {
		return 1
	}
	return intersectionWeight*occ + 1
}

// CostAt returns the precomputed static cost-field value at p (0 if
// no field is attached, e.g. in tests of uncosted pathfinders).
func (g *Grid) CostAt(p geom.Point) int {
	if g.field == nil {
		return 0
	}
	return g.field.At(p)
}

// Wires returns the placed wires in insertion (placement) order. The
// returned slice is a fresh copy.
func (g *Grid) Wires() []*Wire {
	out := make([]*Wire, len(g.wires))
	copy(out, g.wires)
	return out
}

// TotalSegments returns the running sum of every placed wire's
// segment count (spec.md invariant 6).
func (g *Grid) TotalSegments() int { return g.totalSegments }

// TryAddWire validates and commits w atomically: every interior point
// must be in bounds and not a gate, and no segment may already be in
// use. On success, occupancy, the segment set, the wire list, and the
// segment counter are all updated together; on failure, none of them
// are touched.
func (g *Grid) TryAddWire(w *Wire) error {
	if len(w.Points) < 2 {
		return ErrTooShort
	}
	if _, ok := g.gates.At(w.Points[0]); !ok {
		return fmt.Errorf("%w: start %v", ErrEndpointNotGate, w.Points[0])
	}
	if _, ok := g.gates.At(w.Points[len(w.Points)-1]); !ok {
		return fmt.Errorf("%w: end %v", ErrEndpointNotGate, w.Points[len(w.Points)-1])
	}
	for i := 0; i+1 < len(w.Points); i++ {
		if !w.Points[i].IsUnitStep(w.Points[i+1]) {
			return fmt.Errorf("%w: %v -> %v", ErrNotUnitStep, w.Points[i], w.Points[i+1])
		}
	}
	for _, p := range w.Interior() {
		if !g.InBounds(p) {
			return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
		if g.gates.IsGate(p) {
			return fmt.Errorf("%w: %v", ErrGateInterior, p)
		}
	}
	segs := w.Segments()
	for _, s := range segs {
		if _, used := g.segments[s]; used {
			return ErrSegmentTaken
		}
	}
	// All-or-nothing from here: no validation failure remains possible.
	for _, p := range w.Interior() {
		g.occupancy[p]++
	}
	for _, s := range segs {
		g.segments[s] = struct{}{}
	}
	g.wires = append(g.wires, w)
	g.totalSegments += w.Len()
	for _, p := range w.Interior() {
		g.AddReservation(p)
	}

	return nil
}

// RemoveWire reverses TryAddWire's changes to occupancy, the segment
// set, the wire list, and the segment counter; the reservation halo
// is left as it is (see AddReservation). It is used for strict
// LIFO backtracking (spec.md §4.6's "Backtracking semantics") but is
// safe to call for any previously-added wire in any order: occupancy
// is floored at zero and the segment set and wire list are updated
// consistently regardless of removal order.
func (g *Grid) RemoveWire(w *Wire) error {
	idx := -1
	for i, placed := range g.wires {
		if placed == w {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrWireNotFound
	}

	for _, p := range w.Interior() {
		if g.occupancy[p] > 0 {
			g.occupancy[p]--
		}
		if g.occupancy[p] == 0 {
			delete(g.occupancy, p)
		}
	}
	for _, s := range w.Segments() {
		delete(g.segments, s)
	}
	g.wires = append(g.wires[:idx], g.wires[idx+1:]...)
	g.totalSegments -= w.Len()
	if g.totalSegments < 0 {
		g.totalSegments = 0
	}

	return nil
}

// TotalIntersections sums, over every non-gate cell, the excess
// occupancy beyond one pass (spec.md §4.3).
func (g *Grid) TotalIntersections() int {
	total := 0
	for p, occ := range g.occupancy {
		if g.gates.IsGate(p) {
			continue
		}
		if occ > 1 {
			total += occ - 1
		}
	}
	return total
}

// TotalCost computes 300*TotalIntersections()+TotalSegments(). The
// 300:1 ratio defines the cost model and must be preserved exactly.
func (g *Grid) TotalCost() int {
	return intersectionWeight*g.TotalIntersections() + g.totalSegments
}

// AddReservation marks the one-cell halo around p (x-1,x+1,y-1,y+1,
// z+1) as reserved — a supplemented feature carried over from the
// original implementation's add_reservation/check_reservation pair
// (see SPEC_FULL.md §9.1). TryAddWire calls this for every interior
// point of a committed wire, so the halo is computed on every commit
// exactly as the original computed it on every placed node; nothing
// consults it, matching the original's actual behavior: the Python
// source computes reservations but never calls check_reservation from
// the active path validator. RemoveWire does not undo it, again
// matching the original, which has no inverse of add_reservation.
func (g *Grid) AddReservation(p geom.Point) {
	for _, d := range []geom.Point{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}, {Z: 1}} {
		g.reservations[geom.Point{X: p.X + d.X, Y: p.Y + d.Y, Z: p.Z + d.Z}] = struct{}{}
	}
}

// Reservations exposes the halo built by AddReservation for callers
// that want to inspect or extend it; the core router does not gate
// wire legality on it.
func (g *Grid) Reservations() map[geom.Point]struct{} {
	out := make(map[geom.Point]struct{}, len(g.reservations))
	for p := range g.reservations {
		out[p] = struct{}{}
	}
	return out
}

// Snapshot captures the grid's current mutable state for round-trip
// testing (spec.md §8, scenario 6).
func (g *Grid) Snapshot() Snapshot {
	occ := make(map[geom.Point]int, len(g.occupancy))
	for p, v := range g.occupancy {
		occ[p] = v
	}
	segs := make(map[geom.Segment]struct{}, len(g.segments))
	for s := range g.segments {
		segs[s] = struct{}{}
	}
	return Snapshot{
		Occupancy:     occ,
		Segments:      segs,
		WireCount:     len(g.wires),
		TotalSegments: g.totalSegments,
	}
}
