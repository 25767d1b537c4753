package geom

// Height is the fixed number of layers in the grid stack (spec: L=8).
const Height = 8

// Point is an integer coordinate in the 3D grid. Equality is
// componentwise; Point is a value type and may be used as a map key.
type Point struct {
	X, Y, Z int
}

// offsets holds the six axis-aligned unit steps, in a fixed order:
// +x, -x, +y, -y, +z, -z. Pathfinders that need a deterministic tie
// break iterate this slice directly rather than re-deriving an order.
var offsets = [6]Point{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// Neighbors returns the six axis-aligned unit-offset points around p,
// in the fixed order +x,-x,+y,-y,+z,-z, regardless of grid bounds.
// Callers filter out-of-bounds candidates themselves via InBounds.
func (p Point) Neighbors() [6]Point {
	var n [6]Point
	for i, d := range offsets {
		n[i] = Point{p.X + d.X, p.Y + d.Y, p.Z + d.Z}
	}
	return n
}

// InBounds reports whether p lies within a W×H×Height grid.
func (p Point) InBounds(w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h && p.Z >= 0 && p.Z < Height
}

// FreeNeighborCount returns the number of p's six axis-aligned
// neighbors that lie within a W×H×Height grid. Used by the cost field
// to assess how "boxed in" a gate is (spec §4.2's free_sides).
func (p Point) FreeNeighborCount(w, h int) int {
	count := 0
	for _, n := range p.Neighbors() {
		if n.InBounds(w, h) {
			count++
		}
	}
	return count
}

// ManhattanDistance returns |p-q| in the L1 norm across all three
// axes. Gates sit at z=0, so the z term is always zero for gate-to-gate
// distance today, but the general three-axis formula is preserved
// deliberately: the original implementation (distance_nodes) included
// it even though it never mattered, and nothing in the spec asks us
// to special-case it away.
func (p Point) ManhattanDistance(q Point) int {
	return absInt(p.X-q.X) + absInt(p.Y-q.Y) + absInt(p.Z-q.Z)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// IsUnitStep reports whether p and q differ by exactly one unit step
// along exactly one axis — the legality rule shared by every Segment
// and by each pathfinder's single-step move.
func (p Point) IsUnitStep(q Point) bool {
	dx, dy, dz := absInt(p.X-q.X), absInt(p.Y-q.Y), absInt(p.Z-q.Z)
	return dx+dy+dz == 1
}

// Segment is an unordered pair of adjacent points. Two segments are
// equal regardless of endpoint order: {p,q} == {q,p}.
type Segment struct {
	lo, hi Point
}

// NewSegment builds a Segment from two adjacent points, normalizing
// endpoint order so equality and hashing are order-independent.
// Returns false if p and q are not a unit step apart.
func NewSegment(p, q Point) (Segment, bool) {
	if !p.IsUnitStep(q) {
		return Segment{}, false
	}
	if lessPoint(q, p) {
		p, q = q, p
	}
	return Segment{lo: p, hi: q}, true
}

// lessPoint imposes an arbitrary but total order on points, used only
// to normalize Segment endpoint order.
func lessPoint(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}

// Endpoints returns the segment's two points in normalized (lo, hi) order.
func (s Segment) Endpoints() (Point, Point) {
	return s.lo, s.hi
}
