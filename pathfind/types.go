package pathfind

import (
	"sort"

	"github.com/mrutjes/gridrouter/gate"
	"github.com/mrutjes/gridrouter/geom"
	"github.com/mrutjes/gridrouter/grid"
)

// Router is the single capability every pathfinder implements:
// propose a wire between two gates, or fail. Implementations must not
// mutate g; the controller is the sole writer.
type Router interface {
	Route(start, end gate.Gate, g *grid.Grid) (*grid.Wire, error)
}

// checkPreconditions enforces the precondition shared by all four
// routers: start and end must be distinct and both registered gates
// (the latter is guaranteed by the gate.Gate values themselves coming
// from a gate.Set, so only distinctness is checked here).
func checkPreconditions(start, end gate.Gate) error {
	if start.ID == end.ID {
		return ErrSameGate
	}
	return nil
}

// isLegalStep reports whether candidate may be entered: in bounds and
// not a non-endpoint gate. It does not check the connecting segment;
// each router checks that separately with grid.HasSegment.
func isLegalStep(g *grid.Grid, candidate geom.Point, end geom.Point) bool {
	if !g.InBounds(candidate) {
		return false
	}
	if g.Gates().IsGate(candidate) && candidate != end {
		return false
	}
	return true
}

// orderedNeighbors returns current's six axis-aligned neighbors,
// sorted so that moves reducing Manhattan distance to target come
// first; ties keep the fixed +x,-x,+y,-y,+z,-z axis order already
// produced by geom.Point.Neighbors. Used by DFS's deterministic
// candidate ordering.
func orderedNeighbors(current, target geom.Point) [6]geom.Point {
	n := current.Neighbors()
	curDist := current.ManhattanDistance(target)
	sort.SliceStable(n[:], func(i, j int) bool {
		di := n[i].ManhattanDistance(target) < curDist
		dj := n[j].ManhattanDistance(target) < curDist
		if di == dj {
			return false // preserve fixed axis order on ties
		}
		return di // "reduces distance" candidates sort first
	})
	return n
}
