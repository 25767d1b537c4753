package pathfind

import (
	"github.com/mrutjes/gridrouter/gate"
	"github.com/mrutjes/gridrouter/geom"
	"github.com/mrutjes/gridrouter/grid"
)

// Lee performs a breadth-first wavefront expansion from the start
// gate, recording each cell's first-reaching predecessor, and
// terminates when the end gate is popped from the queue (spec.md
// §4.4). Obstacles are non-endpoint gates and cells whose entering
// segment is already used.
type Lee struct{}

// Route reconstructs the shortest (fewest-segments) path by walking
// predecessors backward from the end gate.
func (Lee) Route(start, end gate.Gate, g *grid.Grid) (*grid.Wire, error) {
	if err := checkPreconditions(start, end); err != nil {
		return nil, err
	}

	startP, endP := start.Point, end.Point
	visited := map[geom.Point]bool{startP: true}
	parent := make(map[geom.Point]geom.Point)
	queue := []geom.Point{startP}
	found := false

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == endP {
			found = true
			break
		}
		for _, n := range cur.Neighbors() {
			if visited[n] {
				continue
			}
			if !isLegalStep(g, n, endP) {
				continue
			}
			if g.HasSegment(cur, n) {
				continue
			}
			visited[n] = true
			parent[n] = cur
			queue = append(queue, n)
		}
	}
	if !found {
		return nil, ErrNoPath
	}

	path := []geom.Point{endP}
	for cur := endP; cur != startP; {
		prev := parent[cur]
		path = append(path, prev)
		cur = prev
	}
	reverse(path)

	return grid.NewWire(start, end, path), nil
}

// reverse reverses a point slice in place.
func reverse(pts []geom.Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
