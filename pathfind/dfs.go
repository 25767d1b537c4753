package pathfind

import (
	"github.com/mrutjes/gridrouter/gate"
	"github.com/mrutjes/gridrouter/geom"
	"github.com/mrutjes/gridrouter/grid"
)

// DFS explores the grid depth-first at step granularity, backtracking
// on dead ends. At each point, the six neighbor candidates are tried
// in a deterministic order biased toward the target (spec.md §4.4).
type DFS struct{}

// dfsFrame is one stack frame: the point it represents, its
// precomputed candidate order, and how far that order has been
// consumed.
type dfsFrame struct {
	point     geom.Point
	neighbors [6]geom.Point
	nextIdx   int
}

// Route performs an iterative, stack-based depth-first search so
// traversal depth is bounded only by available memory, not by the Go
// call stack.
func (DFS) Route(start, end gate.Gate, g *grid.Grid) (*grid.Wire, error) {
	if err := checkPreconditions(start, end); err != nil {
		return nil, err
	}

	startP, endP := start.Point, end.Point
	path := []geom.Point{startP}
	onPath := map[geom.Point]bool{startP: true}
	stack := []dfsFrame{{point: startP, neighbors: orderedNeighbors(startP, endP)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.point == endP {
			return grid.NewWire(start, end, path), nil
		}
		if top.nextIdx >= len(top.neighbors) {
			// Dead end: backtrack by popping this frame and its point.
			delete(onPath, top.point)
			path = path[:len(path)-1]
			stack = stack[:len(stack)-1]
			continue
		}

		cand := top.neighbors[top.nextIdx]
		top.nextIdx++
		if onPath[cand] {
			continue
		}
		if !isLegalStep(g, cand, endP) {
			continue
		}
		if g.HasSegment(top.point, cand) {
			continue
		}

		path = append(path, cand)
		onPath[cand] = true
		stack = append(stack, dfsFrame{point: cand, neighbors: orderedNeighbors(cand, endP)})
	}

	return nil, ErrNoPath
}
