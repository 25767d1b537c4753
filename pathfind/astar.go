package pathfind

import (
	"container/heap"

	"github.com/mrutjes/gridrouter/gate"
	"github.com/mrutjes/gridrouter/geom"
	"github.com/mrutjes/gridrouter/grid"
)

// AStar performs a priority-queue search with f(n) = g(n) + h(n),
// where h is Manhattan distance to the end gate and g accumulates the
// cost-field value plus the dynamic crossing penalty at each step
// (spec.md §4.4). Legality rules are identical to Lee; A* additionally
// closes expanded nodes.
type AStar struct{}

// astarEntry is one priority-queue entry. moveRank records the fixed
// axis index (0..5, matching geom.Point.Neighbors' order) of the move
// that produced this entry — the tie-break of last resort once f and
// h are equal.
type astarEntry struct {
	point    geom.Point
	g, h, f  int
	moveRank int
	index    int // heap bookkeeping
}

type astarPQ []*astarEntry

func (pq astarPQ) Len() int { return len(pq) }
func (pq astarPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.moveRank < b.moveRank
}
func (pq astarPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index, pq[j].index = i, j
}
func (pq *astarPQ) Push(x interface{}) {
	e := x.(*astarEntry)
	e.index = len(*pq)
	*pq = append(*pq, e)
}
func (pq *astarPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return e
}

// Route returns the lowest-f path found, or ErrNoPath if the open set
// empties before reaching the end gate.
func (AStar) Route(start, end gate.Gate, g *grid.Grid) (*grid.Wire, error) {
	if err := checkPreconditions(start, end); err != nil {
		return nil, err
	}

	startP, endP := start.Point, end.Point
	parent := make(map[geom.Point]geom.Point)
	best := map[geom.Point]int{startP: 0}
	closed := make(map[geom.Point]bool)

	pq := make(astarPQ, 0, 64)
	heap.Push(&pq, &astarEntry{point: startP, g: 0, h: startP.ManhattanDistance(endP), f: startP.ManhattanDistance(endP)})

	found := false
	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*astarEntry)
		if closed[cur.point] {
			continue
		}
		closed[cur.point] = true
		if cur.point == endP {
			found = true
			break
		}

		neighbors := cur.point.Neighbors()
		for rank, n := range neighbors {
			if closed[n] {
				continue
			}
			if !isLegalStep(g, n, endP) {
				continue
			}
			if g.HasSegment(cur.point, n) {
				continue
			}
			stepCost := g.CostAt(n) + g.PointCost(n)
			candidateG := cur.g + stepCost
			if prevG, seen := best[n]; seen && candidateG >= prevG {
				continue
			}
			best[n] = candidateG
			parent[n] = cur.point
			h := n.ManhattanDistance(endP)
			heap.Push(&pq, &astarEntry{point: n, g: candidateG, h: h, f: candidateG + h, moveRank: rank})
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
