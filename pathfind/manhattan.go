package pathfind

import (
	"github.com/mrutjes/gridrouter/gate"
	"github.com/mrutjes/gridrouter/geom"
	"github.com/mrutjes/gridrouter/grid"
)

// Manhattan is the baseline router: it walks the full x-axis stretch
// at z=0, then the full y-axis stretch at z=0, with no obstacle
// checking whatsoever. Used only for trivial problems or as a sanity
// baseline (spec.md §4.4).
type Manhattan struct{}

// Route never fails except on the shared start==end precondition.
func (Manhattan) Route(start, end gate.Gate, _ *grid.Grid) (*grid.Wire, error) {
	if err := checkPreconditions(start, end); err != nil {
		return nil, err
	}

	x1, y1 := start.Point.X, start.Point.Y
	x2, y2 := end.Point.X, end.Point.Y

	points := []geom.Point{{X: x1, Y: y1, Z: 0}}
	if x1 != x2 {
		step := 1
		if x2 < x1 {
			step = -1
		}
		for x := x1 + step; ; x += step {
			points = append(points, geom.Point{X: x, Y: y1, Z: 0})
			if x == x2 {
				break
			}
		}
	}
	if y1 != y2 {
		step := 1
		if y2 < y1 {
			step = -1
		}
		for y := y1 + step; ; y += step {
			points = append(points, geom.Point{X: x2, Y: y, Z: 0})
			if y == y2 {
				break
			}
		}
	}

	return grid.NewWire(start, end, points), nil
}
