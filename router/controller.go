package router

import (
	"github.com/mrutjes/gridrouter/costfield"
	"github.com/mrutjes/gridrouter/gate"
	"github.com/mrutjes/gridrouter/grid"
	"github.com/mrutjes/gridrouter/netlist"
	"github.com/mrutjes/gridrouter/order"
	"github.com/mrutjes/gridrouter/pathfind"
)

// defaultMaxBacktracks bounds backtrack steps per ordering when the
// caller doesn't set WithMaxBacktracks; generous enough for small
// netlists without letting a pathological one spin indefinitely.
const defaultMaxBacktracks = 64

// New builds a Controller over gates and the canonical (unpermuted)
// netlist nl, using r as the pathfinder for every attempt. The cost
// field is built once from nl's frequency counts, which are order
// independent, and reused across every ordering Run tries.
func New(gates *gate.Set, nl netlist.Netlist, r pathfind.Router, opts ...Option) *Controller {
	width, height := gates.Bounds()
	field := costfield.New(gates, nl, width, height)

	c := &Controller{
		gates:         gates,
		field:         field,
		router:        r,
		maxBacktracks: defaultMaxBacktracks,
		logger:        nopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run drives src's orderings one at a time against a single reused
// grid, resetting it to a clean state between attempts (spec.md
// §4.6.1a), and returns the aggregate outcome. It returns
// ErrRunInfeasible if no ordering routed successfully, still
// returning a non-nil Result with the attempt count.
func (c *Controller) Run(src order.Source) (*Result, error) {
	width, height := c.gates.Bounds()
	g, err := grid.New(width, height, c.gates, c.field)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	first := true
	for {
		ordering, ok := src.Next()
		if !ok {
			break
		}
		if !first {
			g.Reset(c.field)
		}
		first = false

		attempt := c.attemptOrdering(ordering, g)
		src.Feedback(ordering, attempt.Cost, attempt.Feasible)
		result.Attempts++

		c.logger.Printf("router: attempt %d feasible=%t cost=%d", result.Attempts, attempt.Feasible, attempt.Cost)

		if !attempt.Feasible {
			continue
		}
		result.Successes++
		if result.BestWires == nil || attempt.Cost < result.BestCost {
			result.BestCost = attempt.Cost
			result.BestWires = attempt.Wires
			result.BestOrder = ordering
		}
	}

	if result.Attempts > 0 {
		result.SuccessRate = float64(result.Successes) / float64(result.Attempts)
	}
	if result.Successes == 0 {
		return result, ErrRunInfeasible
	}
	return result, nil
}

// attemptOrdering routes ordering's pairs in sequence against g,
// backtracking by strict LIFO removal of the most recently committed
// wire whenever the current pair fails to route or to commit
// (spec.md §4.6.1b). The current pair is retried first and the popped
// pair is queued right after it, so a feasible attempt holds a wire
// for every pair. It declares the ordering infeasible once the
// backtrack budget is exhausted or there is nothing left to remove.
func (c *Controller) attemptOrdering(ordering netlist.Netlist, g *grid.Grid) AttemptResult {
	placed := make([]*grid.Wire, 0, len(ordering))
	pending := ordering.Clone()
	backtracks := 0

	for len(pending) > 0 {
		pair := pending[0]
		ga, errA := c.gates.ByID(pair.A)
		gb, errB := c.gates.ByID(pair.B)
		if errA != nil || errB != nil {
			return AttemptResult{Ordering: ordering, Feasible: false}
		}

		if wire, routeErr := c.router.Route(ga, gb, g); routeErr == nil {
			if g.TryAddWire(wire) == nil {
				placed = append(placed, wire)
				pending = pending[1:]
				continue
			}
		}

		backtracks++
		if len(placed) == 0 || backtracks > c.maxBacktracks {
			return AttemptResult{Ordering: ordering, Feasible: false}
		}
		last := placed[len(placed)-1]
		placed = placed[:len(placed)-1]
		g.RemoveWire(last)
		pending = append(netlist.Netlist{pair, {A: last.Start.ID, B: last.End.ID}}, pending[1:]...)
	}

	return AttemptResult{Ordering: ordering, Feasible: true, Wires: placed, Cost: g.TotalCost()}
}
