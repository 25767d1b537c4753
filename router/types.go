package router

import (
	"github.com/mrutjes/gridrouter/costfield"
	"github.com/mrutjes/gridrouter/gate"
	"github.com/mrutjes/gridrouter/grid"
	"github.com/mrutjes/gridrouter/netlist"
	"github.com/mrutjes/gridrouter/pathfind"
)

// AttemptResult is the outcome of routing one candidate ordering.
type AttemptResult struct {
	Ordering netlist.Netlist
	Feasible bool
	Wires    []*grid.Wire
	Cost     int
}

// Result is the outcome of a full Run across every ordering an
// order.Source produced (spec.md §4.6 steps 2-3).
type Result struct {
	Attempts    int
	Successes   int
	BestCost    int
	BestWires   []*grid.Wire
	BestOrder   netlist.Netlist
	SuccessRate float64
}

// Controller owns the shared gate set and cost field template across
// ordering attempts, and drives one *grid.Grid through each attempt
// in turn (spec.md §5: the controller is the grid's sole owner and
// sole mutator for the duration of an attempt).
type Controller struct {
	gates        *gate.Set
	field        *costfield.Field
	router       pathfind.Router
	maxBacktracks int
	logger       Logger
}

// Logger is the minimal logging capability Controller needs; *log.Logger
// satisfies it directly, and callers may substitute anything else with
// a Printf method (spec.md's ambient logging stack).
type Logger interface {
	Printf(format string, v ...interface{})
}

// nopLogger discards every message; it is the Controller's default so
// logging is always opt-in.
type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}
