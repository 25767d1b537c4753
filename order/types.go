package order

import "github.com/mrutjes/gridrouter/netlist"

// Source produces a sequence of netlist orderings for the routing
// controller to attempt in turn. Next returns false once the strategy
// has nothing further to offer. Feedback reports the outcome of the
// most recently returned ordering back to the strategy; strategies
// that don't adapt (random, busy-node, distance) may ignore it, while
// QLearning uses it to update its table (spec.md §4.5).
type Source interface {
	Next() (netlist.Netlist, bool)
	Feedback(ordering netlist.Netlist, totalCost int, feasible bool)
}
