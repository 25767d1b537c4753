package report

import "github.com/mrutjes/gridrouter/geom"

// NetOutcome is one routed wire in the best attempt.
type NetOutcome struct {
	GateA, GateB int
	Segments     int
	Points       []geom.Point
}

// Summary is the set of outputs spec.md §6 requires the core to
// publish per completed run.
type Summary struct {
	Attempted     int
	Succeeded     int
	SuccessRate   float64
	Feasible      bool
	BestCost      int
	TotalSegments int
	Nets          []NetOutcome
}
