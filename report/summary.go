package report

import "github.com/mrutjes/gridrouter/router"

// FromResult builds a Summary from a Controller.Run result. runErr is
// the error Run returned alongside result, if any; only
// router.ErrRunInfeasible is expected here and marks Feasible false.
func FromResult(result *router.Result, runErr error) Summary {
	s := Summary{
		Attempted:   result.Attempts,
		Succeeded:   result.Successes,
		SuccessRate: result.SuccessRate,
		BestCost:    result.BestCost,
		Feasible:    runErr == nil && result.Successes > 0,
	}
	s.Nets = make([]NetOutcome, 0, len(result.BestWires))
	for _, w := range result.BestWires {
		s.Nets = append(s.Nets, NetOutcome{
			GateA:    w.Start.ID,
			GateB:    w.End.ID,
			Segments: w.Len(),
			Points:   w.Points,
		})
		s.TotalSegments += w.Len()
	}
	return s
}
