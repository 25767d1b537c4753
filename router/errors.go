package router

import "errors"

// ErrPermutationInfeasible names the case of an ordering that
// exhausts its backtracking budget without routing every pair; it is
// not fatal to the run (spec.md §7's "Permutation infeasibility").
// The controller reports that case as AttemptResult.Feasible == false
// and does not return this error.
var ErrPermutationInfeasible = errors.New("router: permutation infeasible")

// ErrRunInfeasible is returned by Run when every tried ordering failed
// (spec.md §7's "Run infeasibility").
var ErrRunInfeasible = errors.New("router: run infeasible: no ordering routed successfully")
