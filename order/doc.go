// Package order generates the sequence of netlist permutations the
// routing controller tries. Four strategies are provided — uniform
// random sampling, busy-node descending sort, distance ascending
// sort, and a tabular Q-learning policy — all behind one Source
// capability so the controller does not need to special-case the
// adaptive strategy (spec.md §4.5).
//
// Determinism is centralized in rng.go, following the teacher's own
// policy of a single RNG factory per package rather than a
// package-level *rand.Rand: a fixed seed always reproduces the same
// sequence of orderings.
package order
