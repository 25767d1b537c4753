// Package router drives the per-ordering routing attempt and the
// multi-attempt outer loop described in spec.md §4.6: for each
// candidate netlist ordering it resets the grid, routes pairs in
// sequence with strict-LIFO backtracking on failure, and tracks the
// best (lowest-cost) fully routed attempt across every ordering tried.
package router
