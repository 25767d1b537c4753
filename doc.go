// Package gridrouter routes wires between fixed gates on a
// discrete 3D grid.
//
// A run loads a set of gates and a netlist of required connections,
// then tries one or more orderings of that netlist against a chosen
// pathfinder, backtracking on routing failures and tracking the
// lowest-cost fully routed attempt. The grid enforces unit-step,
// axis-aligned wires that never pass through a gate's interior and
// never reuse a segment; cost is 300 per extra pass over an occupied
// cell plus one per wire segment.
//
// Subpackages:
//
//	geom/      — grid points, segments, and distance
//	gate/      — the fixed terminal set
//	netlist/   — required connections between gates
//	costfield/ — static per-cell routing cost around busy gates
//	grid/      — the mutable routing state: wires, occupancy, segments
//	pathfind/  — Manhattan, DFS, Lee, and A* routers
//	order/     — netlist ordering strategies, including tabular Q-learning
//	router/    — the per-ordering and multi-attempt controller
//	report/    — run summaries
//	ioadapter/ — CSV input/output
//	cmd/routewire/ — the CLI
package gridrouter
