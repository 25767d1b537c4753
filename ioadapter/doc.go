// Package ioadapter reads gate and netlist CSV files and writes a
// run's report.Summary back out as CSV (spec.md §6's external
// interfaces). It is a thin collaborator at the edge of the engine:
// nothing in gate, netlist, grid, pathfind, order, or router imports
// it, so the core stays usable against any future input format.
package ioadapter
