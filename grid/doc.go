// Package grid owns the single mutable routing state shared by a
// controller attempt: per-cell occupancy, the set of used segments,
// and the list of placed wires. All mutation goes through TryAddWire
// and RemoveWire, which keep the invariants of spec.md §3 — no two
// wires share a segment, no wire's interior touches a gate, occupancy
// always equals the number of wires passing through a cell — intact.
//
// A Grid is exclusively owned by one routing attempt at a time.
// Pathfinders only read it (cost, occupancy, segment membership);
// only the controller commits or rolls back a wire.
package grid
