// Package costfield precomputes the per-cell soft cost map used by
// the cost-aware pathfinders (Lee and A*). Construction paints
// concentric stencils around busy gates and then biases the whole
// grid so peripheral cells are cheaper than central ones — see
// spec.md §4.2 and DESIGN.md's Open Questions for why the stencil
// tiers are allowed to overwrite one another.
package costfield
