package grid

import "errors"

// Sentinel errors for Grid construction and mutation. These are the
// "geometry violation" class of spec.md §7: in a correct router they
// never surface, and if they do, the commit is rejected and state is
// left unchanged.
var (
	// ErrOutOfBounds indicates a gate or wire point falls outside the grid.
	ErrOutOfBounds = errors.New("grid: point out of bounds")

	// ErrTooShort indicates a wire has fewer than two points.
	ErrTooShort = errors.New("grid: wire must have at least two points")

	// ErrNotUnitStep indicates two consecutive wire points are not a unit step apart.
	ErrNotUnitStep = errors.New("grid: consecutive wire points must be a unit step apart")

	// ErrEndpointNotGate indicates a wire's first or last point is not a registered gate.
	ErrEndpointNotGate = errors.New("grid: wire endpoints must be gates")

	// ErrGateInterior indicates a wire's interior point coincides with a gate.
	ErrGateInterior = errors.New("grid: wire interior point coincides with a gate")

	// ErrSegmentTaken indicates a wire reuses a segment already owned by another wire.
	ErrSegmentTaken = errors.New("grid: segment already used by another wire")

	// ErrWireNotFound indicates RemoveWire was called with a wire the grid does not hold.
	ErrWireNotFound = errors.New("grid: wire not present")
)
