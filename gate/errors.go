package gate

import "errors"

// Sentinel errors for gate set construction and lookup.
var (
	// ErrDuplicateCoordinate indicates two gates share the same (x,y).
	ErrDuplicateCoordinate = errors.New("gate: duplicate coordinate")

	// ErrNegativeCoordinate indicates a gate coordinate is negative.
	ErrNegativeCoordinate = errors.New("gate: coordinate must be non-negative")

	// ErrIDOutOfRange indicates a requested gate id is outside [1, len(gates)].
	ErrIDOutOfRange = errors.New("gate: id out of range")
)
