package netlist

import "errors"

// Sentinel errors for netlist construction.
var (
	// ErrSelfPair indicates a pair connects a gate to itself.
	ErrSelfPair = errors.New("netlist: pair connects a gate to itself")

	// ErrGateIDOutOfRange indicates a pair references an id outside [1, numGates].
	ErrGateIDOutOfRange = errors.New("netlist: gate id out of range")
)
