// Package netlist models the ordered list of gate pairs that must be
// connected, plus the gate-frequency helper that the cost field and
// the busy-node ordering strategy both use.
package netlist
