package netlist

import "fmt"

// Pair is a single required connection between two gate ids.
type Pair struct {
	A, B int
}

// Netlist is the ordered list of pairs to route; order of elements is
// the canonical input order unless an ordering strategy permutes it.
type Netlist []Pair

// New validates raw (a,b) gate-id pairs against numGates and returns
// a Netlist preserving input order. Returns ErrSelfPair or
// ErrGateIDOutOfRange on malformed input.
func New(pairs [][2]int, numGates int) (Netlist, error) {
	nl := make(Netlist, len(pairs))
	for i, p := range pairs {
		a, b := p[0], p[1]
		if a < 1 || a > numGates || b < 1 || b > numGates {
			return nil, fmt.Errorf("pair %d (%d,%d): %w", i, a, b, ErrGateIDOutOfRange)
		}
		if a == b {
			return nil, fmt.Errorf("pair %d: %w", i, ErrSelfPair)
		}
		nl[i] = Pair{A: a, B: b}
	}
	return nl, nil
}

// Clone returns an independent copy, safe for an ordering strategy to
// permute in place without aliasing the caller's slice.
func (nl Netlist) Clone() Netlist {
	out := make(Netlist, len(nl))
	copy(out, nl)
	return out
}

// Frequency counts how many times each gate id appears across every
// pair in the netlist (spec.md §4.2's freq(g)).
func (nl Netlist) Frequency() map[int]int {
	freq := make(map[int]int, 2*len(nl))
	for _, p := range nl {
		freq[p.A]++
		freq[p.B]++
	}
	return freq
}
