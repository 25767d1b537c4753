package order

import "errors"

// ErrExhausted names the state of a strategy with no further
// orderings to offer. Source.Next reports that state by returning
// false, so no Source in this package returns this error.
var ErrExhausted = errors.New("order: exhausted")

// ErrEmptyNetlist is returned by a constructor given a zero-length
// netlist, since no ordering strategy can produce a permutation of
// nothing.
var ErrEmptyNetlist = errors.New("order: empty netlist")
