package pathfind

import "errors"

// ErrNoPath is the routing-failure class of spec.md §7: the
// pathfinder exhausted its search without reaching the end gate. It
// is recoverable — the controller pops the last committed wire and
// retries.
var ErrNoPath = errors.New("pathfind: no path found")

// ErrSameGate is returned when start and end are the same gate.
var ErrSameGate = errors.New("pathfind: start and end gate are identical")
