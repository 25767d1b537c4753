// Package pathfind provides four interchangeable per-pair routers —
// Manhattan, depth-first, Lee (BFS wavefront), and A* — behind one
// capability: Route(start, end, grid) -> wire | ErrNoPath. A router
// never mutates the grid; it borrows occupancy, the segment set, and
// the cost field read-only and returns a newly owned *grid.Wire for
// the caller to commit or discard (spec.md §4.4, §9).
package pathfind
