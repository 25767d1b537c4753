package gate

import (
	"fmt"

	"github.com/mrutjes/gridrouter/geom"
)

// Gate is an immutable terminal on the grid's base layer (z=0).
// ID is 1-based and assigned by row order in the input file.
type Gate struct {
	ID    int
	Point geom.Point // Z is always 0
}

// String renders the gate for log and error messages.
func (g Gate) String() string {
	return fmt.Sprintf("gate#%d(%d,%d)", g.ID, g.Point.X, g.Point.Y)
}

// Set is an ordered, immutable collection of gates, indexed both by
// 1-based id and by coordinate for O(1) membership checks.
type Set struct {
	byID    []Gate // byID[i] has ID == i+1
	byPoint map[geom.Point]Gate
}

// NewSet builds a Set from gate coordinates in input order; the i-th
// coordinate becomes gate id i+1. Returns ErrNegativeCoordinate or
// ErrDuplicateCoordinate on malformed input.
func NewSet(coords [][2]int) (*Set, error) {
	s := &Set{
		byID:    make([]Gate, 0, len(coords)),
		byPoint: make(map[geom.Point]Gate, len(coords)),
	}
	for i, c := range coords {
		x, y := c[0], c[1]
		if x < 0 || y < 0 {
			return nil, fmt.Errorf("gate %d: %w", i+1, ErrNegativeCoordinate)
		}
		p := geom.Point{X: x, Y: y, Z: 0}
		if _, exists := s.byPoint[p]; exists {
			return nil, fmt.Errorf("gate %d at (%d,%d): %w", i+1, x, y, ErrDuplicateCoordinate)
		}
		g := Gate{ID: i + 1, Point: p}
		s.byID = append(s.byID, g)
		s.byPoint[p] = g
	}
	return s, nil
}

// Len returns the number of gates in the set.
func (s *Set) Len() int { return len(s.byID) }

// ByID returns the gate with the given 1-based id.
func (s *Set) ByID(id int) (Gate, error) {
	if id < 1 || id > len(s.byID) {
		return Gate{}, fmt.Errorf("%w: %d", ErrIDOutOfRange, id)
	}
	return s.byID[id-1], nil
}

// All returns every gate in input order. The returned slice is a
// fresh copy; mutating it does not affect the Set.
func (s *Set) All() []Gate {
	out := make([]Gate, len(s.byID))
	copy(out, s.byID)
	return out
}

// At reports whether a gate occupies point p and returns it.
func (s *Set) At(p geom.Point) (Gate, bool) {
	g, ok := s.byPoint[p]
	return g, ok
}

// IsGate reports whether p coincides with any gate.
func (s *Set) IsGate(p geom.Point) bool {
	_, ok := s.byPoint[p]
	return ok
}

// Bounds derives the grid's width and height as 1+the maximum x and y
// coordinate among the gates (spec.md §6's grid dimensioning rule).
// Returns (0,0) for an empty set.
func (s *Set) Bounds() (width, height int) {
	for _, g := range s.byID {
		if g.Point.X+1 > width {
			width = g.Point.X + 1
		}
		if g.Point.Y+1 > height {
			height = g.Point.Y + 1
		}
	}
	return width, height
}
