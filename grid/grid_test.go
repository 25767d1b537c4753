package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrutjes/gridrouter/gate"
	"github.com/mrutjes/gridrouter/geom"
	"github.com/mrutjes/gridrouter/grid"
)

func mustSet(t *testing.T, coords [][2]int) *gate.Set {
	t.Helper()
	s, err := gate.NewSet(coords)
	require.NoError(t, err)
	return s
}

func mustGrid(t *testing.T, w, h int, gates *gate.Set) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h, gates, nil)
	require.NoError(t, err)
	return g
}

// TestGrid_RoundTrip is spec.md §8 scenario 6: place K wires, snapshot,
// remove them in reverse order, and assert the fingerprint matches the
// initial clean-state snapshot.
func TestGrid_RoundTrip(t *testing.T) {
	gates := mustSet(t, [][2]int{{0, 0}, {4, 0}, {0, 4}, {4, 4}})
	g := mustGrid(t, 5, 5, gates)
	g1, _ := gates.ByID(1)
	g2, _ := gates.ByID(2)
	g3, _ := gates.ByID(3)
	g4, _ := gates.ByID(4)

	clean := g.Snapshot()

	w1 := grid.NewWire(g1, g2, []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}})
	w2 := grid.NewWire(g3, g4, []geom.Point{{X: 0, Y: 4}, {X: 1, Y: 4}, {X: 2, Y: 4}, {X: 3, Y: 4}, {X: 4, Y: 4}})

	require.NoError(t, g.TryAddWire(w1))
	require.NoError(t, g.TryAddWire(w2))

	placed := g.Snapshot()
	assert.Equal(t, 2, placed.WireCount)
	assert.NotEqual(t, clean, placed)

	// Strict LIFO: remove w2 then w1, the reverse of placement order.
	require.NoError(t, g.RemoveWire(w2))
	require.NoError(t, g.RemoveWire(w1))

	assert.Equal(t, clean, g.Snapshot())
}

// TestGrid_TryAddWire_AtomicRejection checks that a commit which fails
// validation partway through leaves grid state completely unchanged.
func TestGrid_TryAddWire_AtomicRejection(t *testing.T) {
	gates := mustSet(t, [][2]int{{0, 0}, {2, 0}, {0, 2}, {2, 2}, {1, 0}})
	g := mustGrid(t, 3, 3, gates)
	g1, _ := gates.ByID(1)
	g2, _ := gates.ByID(2)

	before := g.Snapshot()

	// (1,0) is gate id 5's coordinate, so this wire's interior point
	// coincides with a gate and must be rejected.
	bad := grid.NewWire(g1, g2, []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}})
	err := g.TryAddWire(bad)
	require.ErrorIs(t, err, grid.ErrGateInterior)
	assert.Equal(t, before, g.Snapshot())

	// Now place a legitimate wire, then try to add a second wire that
	// reuses one of its segments; the second commit must also leave
	// state unchanged.
	g3, _ := gates.ByID(3)
	g4, _ := gates.ByID(4)
	good := grid.NewWire(g3, g4, []geom.Point{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}})
	require.NoError(t, g.TryAddWire(good))
	afterGood := g.Snapshot()

	reuse := grid.NewWire(g3, g4, []geom.Point{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}})
	err = g.TryAddWire(reuse)
	require.ErrorIs(t, err, grid.ErrSegmentTaken)
	assert.Equal(t, afterGood, g.Snapshot())
}

// TestGrid_CostIdentity verifies total_cost == 300*total_intersections
// + total_segments (spec.md §8) over a grid with a genuine crossing.
func TestGrid_CostIdentity(t *testing.T) {
	gates := mustSet(t, [][2]int{{0, 0}, {2, 2}, {0, 2}, {2, 0}})
	g := mustGrid(t, 3, 3, gates)
	g1, _ := gates.ByID(1)
	g2, _ := gates.ByID(2)
	g3, _ := gates.ByID(3)
	g4, _ := gates.ByID(4)

	w1 := grid.NewWire(g1, g2, []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}})
	w2 := grid.NewWire(g3, g4, []geom.Point{{X: 0, Y: 2}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 0}})

	require.NoError(t, g.TryAddWire(w1))
	require.NoError(t, g.TryAddWire(w2))

	require.Equal(t, 2, g.Occupancy(geom.Point{X: 1, Y: 1}))
	assert.Equal(t, 1, g.TotalIntersections())
	assert.Equal(t, w1.Len()+w2.Len(), g.TotalSegments())
	assert.Equal(t, 300*g.TotalIntersections()+g.TotalSegments(), g.TotalCost())
}

// TestGrid_AddReservation checks that committing a wire computes the
// reservation halo around its interior points without that halo ever
// gating TryAddWire's legality check — the "compute but never consult"
// property carried over from the original implementation.
func TestGrid_AddReservation(t *testing.T) {
	gates := mustSet(t, [][2]int{{0, 0}, {4, 0}})
	g := mustGrid(t, 5, 5, gates)
	g1, _ := gates.ByID(1)
	g2, _ := gates.ByID(2)

	w := grid.NewWire(g1, g2, []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}})
	require.NoError(t, g.TryAddWire(w))

	reservations := g.Reservations()
	require.NotEmpty(t, reservations)
	// Interior point (2,0,0) reserves its y-1/y+1/z+1 halo.
	_, reserved := reservations[geom.Point{X: 2, Y: 1, Z: 0}]
	assert.True(t, reserved)
}
