package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrutjes/gridrouter/gate"
	"github.com/mrutjes/gridrouter/grid"
	"github.com/mrutjes/gridrouter/pathfind"
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

// TestManhattan_TrivialConnect is spec.md §8 scenario 1.
func TestManhattan_TrivialConnect(t *testing.T) {
	gates := mustSet(t, [][2]int{{0, 0}, {2, 0}})
	g := mustGrid(t, 5, 5, gates)
	g1, _ := gates.ByID(1)
	g2, _ := gates.ByID(2)

	w, err := pathfind.Manhattan{}.Route(g1, g2, g)
	require.NoError(t, err)
	require.NoError(t, g.TryAddWire(w))

	assert.Equal(t, 2, w.Len())
	assert.Equal(t, 0, g.TotalIntersections())
	assert.Equal(t, 2, g.TotalCost())
}

// TestAStar_BypassUpperLayer is spec.md §8 scenario 2.
func TestAStar_BypassUpperLayer(t *testing.T) {
	gates := mustSet(t, [][2]int{{0, 1}, {2, 1}, {1, 1}})
	g := mustGrid(t, 3, 3, gates)
	g1, _ := gates.ByID(1)
	g2, _ := gates.ByID(2)

	w, err := pathfind.AStar{}.Route(g1, g2, g)
	require.NoError(t, err)
	assert.LessOrEqual(t, w.Len(), 5)
	require.NoError(t, g.TryAddWire(w))
	assert.Equal(t, 0, g.TotalIntersections())
}

// TestLee_ForcedCrossing is spec.md §8 scenario 3.
func TestLee_ForcedCrossing(t *testing.T) {
	gates := mustSet(t, [][2]int{{0, 0}, {2, 2}, {0, 2}, {2, 0}})
	g := mustGrid(t, 3, 3, gates)
	g1, _ := gates.ByID(1)
	g2, _ := gates.ByID(2)
	g3, _ := gates.ByID(3)
	g4, _ := gates.ByID(4)

	w1, err := pathfind.Lee{}.Route(g1, g2, g)
	require.NoError(t, err)
	require.NoError(t, g.TryAddWire(w1))

	w2, err := pathfind.Lee{}.Route(g3, g4, g)
	require.NoError(t, err)
	require.NoError(t, g.TryAddWire(w2))

	assert.GreaterOrEqual(t, g.TotalIntersections(), 1)
	assert.GreaterOrEqual(t, g.TotalCost(), 300+g.TotalSegments())
}

func TestDFS_SimpleConnect(t *testing.T) {
	gates := mustSet(t, [][2]int{{0, 0}, {3, 3}})
	g := mustGrid(t, 5, 5, gates)
	g1, _ := gates.ByID(1)
	g2, _ := gates.ByID(2)

	w, err := pathfind.DFS{}.Route(g1, g2, g)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, w.Len(), 6) // at least the Manhattan distance
	require.NoError(t, g.TryAddWire(w))
}

func TestRouters_SameGateRejected(t *testing.T) {
	gates := mustSet(t, [][2]int{{0, 0}, {1, 0}})
	g := mustGrid(t, 3, 3, gates)
	g1, _ := gates.ByID(1)

	for _, r := range []pathfind.Router{pathfind.Manhattan{}, pathfind.DFS{}, pathfind.Lee{}, pathfind.AStar{}} {
		_, err := r.Route(g1, g1, g)
		assert.ErrorIs(t, err, pathfind.ErrSameGate)
	}
}

func TestAStar_EmptyGridRoutesWithoutIntersections(t *testing.T) {
	gates := mustSet(t, [][2]int{{0, 0}, {4, 0}})
	g := mustGrid(t, 5, 5, gates)
	g1, _ := gates.ByID(1)
	g2, _ := gates.ByID(2)

	w, err := pathfind.AStar{}.Route(g1, g2, g)
	require.NoError(t, err)
	require.NoError(t, g.TryAddWire(w))
	assert.Equal(t, 0, g.TotalIntersections())
}
