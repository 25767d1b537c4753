package costfield_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrutjes/gridrouter/costfield"
	"github.com/mrutjes/gridrouter/gate"
	"github.com/mrutjes/gridrouter/geom"
	"github.com/mrutjes/gridrouter/netlist"
)

// edgeBiasAt mirrors costfield's applyEdgeBias formula: 2x the minimum
// distance from (x,y,z) to any of the grid's six boundary planes.
func edgeBiasAt(x, y, z, w, h int) int {
	d := x
	for _, v := range []int{w - 1 - x, y, h - 1 - y, z, geom.Height - 1 - z} {
		if v < d {
			d = v
		}
	}
	return 2 * d
}

// TestNew_Deterministic is spec.md §8 scenario 5: two independent
// constructions of the cost field from a fixed (gates, netlist) yield
// byte-identical maps.
func TestNew_Deterministic(t *testing.T) {
	gates, err := gate.NewSet([][2]int{{0, 0}, {4, 4}, {2, 2}, {1, 3}, {3, 1}, {4, 0}})
	require.NoError(t, err)
	nl, err := netlist.New([][2]int{{1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6}}, 6)
	require.NoError(t, err)

	w, h := gates.Bounds()
	a := costfield.New(gates, nl, w, h)
	b := costfield.New(gates, nl, w, h)

	for z := 0; z < geom.Height; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				p := geom.Point{X: x, Y: y, Z: z}
				require.Equal(t, a.At(p), b.At(p), "mismatch at %v", p)
			}
		}
	}
}

// TestNew_HighTierIsOverwrittenByMedium exercises the documented tier
// cascade: High is an independent "if", but its threshold (freq>=4 for
// one of its own disjuncts, freq>=5 for another) always also satisfies
// Medium's looser freq>=4 disjunct, so Medium's elif branch repaints
// the same shell-1 cells with its own (smaller) cost right after High.
// This is the cascade's documented, non-simplified behavior, not a bug
// this test is trying to catch.
func TestNew_HighTierIsOverwrittenByMedium(t *testing.T) {
	// Gate 1 at (4,4) on a 9x9 board: interior on x/y (free=5, since
	// z-1 is always out of bounds for a z=0 gate), freq(1)=5 via five
	// distinct pairs, so both High (freq>=5) and Medium (freq>=4) fire.
	gates, err := gate.NewSet([][2]int{{4, 4}, {0, 0}, {8, 0}, {0, 8}, {8, 8}, {4, 0}})
	require.NoError(t, err)
	nl, err := netlist.New([][2]int{{1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6}}, 6)
	require.NoError(t, err)

	f := costfield.New(gates, nl, 9, 9)

	shell1 := geom.Point{X: 4, Y: 4, Z: 1} // highShell1/medShell1 share this offset
	bias := edgeBiasAt(4, 4, 1, 9, 9)

	const medShell1Cost = 50
	const highShell1Cost = 150
	got := f.At(shell1)
	assert.Equal(t, medShell1Cost+bias, got)
	assert.NotEqual(t, highShell1Cost+bias, got)
}

// TestNew_LowTierAppliesAlone exercises a gate that triggers only the
// Low tier: freq=3 with free=5 (interior, away from the x/y boundary)
// fails every High and Medium disjunct but satisfies Low's
// unconditional freq>=3 branch.
func TestNew_LowTierAppliesAlone(t *testing.T) {
	gates, err := gate.NewSet([][2]int{{4, 4}, {0, 0}, {8, 0}, {0, 8}})
	require.NoError(t, err)
	nl, err := netlist.New([][2]int{{1, 2}, {1, 3}, {1, 4}}, 4)
	require.NoError(t, err)

	f := costfield.New(gates, nl, 9, 9)

	shell1 := geom.Point{X: 4, Y: 4, Z: 1}
	bias := edgeBiasAt(4, 4, 1, 9, 9)

	const lowShell1Cost = 40
	assert.Equal(t, lowShell1Cost+bias, f.At(shell1))
}
