package order

import (
	"sort"

	"github.com/mrutjes/gridrouter/gate"
	"github.com/mrutjes/gridrouter/netlist"
)

// Distance orders pairs by ascending 2D Manhattan distance between
// their two gates (z is ignored, since gates always sit at z=0),
// routing short, easy nets first (spec.md §4.2, §4.5). Ties are
// broken by an independent shuffle per variation, mirroring the
// original's sort_multiple_netlist_distance.
type Distance struct {
	base       netlist.Netlist
	key        map[int]int // pair index -> 2D manhattan distance
	seed       int64
	variations int
	emitted    int
}

// NewDistance builds a Distance source that emits variations
// tie-break shufflings of the ascending-distance order. Variations
// are not deduplicated, so two of them may be identical.
func NewDistance(nl netlist.Netlist, gates *gate.Set, variations int, seed int64) (*Distance, error) {
	if len(nl) == 0 {
		return nil, ErrEmptyNetlist
	}
	if variations < 1 {
		variations = 1
	}
	key := make(map[int]int, len(nl))
	for i, p := range nl {
		ga, err := gates.ByID(p.A)
		if err != nil {
			return nil, err
		}
		gb, err := gates.ByID(p.B)
		if err != nil {
			return nil, err
		}
		dx := ga.Point.X - gb.Point.X
		if dx < 0 {
			dx = -dx
		}
		dy := ga.Point.Y - gb.Point.Y
		if dy < 0 {
			dy = -dy
		}
		key[i] = dx + dy
	}
	return &Distance{base: nl.Clone(), key: key, seed: seed, variations: variations}, nil
}

// Next returns the next tie-break variation of the ascending-distance
// ordering, or (nil, false) once variations have been emitted.
func (d *Distance) Next() (netlist.Netlist, bool) {
	if d.emitted >= d.variations {
		return nil, false
	}
	idx := make([]int, len(d.base))
	for i := range idx {
		idx[i] = i
	}
	rng := deriveRNG(d.seed, int64(d.emitted))
	shuffleInts(idx, rng)
	sort.SliceStable(idx, func(i, j int) bool {
		return d.key[idx[i]] < d.key[idx[j]]
	})

	out := make(netlist.Netlist, len(d.base))
	for pos, originalIdx := range idx {
		out[pos] = d.base[originalIdx]
	}
	d.emitted++
	return out, true
}

// Feedback is a no-op: distance ranking does not adapt to outcomes.
func (d *Distance) Feedback(netlist.Netlist, int, bool) {}
