package order

import (
	"sort"

	"github.com/mrutjes/gridrouter/netlist"
)

// BusyNode orders pairs by descending combined gate frequency
// (freq(A)+freq(B)), so nets touching the busiest gates route first
// (spec.md §4.2, §4.5). Ties are broken by an independent shuffle per
// variation, mirroring the original's sort_multiple_netlist_busy_nodes
// rather than a single fixed tie order.
type BusyNode struct {
	base       netlist.Netlist
	key        map[int]int // pair index -> freq(A)+freq(B), computed once
	seed       int64
	variations int
	emitted    int
}

// NewBusyNode builds a BusyNode source that emits variations
// tie-break shufflings of the descending-frequency order. Variations
// are not deduplicated, so two of them may be identical.
func NewBusyNode(nl netlist.Netlist, variations int, seed int64) (*BusyNode, error) {
	if len(nl) == 0 {
		return nil, ErrEmptyNetlist
	}
	if variations < 1 {
		variations = 1
	}
	freq := nl.Frequency()
	key := make(map[int]int, len(nl))
	for i, p := range nl {
		key[i] = freq[p.A] + freq[p.B]
	}
	return &BusyNode{base: nl.Clone(), key: key, seed: seed, variations: variations}, nil
}

// Next returns the next tie-break variation of the descending-frequency
// ordering, or (nil, false) once variations have been emitted.
func (b *BusyNode) Next() (netlist.Netlist, bool) {
	if b.emitted >= b.variations {
		return nil, false
	}
	idx := make([]int, len(b.base))
	for i := range idx {
		idx[i] = i
	}
	rng := deriveRNG(b.seed, int64(b.emitted))
	shuffleInts(idx, rng)
	sort.SliceStable(idx, func(i, j int) bool {
		return b.key[idx[i]] > b.key[idx[j]]
	})

	out := make(netlist.Netlist, len(b.base))
	for pos, originalIdx := range idx {
		out[pos] = b.base[originalIdx]
	}
	b.emitted++
	return out, true
}

// Feedback is a no-op: frequency ranking does not adapt to outcomes.
func (b *BusyNode) Feedback(netlist.Netlist, int, bool) {}
