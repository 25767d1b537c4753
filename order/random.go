package order

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/mrutjes/gridrouter/netlist"
)

// Random draws distinct uniform-random permutations of a fixed
// netlist, up to min(numSamples, len(nl)!) of them (spec.md §4.5).
// Distinctness is tracked by a seen-signature set rather than
// generating the full permutation space, since n! is intractable for
// anything but tiny netlists.
type Random struct {
	base    netlist.Netlist
	rng     *rand.Rand
	limit   int
	emitted int
	seen    map[string]bool
}

// NewRandom builds a Random source. seed==0 selects the package
// default seed. numSamples is clamped to len(nl)! when the netlist is
// small enough for the factorial to be computed exactly; for larger
// netlists the factorial overflows int and the raw numSamples bound
// is kept as-is.
func NewRandom(nl netlist.Netlist, numSamples int, seed int64) (*Random, error) {
	if len(nl) == 0 {
		return nil, ErrEmptyNetlist
	}
	limit := numSamples
	if f, ok := factorial(len(nl)); ok && f < limit {
		limit = f
	}
	if limit < 1 {
		limit = 1
	}
	return &Random{
		base:  nl.Clone(),
		rng:   rngFromSeed(seed),
		limit: limit,
		seen:  make(map[string]bool, limit),
	}, nil
}

// factorial returns n! and true, or (0, false) if it would overflow a
// signed 63-bit int before reaching n.
func factorial(n int) (int, bool) {
	result := 1
	for i := 2; i <= n; i++ {
		if result > (1<<62)/i {
			return 0, false
		}
		result *= i
	}
	return result, true
}

// Next returns the next distinct random permutation, or (nil, false)
// once limit permutations have been emitted. A bounded number of
// re-draws guards against signature collisions in a small netlist
// exhausting the search before limit is reached.
func (r *Random) Next() (netlist.Netlist, bool) {
	if r.emitted >= r.limit {
		return nil, false
	}
	const maxAttempts = 64
	for attempt := 0; attempt < maxAttempts; attempt++ {
		perm := r.base.Clone()
		shuffleRun(perm, r.rng)
		sig := signature(perm)
		if r.seen[sig] {
			continue
		}
		r.seen[sig] = true
		r.emitted++
		return perm, true
	}
	// Collision-bound exhausted: treat the search as done rather than
	// looping forever on a saturated small permutation space.
	return nil, false
}

// Feedback is a no-op: random sampling does not adapt to outcomes.
func (r *Random) Feedback(netlist.Netlist, int, bool) {}

func signature(nl netlist.Netlist) string {
	var b strings.Builder
	for _, p := range nl {
		b.WriteString(strconv.Itoa(p.A))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(p.B))
		b.WriteByte(';')
	}
	return b.String()
}
