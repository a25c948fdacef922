package path

import (
	"math/big"

	"github.com/tchecker-go/tchecker/ta"
	"github.com/tchecker-go/tchecker/zg"
)

// ConcreteTrace reconstructs one rational valuation per visited node by
// walking the replayed states backward (spec.md §4.8). The zone graph
// replay is forced to standard semantics (package zg never elapses time in
// that flavour — see semantics.Next), so there is no time-elapse term to
// search for between consecutive nodes: reconstruction is reset inversion
// alone, at each step solving
//
//	pre[r.Y] = post[r.X] - r.K   for every fired reset (r.X, r.Y, r.K)
//
// A reset's target clock r.X is otherwise unconstrained by the transition
// (its pre-firing value is discarded), so it is filled in from the
// predecessor zone directly rather than inverted.
func ConcreteTrace(states []zg.State, transitions []ta.Transition) ([]Valuation, error) {
	n := len(states)
	if n == 0 {
		return nil, nil
	}
	last, err := SamplePoint(states[n-1].Zone)
	if err != nil {
		return nil, err
	}
	result := make([]Valuation, n)
	result[n-1] = last

	for i := n - 2; i >= 0; i-- {
		vPost := result[i+1]
		zone := states[i].Zone
		dim := len(vPost)
		resets := transitions[i].PlainReset

		known := make(Valuation, dim)
		for j := 0; j < dim; j++ {
			known[j] = new(big.Rat).Set(vPost[j])
		}

		free := make(map[int]bool)
		for _, r := range resets {
			free[r.X] = true
		}
		for _, r := range resets {
			known[r.Y] = new(big.Rat).Sub(vPost[r.X], new(big.Rat).SetInt64(int64(r.K)))
			delete(free, r.Y)
		}

		seed := samplePerClock(zone)
		candidate := make(Valuation, dim)
		candidate[0] = zero()
		for j := 1; j < dim; j++ {
			if free[j] {
				candidate[j] = seed[j]
			} else {
				candidate[j] = known[j]
			}
		}
		if !validate(zone, candidate) {
			return nil, ErrNoConcretePoint
		}
		result[i] = candidate
	}
	return result, nil
}
