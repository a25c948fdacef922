package path

import (
	"github.com/tchecker-go/tchecker/semantics"
	"github.com/tchecker-go/tchecker/ta"
	"github.com/tchecker-go/tchecker/vmeval"
	"github.com/tchecker-go/tchecker/zg"
)

// vedgeEqual compares two Vedge tuples component-wise.
func vedgeEqual(a, b ta.Vedge) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Replay fires vedges, in order, from root's discrete state through a fresh
// zone graph built with standard semantics and no extrapolation (spec.md
// §4.8: "a fresh zone-graph instance configured with standard semantics and
// no extrapolation, mirroring tchecker::zg::compute_symbolic_run"). It
// returns the len(vedges)+1 states visited (including the initial one) and
// the ta.Transition fired at each step, for later backward valuation
// reconstruction.
func Replay(sys *ta.System, ev vmeval.Evaluator, root ta.Vloc, vedges []ta.Vedge) ([]zg.State, []ta.Transition, error) {
	zsys := zg.New(sys, ev, semantics.Standard, nil, false)

	initials, err := zsys.Initial()
	if err != nil {
		return nil, nil, err
	}
	var cur zg.State
	found := false
	for _, init := range initials {
		if init.Status == ta.OK && ta.VlocEqual(init.State.Vloc, root) {
			cur = init.State
			found = true
			break
		}
	}
	if !found {
		return nil, nil, ErrReplayInfeasible
	}

	states := make([]zg.State, 0, len(vedges)+1)
	transitions := make([]ta.Transition, 0, len(vedges))
	states = append(states, cur)

	for _, ve := range vedges {
		nexts, err := zsys.Next(cur)
		if err != nil {
			return nil, nil, err
		}
		var next *zg.NextResult
		for i := range nexts {
			if nexts[i].Status == ta.OK && vedgeEqual(nexts[i].Vedge, ve) {
				next = &nexts[i]
				break
			}
		}
		if next == nil {
			return nil, nil, ErrReplayInfeasible
		}
		tr, err := sys.Next(cur.Vloc, cur.IntVal, ve, ev)
		if err != nil {
			return nil, nil, err
		}
		if tr.Status != ta.OK {
			return nil, nil, ErrReplayInfeasible
		}
		transitions = append(transitions, tr)
		cur = next.State
		states = append(states, cur)
	}
	return states, transitions, nil
}
