package path

import (
	"github.com/tchecker-go/tchecker/covergraph"
	"github.com/tchecker-go/tchecker/ta"
	"github.com/tchecker-go/tchecker/vmeval"
	"github.com/tchecker-go/tchecker/zg"
)

// CounterExample is a fully reconstructed witness: the fired vedges, the
// symbolic states visited during replay, and — when concrete
// reconstruction succeeds — one rational valuation per visited state
// (spec.md §4.8).
type CounterExample struct {
	Vedges      []ta.Vedge
	States      []zg.State
	Valuations  []Valuation
	Concrete    bool
	ConcreteErr error
}

// Extract builds a CounterExample from a covering-reachability witness:
// ExtractVedges to recover the fired sequence, Replay to rebuild the
// symbolic states under standard, non-extrapolating semantics, then
// ConcreteTrace to sample a concrete valuation at each state. A failed
// concrete reconstruction (ErrNoConcretePoint) is not fatal: Extract still
// returns the symbolic path, with Concrete false and ConcreteErr set,
// matching spec.md §4.8's "aborts with a well-formed warning" contract.
func Extract(sys *ta.System, ev vmeval.Evaluator, witness *covergraph.Node) (*CounterExample, error) {
	root, vedges, err := ExtractVedges(witness)
	if err != nil {
		return nil, err
	}
	states, transitions, err := Replay(sys, ev, root.Vloc, vedges)
	if err != nil {
		return nil, err
	}
	ce := &CounterExample{Vedges: vedges, States: states}
	vals, cerr := ConcreteTrace(states, transitions)
	if cerr != nil {
		ce.ConcreteErr = cerr
		return ce, nil
	}
	ce.Valuations = vals
	ce.Concrete = true
	return ce, nil
}
