package semantics

// Flavour selects standard or elapsed semantics (spec.md §4.3).
type Flavour uint8

const (
	// Standard applies src_invariant, guard, reset, tgt_invariant in
	// order, with no time-elapse step.
	Standard Flavour = iota
	// Elapsed additionally lets time elapse after tgt_invariant.
	Elapsed
)

func (f Flavour) String() string {
	if f == Elapsed {
		return "elapsed"
	}
	return "standard"
}
