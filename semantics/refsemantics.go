package semantics

import (
	"github.com/tchecker-go/tchecker/dbm"
	"github.com/tchecker-go/tchecker/refdbm"
)

// RefOptions carries the RefDBM-specific semantics parameters threaded
// through spec.md §4.3 and SPEC_FULL.md's refzg.hh-derived supplement: per-
// process delay permission before and after the transition, the subset of
// reference clocks to synchronize between guard and reset, and the spread
// bound enforced at the end.
type RefOptions struct {
	SrcDelayAllowed []bool
	SyncRefclocks   []int
	TgtDelayAllowed []bool
	Spread          int32
}

// boolsToIndices converts a per-reference-clock permission bitset to the
// explicit index list refdbm's operations take (nil means "all of l's
// reference clocks").
func boolsToIndices(allowed []bool) []int {
	if allowed == nil {
		return nil
	}
	out := []int{}
	for i, ok := range allowed {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// RefTransition is the already-resolved (globally-indexed) input to
// RefNext: the flat clock-constraint/reset containers ta.System.Next
// produces for one chosen vedge, after ta.ClockLayout has mapped every
// process-local clock index to its RefDBM global index.
type RefTransition struct {
	SrcInvariant []refdbm.ClockConstraint
	Guard        []refdbm.ClockConstraint
	Reset        []refdbm.ClockReset
	TgtInvariant []refdbm.ClockConstraint
}

// RefNext applies Flavour's RefDBM contract to d and t, in order: intersect
// src_invariant; intersect guard; synchronize sync_refclocks; apply resets;
// intersect tgt_invariant; then (if Elapsed) asynchronous_open_up with
// tgt_delay_allowed; finally bound_spread (spec.md §4.3).
func RefNext(d *dbm.DBM, l refdbm.Layout, t RefTransition, opts RefOptions, f Flavour) (*dbm.DBM, error) {
	cur, err := refdbm.ConstrainAll(d, l, t.SrcInvariant)
	if err != nil || cur.IsEmpty() {
		return cur, err
	}
	cur, err = refdbm.ConstrainAll(cur, l, t.Guard)
	if err != nil || cur.IsEmpty() {
		return cur, err
	}
	cur, err = refdbm.Synchronize(cur, l, opts.SyncRefclocks)
	if err != nil || cur.IsEmpty() {
		return cur, err
	}
	cur = refdbm.ResetAll(cur, l, t.Reset)
	cur, err = refdbm.ConstrainAll(cur, l, t.TgtInvariant)
	if err != nil || cur.IsEmpty() {
		return cur, err
	}
	if f == Elapsed {
		cur = refdbm.AsynchronousOpenUp(cur, l, boolsToIndices(opts.TgtDelayAllowed))
	}
	return refdbm.BoundSpread(cur, l, opts.Spread, nil)
}

// RefInitial builds the RefDBM zone of an initial state: universal-positive
// over l, intersected with tgt_invariant, then (if Elapsed)
// asynchronous_open_up with tgt_delay_allowed, then bound-spread (spec.md
// §4.3 "Initial variants").
func RefInitial(l refdbm.Layout, tgtInvariant []refdbm.ClockConstraint, opts RefOptions, f Flavour) (*dbm.DBM, error) {
	cur, err := refdbm.ConstrainAll(refdbm.UniversalPositive(l), l, tgtInvariant)
	if err != nil || cur.IsEmpty() {
		return cur, err
	}
	if f == Elapsed {
		cur = refdbm.AsynchronousOpenUp(cur, l, boolsToIndices(opts.TgtDelayAllowed))
	}
	return refdbm.BoundSpread(cur, l, opts.Spread, nil)
}
