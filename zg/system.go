package zg

import (
	"fmt"

	"github.com/tchecker-go/tchecker/dbm"
	"github.com/tchecker-go/tchecker/extrapolation"
	"github.com/tchecker-go/tchecker/semantics"
	"github.com/tchecker-go/tchecker/ta"
	"github.com/tchecker-go/tchecker/vmeval"
)

// System is the plain zone-graph transition system over a ta.System: it
// resolves vloc/vedge enumeration through ta, applies semantics' standard
// or elapsed step order to the plain-DBM zone, then (if configured) an
// extrapolation.Operator — applied once, after the transition step, per
// spec.md §4.3.
type System struct {
	TA       *ta.System
	Eval     vmeval.Evaluator
	Flavour  semantics.Flavour
	Extra    extrapolation.Operator[string]
	Sharing  bool
	interner *sharedZones
}

// New builds a System. extra may be nil, meaning no extrapolation is ever
// applied (a concrete zone graph rather than an abstract one). When sharing
// is true, zones are interned through an internal hashtable so that equal
// DBMs collapse to a single shared pointer (spec.md §4.5 "Sharing");
// Next/Initial on a System built with one Sharing setting never mix with
// one built with the other (SPEC_FULL.md Open Question 3).
func New(sys *ta.System, ev vmeval.Evaluator, f semantics.Flavour, extra extrapolation.Operator[string], sharing bool) *System {
	s := &System{TA: sys, Eval: ev, Flavour: f, Extra: extra, Sharing: sharing}
	if sharing {
		s.interner = newSharedZones()
	}
	return s
}

// vlocKey derives the comparable extrapolation key for a vloc: spec.md
// §4.3's "local" extrapolation variants are keyed by discrete state, and a
// []int is not itself comparable.
func vlocKey(v ta.Vloc) string {
	return fmt.Sprint([]int(v))
}

// RequireSharing returns ErrModeMismatch if s was not built with the
// requested Sharing setting. Callers that bind a System to a component
// with its own sharing assumption (package statespace, binding a System to
// a covergraph.CoverGraph meant to store only interned zones) call this
// once at bind time rather than re-checking on every state produced
// (SPEC_FULL.md Open Question 3).
func (s *System) RequireSharing(want bool) error {
	if s.Sharing != want {
		return ErrModeMismatch
	}
	return nil
}

func (s *System) extrapolate(d *dbm.DBM, v ta.Vloc) (*dbm.DBM, error) {
	if s.Extra == nil {
		return d, nil
	}
	return s.Extra.Extrapolate(d, vlocKey(v))
}

func (s *System) share(d *dbm.DBM) *dbm.DBM {
	if !s.Sharing {
		return d
	}
	return s.interner.intern(d)
}

// Initial enumerates every initial State of the underlying ta.System,
// keeping any whose integer-variable invariant failed as a Status-only
// result (InitialResult.Status reports the outcome either way, but only
// ta.OK ones carry a usable Zone).
func (s *System) Initial() ([]InitialResult, error) {
	vlocs, err := s.TA.InitialVlocs()
	if err != nil {
		return nil, err
	}
	dim := s.TA.Layout().PlainDim()
	out := make([]InitialResult, 0, len(vlocs))
	for _, vloc := range vlocs {
		ev := s.TA.Initial(vloc, s.Eval)
		if ev.Status != ta.OK {
			out = append(out, InitialResult{Status: ev.Status})
			continue
		}
		zone, err := semantics.Initial(dim, ev.PlainInvariant, s.Flavour)
		if err != nil {
			return nil, err
		}
		if zone.IsEmpty() {
			out = append(out, InitialResult{Status: ta.ClocksSrcInvariantViolated})
			continue
		}
		zone, err = s.extrapolate(zone, vloc)
		if err != nil {
			return nil, err
		}
		out = append(out, InitialResult{
			State:  State{Vloc: vloc, IntVal: ev.IntVal, Zone: s.share(zone)},
			Status: ta.OK,
		})
	}
	return out, nil
}

// Next enumerates every successor of st reachable by a single outgoing
// vedge. As with Initial, a vedge whose evaluation failed is reported
// through NextResult.Status with no usable Zone rather than being silently
// dropped, so callers (package covreach) can distinguish "never existed"
// from "pruned".
func (s *System) Next(st State) ([]NextResult, error) {
	var out []NextResult
	for _, ve := range s.TA.Outgoing(st.Vloc) {
		tr, err := s.TA.Next(st.Vloc, st.IntVal, ve, s.Eval)
		if err != nil {
			return nil, err
		}
		if tr.Status != ta.OK {
			out = append(out, NextResult{Vedge: ve, Status: tr.Status})
			continue
		}
		semTr := semantics.Transition{
			SrcInvariant: tr.PlainSrcInvariant,
			Guard:        tr.PlainGuard,
			Reset:        tr.PlainReset,
			TgtInvariant: tr.PlainTgtInvariant,
		}
		zone, err := semantics.Next(st.Zone, semTr, s.Flavour)
		if err != nil {
			return nil, err
		}
		if zone.IsEmpty() {
			out = append(out, NextResult{Vedge: ve, Status: ta.ClocksGuardViolated})
			continue
		}
		tgtVloc := ta.TargetVloc(st.Vloc, ve, s.TA.Processes)
		zone, err = s.extrapolate(zone, tgtVloc)
		if err != nil {
			return nil, err
		}
		out = append(out, NextResult{
			Vedge:  ve,
			State:  State{Vloc: tgtVloc, IntVal: tr.NextIntVal, Zone: s.share(zone)},
			Status: ta.OK,
		})
	}
	return out, nil
}
