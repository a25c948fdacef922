package refzg

import (
	"github.com/tchecker-go/tchecker/semantics"
	"github.com/tchecker-go/tchecker/ta"
	"github.com/tchecker-go/tchecker/vmeval"
)

// System is the reference-clock zone-graph transition system over a
// ta.System: vloc/vedge enumeration is delegated to ta, the RefDBM zone
// evolves through semantics.RefNext/RefInitial under a fixed RefOptions
// (spread bound, synchronized/delay-allowed reference clocks), and — unlike
// zg.System — no extrapolation operator is ever applied (spec.md §4.3).
type System struct {
	TA      *ta.System
	Eval    vmeval.Evaluator
	Flavour semantics.Flavour
	Options semantics.RefOptions
}

// New builds a System over sys's RefDBM clock layout.
func New(sys *ta.System, ev vmeval.Evaluator, f semantics.Flavour, opts semantics.RefOptions) *System {
	return &System{TA: sys, Eval: ev, Flavour: f, Options: opts}
}

// Initial enumerates every initial State, mirroring ta.System.InitialVlocs.
func (s *System) Initial() ([]InitialResult, error) {
	vlocs, err := s.TA.InitialVlocs()
	if err != nil {
		return nil, err
	}
	layout := s.TA.Layout().RefLayout()
	out := make([]InitialResult, 0, len(vlocs))
	for _, vloc := range vlocs {
		ev := s.TA.Initial(vloc, s.Eval)
		if ev.Status != ta.OK {
			out = append(out, InitialResult{Status: ev.Status})
			continue
		}
		zone, err := semantics.RefInitial(layout, ev.RefInvariant, s.Options, s.Flavour)
		if err != nil {
			return nil, err
		}
		if zone.IsEmpty() {
			out = append(out, InitialResult{Status: ta.ClocksSrcInvariantViolated})
			continue
		}
		out = append(out, InitialResult{
			State:  State{Vloc: vloc, IntVal: ev.IntVal, Zone: zone},
			Status: ta.OK,
		})
	}
	return out, nil
}

// Next enumerates every successor of st reachable by a single outgoing
// vedge, mirroring ta.System.Outgoing/Next.
func (s *System) Next(st State) ([]NextResult, error) {
	layout := s.TA.Layout().RefLayout()
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
		refTr := semantics.RefTransition{
			SrcInvariant: tr.RefSrcInvariant,
			Guard:        tr.RefGuard,
			Reset:        tr.RefReset,
			TgtInvariant: tr.RefTgtInvariant,
		}
		zone, err := semantics.RefNext(st.Zone, layout, refTr, s.Options, s.Flavour)
		if err != nil {
			return nil, err
		}
		if zone.IsEmpty() {
			out = append(out, NextResult{Vedge: ve, Status: ta.ClocksGuardViolated})
			continue
		}
		tgtVloc := ta.TargetVloc(st.Vloc, ve, s.TA.Processes)
		out = append(out, NextResult{
			Vedge:  ve,
			State:  State{Vloc: tgtVloc, IntVal: tr.NextIntVal, Zone: zone},
			Status: ta.OK,
		})
	}
	return out, nil
}
