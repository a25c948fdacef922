package ta

import (
	"fmt"

	"github.com/tchecker-go/tchecker/dbm"
	"github.com/tchecker-go/tchecker/intvar"
	"github.com/tchecker-go/tchecker/refdbm"
	"github.com/tchecker-go/tchecker/vmeval"
)

// System is a network of processes composed by declared synchronisation
// vectors, plus the integer-variable declarations shared across the
// network (spec.md §3, §4.4).
type System struct {
	Processes   []Process
	Syncs       []SyncVector
	IntVars     *intvar.System
	layout      ClockLayout
	initialized bool
}

// NewSystem builds a System and precomputes its ClockLayout. With empty
// procs, InitialVlocs returns no values; if some process declares no
// initial location, it returns ErrNoInitialLocation.
func NewSystem(procs []Process, syncs []SyncVector, ivars *intvar.System) *System {
	return &System{
		Processes:   procs,
		Syncs:       syncs,
		IntVars:     ivars,
		layout:      NewClockLayout(procs),
		initialized: true,
	}
}

// Layout returns the clock layout computed for this network.
func (s *System) Layout() ClockLayout { return s.layout }

// Transition is the tuple (vedge, src_invariant, guard, reset,
// tgt_invariant): flat clock-constraint/reset containers produced by
// evaluating a chosen outgoing value, plus the resulting intvar valuation
// and Status (spec.md §3 "Transition"). Every container is resolved twice
// — once to plain-DBM global indices, once to RefDBM global indices — at
// collection time, since process-local clock addressing (ClockConstraint.X/Y)
// is only meaningful together with the process it came from, which a flat
// container alone no longer carries (package semantics therefore never
// needs to know which process contributed which constraint).
type Transition struct {
	Vedge        Vedge
	SrcInvariant []ClockConstraint
	Guard        []ClockConstraint
	Reset        []ClockReset
	TgtInvariant []ClockConstraint
	NextIntVal   intvar.IntVal
	Status       Status

	PlainSrcInvariant []dbm.Constraint
	PlainGuard        []dbm.Constraint
	PlainReset        []dbm.Reset
	PlainTgtInvariant []dbm.Constraint

	RefSrcInvariant []refdbm.ClockConstraint
	RefGuard        []refdbm.ClockConstraint
	RefReset        []refdbm.ClockReset
	RefTgtInvariant []refdbm.ClockConstraint
}

// InitialVlocs enumerates every initial value: the cartesian product of
// each process's declared initial locations. Per spec.md §4.4 an initial
// value is valid only if every process has at least one initial location;
// if any process has none, InitialVlocs returns nil, ErrNoInitialLocation.
func (s *System) InitialVlocs() ([]Vloc, error) {
	perProcess := make([][]int, len(s.Processes))
	for p, proc := range s.Processes {
		locs := proc.InitialLocations()
		if len(locs) == 0 {
			return nil, fmt.Errorf("%w: process %q", ErrNoInitialLocation, proc.Name)
		}
		perProcess[p] = locs
	}
	var out []Vloc
	cartesian(perProcess, func(combo []int) {
		v := make(Vloc, len(combo))
		copy(v, combo)
		out = append(out, v)
	})
	return out, nil
}

// InitialEval is the outcome of evaluating one initial vloc: the initial
// intvar valuation, the flat target-invariant container (process-local and
// resolved to both global numberings), and a Status.
type InitialEval struct {
	Invariant      []ClockConstraint
	PlainInvariant []dbm.Constraint
	RefInvariant   []refdbm.ClockConstraint
	IntVal         intvar.IntVal
	Status         Status
}

// Initial evaluates the integer-VM and clock invariants of every process's
// initial location for a given initial vloc.
func (s *System) Initial(vloc Vloc, ev vmeval.Evaluator) InitialEval {
	iv := s.IntVars.Initial()
	out := InitialEval{IntVal: iv}
	for p, locIdx := range vloc {
		loc := s.Processes[p].Locations[locIdx]
		if loc.IntInvariant != nil {
			ok, err := ev.EvalBool(loc.IntInvariant, iv)
			if err != nil || !ok {
				return InitialEval{IntVal: iv, Status: IntvarsSrcInvariantViolated}
			}
		}
		for _, c := range loc.ClockInvariant {
			out.Invariant = append(out.Invariant, c)
			out.PlainInvariant = append(out.PlainInvariant, s.layout.PlainConstraint(p, c))
			out.RefInvariant = append(out.RefInvariant, s.layout.RefConstraint(p, c))
		}
	}
	out.Status = OK
	return out
}

// Outgoing enumerates every outgoing value from vloc: one Vedge per
// declared synchronisation vector whose participating processes each have
// a matching edge out of their current location, plus one Vedge per
// asynchronous edge (Sync == "") out of any single process's current
// location (spec.md §4.4). Vedges are produced in deterministic
// lowest-process/lowest-edge-index-first order.
func (s *System) Outgoing(vloc Vloc) []Vedge {
	var out []Vedge

	for _, sv := range s.Syncs {
		candidates := make([][]int, 0, len(sv.Events))
		procs := make([]int, 0, len(sv.Events))
		for p := range s.Processes {
			event, participates := sv.Events[p]
			if !participates {
				continue
			}
			procs = append(procs, p)
			var matches []int
			for _, ei := range s.Processes[p].OutgoingFrom(vloc[p]) {
				if s.Processes[p].Edges[ei].Sync == event {
					matches = append(matches, ei)
				}
			}
			if len(matches) == 0 {
				candidates = nil
				break
			}
			candidates = append(candidates, matches)
		}
		if candidates == nil {
			continue
		}
		cartesian(candidates, func(combo []int) {
			ve := make(Vedge, len(s.Processes))
			for i := range ve {
				ve[i] = NoEdge
			}
			for i, p := range procs {
				ve[p] = combo[i]
			}
			out = append(out, ve)
		})
	}

	for p, proc := range s.Processes {
		for _, ei := range proc.OutgoingFrom(vloc[p]) {
			if proc.Edges[ei].Sync != "" {
				continue
			}
			ve := make(Vedge, len(s.Processes))
			for i := range ve {
				ve[i] = NoEdge
			}
			ve[p] = ei
			out = append(out, ve)
		}
	}

	return out
}

// Next evaluates a chosen outgoing value: the integer-VM guard, statement,
// and target invariant of every participating process's edge, plus the
// flat clock-constraint/reset containers those edges declare. It does not
// touch the zone itself (package semantics applies the returned
// constraints/resets to a concrete DBM or RefDBM); it stops at the first
// check that fails and reports it via Status (spec.md §4.4).
func (s *System) Next(vloc Vloc, iv intvar.IntVal, ve Vedge, ev vmeval.Evaluator) (Transition, error) {
	t := Transition{Vedge: ve.Clone()}

	for p, eIdx := range ve {
		if eIdx == NoEdge {
			continue
		}
		if eIdx < 0 || eIdx >= len(s.Processes[p].Edges) {
			return Transition{Status: IncompatibleEdge}, ErrIncompatibleEdge
		}
		src := s.Processes[p].Edges[eIdx].Src
		for _, c := range s.Processes[p].Locations[src].ClockInvariant {
			t.SrcInvariant = append(t.SrcInvariant, c)
			t.PlainSrcInvariant = append(t.PlainSrcInvariant, s.layout.PlainConstraint(p, c))
			t.RefSrcInvariant = append(t.RefSrcInvariant, s.layout.RefConstraint(p, c))
		}
	}

	cur := iv
	for p, eIdx := range ve {
		if eIdx == NoEdge {
			continue
		}
		e := s.Processes[p].Edges[eIdx]
		if e.IntGuard != nil {
			ok, err := ev.EvalBool(e.IntGuard, cur)
			if err != nil {
				return Transition{Status: IntvarsGuardViolated}, err
			}
			if !ok {
				return Transition{Status: IntvarsGuardViolated}, nil
			}
		}
		for _, c := range e.ClockGuard {
			t.Guard = append(t.Guard, c)
			t.PlainGuard = append(t.PlainGuard, s.layout.PlainConstraint(p, c))
			t.RefGuard = append(t.RefGuard, s.layout.RefConstraint(p, c))
		}
	}

	for p, eIdx := range ve {
		if eIdx == NoEdge {
			continue
		}
		e := s.Processes[p].Edges[eIdx]
		if e.Statement != nil {
			next, err := ev.Apply(e.Statement, cur, s.IntVars)
			if err != nil {
				return Transition{Status: IntvarsStatementFailed}, nil
			}
			cur = next
		}
		for _, r := range e.ClockReset {
			t.Reset = append(t.Reset, r)
			t.PlainReset = append(t.PlainReset, s.layout.PlainReset(p, r))
			t.RefReset = append(t.RefReset, s.layout.RefReset(p, r))
		}
	}
	t.NextIntVal = cur

	for p, eIdx := range ve {
		if eIdx == NoEdge {
			continue
		}
		tgt := s.Processes[p].Edges[eIdx].Tgt
		loc := s.Processes[p].Locations[tgt]
		if loc.IntInvariant != nil {
			ok, err := ev.EvalBool(loc.IntInvariant, cur)
			if err != nil {
				return Transition{Status: IntvarsTgtInvariantViolated}, err
			}
			if !ok {
				return Transition{Status: IntvarsTgtInvariantViolated}, nil
			}
		}
		for _, c := range loc.ClockInvariant {
			t.TgtInvariant = append(t.TgtInvariant, c)
			t.PlainTgtInvariant = append(t.PlainTgtInvariant, s.layout.PlainConstraint(p, c))
			t.RefTgtInvariant = append(t.RefTgtInvariant, s.layout.RefConstraint(p, c))
		}
	}

	t.Status = OK
	return t, nil
}

// TargetVloc computes the vloc reached by firing ve from vloc: every
// participating process moves to its edge's target location, every other
// process stays put.
func TargetVloc(vloc Vloc, ve Vedge, procs []Process) Vloc {
	out := vloc.Clone()
	for p, eIdx := range ve {
		if eIdx == NoEdge {
			continue
		}
		out[p] = procs[p].Edges[eIdx].Tgt
	}
	return out
}

// cartesian calls fn once for every combination in the cartesian product of
// choices, in lowest-index-first order.
func cartesian(choices [][]int, fn func(combo []int)) {
	if len(choices) == 0 {
		return
	}
	combo := make([]int, len(choices))
	var rec func(i int)
	rec = func(i int) {
		if i == len(choices) {
			out := make([]int, len(combo))
			copy(out, combo)
			fn(out)
			return
		}
		for _, v := range choices[i] {
			combo[i] = v
			rec(i + 1)
		}
	}
	rec(0)
}
