package modelfile

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tchecker-go/tchecker/boundop"
	"github.com/tchecker-go/tchecker/intvar"
	"github.com/tchecker-go/tchecker/ta"
)

// ErrUnknownClock indicates a ClockConstraint/ClockReset named a clock not
// declared in its process's clockNames.
var ErrUnknownClock = fmt.Errorf("modelfile: unknown clock name")

// ErrUnknownCmp indicates a ClockConstraint.Cmp was neither "<" nor "<=".
var ErrUnknownCmp = fmt.Errorf("modelfile: unknown comparator")

// ErrUnknownProcess indicates a SyncVector named a process not declared in
// Processes.
var ErrUnknownProcess = fmt.Errorf("modelfile: unknown process name")

// Loaded bundles the system Load builds with the clock names needed to
// print zones and counter-examples (package dot).
type Loaded struct {
	TA         *ta.System
	ClockNames []string
}

// LoadFile decodes JSON read from r into a Loaded system.
func LoadFile(r io.Reader) (*Loaded, error) {
	sys, clockNames, err := Load(r)
	if err != nil {
		return nil, err
	}
	return &Loaded{TA: sys, ClockNames: clockNames}, nil
}

// Load decodes JSON read from r into a *ta.System, alongside the
// clock names of each process (for canonical zone printing, package dot)
// flattened in global-clock order: index 0 is always "0" (the plain-DBM's
// single shared reference clock), then each process's clocks in
// declaration order.
func Load(r io.Reader) (*ta.System, []string, error) {
	var f File
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, nil, fmt.Errorf("modelfile: decode: %w", err)
	}

	decls := make([]intvar.Declaration, len(f.IntVars))
	for i, d := range f.IntVars {
		decls[i] = intvar.Declaration{Name: d.Name, Size: d.Size, Min: d.Min, Max: d.Max, Initial: d.Initial}
	}
	ivars, err := intvar.NewSystem(decls)
	if err != nil {
		return nil, nil, err
	}

	byName := make(map[string]int, len(f.Processes))
	for i, p := range f.Processes {
		byName[p.Name] = i
	}

	clockNames := []string{"0"}
	procs := make([]ta.Process, len(f.Processes))
	for i, p := range f.Processes {
		tp, err := convertProcess(p)
		if err != nil {
			return nil, nil, fmt.Errorf("modelfile: process %q: %w", p.Name, err)
		}
		procs[i] = tp
		clockNames = append(clockNames, p.ClockNames...)
	}

	syncs := make([]ta.SyncVector, len(f.Syncs))
	for i, sv := range f.Syncs {
		events := make(map[int]string, len(sv.Events))
		for procName, event := range sv.Events {
			idx, ok := byName[procName]
			if !ok {
				return nil, nil, fmt.Errorf("modelfile: sync %d: %w %q", i, ErrUnknownProcess, procName)
			}
			events[idx] = event
		}
		syncs[i] = ta.SyncVector{Events: events}
	}

	return ta.NewSystem(procs, syncs, ivars), clockNames, nil
}

func convertProcess(p Process) (ta.Process, error) {
	index := func(name string) (int, error) {
		if name == "" || name == "0" {
			return ta.RefClock, nil
		}
		for i, n := range p.ClockNames {
			if n == name {
				return i + 1, nil
			}
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownClock, name)
	}

	locs := make([]ta.Location, len(p.Locations))
	for i, l := range p.Locations {
		inv := make([]ta.ClockConstraint, len(l.ClockInvariant))
		for j, c := range l.ClockInvariant {
			cc, err := convertConstraint(c, index)
			if err != nil {
				return ta.Process{}, err
			}
			inv[j] = cc
		}
		var labels map[string]struct{}
		if len(l.Labels) > 0 {
			labels = make(map[string]struct{}, len(l.Labels))
			for _, lb := range l.Labels {
				labels[lb] = struct{}{}
			}
		}
		locs[i] = ta.Location{
			ID: l.ID, Name: l.Name, Initial: l.Initial, Urgent: l.Urgent,
			Committed: l.Committed, Final: l.Final, Labels: labels, ClockInvariant: inv,
		}
	}

	edges := make([]ta.Edge, len(p.Edges))
	for i, e := range p.Edges {
		guard := make([]ta.ClockConstraint, len(e.ClockGuard))
		for j, c := range e.ClockGuard {
			cc, err := convertConstraint(c, index)
			if err != nil {
				return ta.Process{}, err
			}
			guard[j] = cc
		}
		reset := make([]ta.ClockReset, len(e.ClockReset))
		for j, r := range e.ClockReset {
			x, err := index(r.X)
			if err != nil {
				return ta.Process{}, err
			}
			y, err := index(r.Y)
			if err != nil {
				return ta.Process{}, err
			}
			reset[j] = ta.ClockReset{X: x, Y: y, K: r.K}
		}
		edges[i] = ta.Edge{ID: e.ID, Src: e.Src, Tgt: e.Tgt, Sync: e.Sync, ClockGuard: guard, ClockReset: reset}
	}

	return ta.Process{Name: p.Name, Locations: locs, Edges: edges, ClockCount: p.ClockCount}, nil
}

func convertConstraint(c ClockConstraint, index func(string) (int, error)) (ta.ClockConstraint, error) {
	x, err := index(c.X)
	if err != nil {
		return ta.ClockConstraint{}, err
	}
	y, err := index(c.Y)
	if err != nil {
		return ta.ClockConstraint{}, err
	}
	var cmp boundop.Cmp
	switch c.Cmp {
	case "<":
		cmp = boundop.Lt
	case "<=", "":
		cmp = boundop.Le
	default:
		return ta.ClockConstraint{}, fmt.Errorf("%w: %q", ErrUnknownCmp, c.Cmp)
	}
	return ta.ClockConstraint{X: x, Y: y, Cmp: cmp, K: c.K}, nil
}
