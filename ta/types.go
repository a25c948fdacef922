package ta

import (
	"github.com/tchecker-go/tchecker/boundop"
	"github.com/tchecker-go/tchecker/vmeval"
)

// RefClock is the process-local clock index meaning "this process's own
// reference clock", used as either operand of a ClockConstraint or the
// source of a ClockReset.
const RefClock = 0

// ClockConstraint is x - y <Cmp> K over process-local clock indices (0
// means RefClock).
type ClockConstraint struct {
	X, Y int
	Cmp  boundop.Cmp
	K    int32
}

// ClockReset is x := y + K over process-local clock indices (0 means
// RefClock); the common reset-to-reference case is Y == RefClock, K == 0.
type ClockReset struct {
	X, Y int
	K    int32
}

// Location is one control state of a single process.
type Location struct {
	ID             int
	Name           string
	Initial        bool
	Urgent         bool
	Committed      bool
	Final          bool
	Labels         map[string]struct{}
	IntInvariant   vmeval.Expr
	ClockInvariant []ClockConstraint
}

// HasLabel reports whether l carries label.
func (l Location) HasLabel(label string) bool {
	_, ok := l.Labels[label]
	return ok
}

// Edge is a single transition of one process.
type Edge struct {
	ID         int
	Src, Tgt   int // indices into Process.Locations
	IntGuard   vmeval.Expr
	ClockGuard []ClockConstraint
	Statement  vmeval.Stmt
	ClockReset []ClockReset
	Sync       string // "" means the edge can fire asynchronously
}

// Process is one sequential timed automaton: its locations, edges, and the
// number of clocks it declares (process-local indices 1..ClockCount; 0 is
// always RefClock).
type Process struct {
	Name       string
	Locations  []Location
	Edges      []Edge
	ClockCount int
}

// InitialLocations returns the indices of l's locations flagged Initial.
func (p Process) InitialLocations() []int {
	var out []int
	for i, l := range p.Locations {
		if l.Initial {
			out = append(out, i)
		}
	}
	return out
}

// OutgoingFrom returns the indices of p's edges whose source is loc.
func (p Process) OutgoingFrom(loc int) []int {
	var out []int
	for i, e := range p.Edges {
		if e.Src == loc {
			out = append(out, i)
		}
	}
	return out
}

// SyncVector is one declared synchronisation: the set of processes that
// must jointly fire an edge labelled with the corresponding event name.
type SyncVector struct {
	// Events maps process index to the event label that process's edge
	// must carry to participate in this vector.
	Events map[int]string
}

// Vloc is an immutable tuple of per-process location indices (spec.md §3).
type Vloc []int

// Clone returns an independent copy of v.
func (v Vloc) Clone() Vloc {
	out := make(Vloc, len(v))
	copy(out, v)
	return out
}

// VlocEqual reports whether a and b name the same location in every process.
func VlocEqual(a, b Vloc) bool {
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

// NoEdge marks a process as uninvolved in a Vedge.
const NoEdge = -1

// Vedge is an immutable tuple, one entry per process: a fired edge index,
// or NoEdge for processes not involved in the current synchronisation
// (spec.md §3).
type Vedge []int

// Clone returns an independent copy of e.
func (e Vedge) Clone() Vedge {
	out := make(Vedge, len(e))
	copy(out, e)
	return out
}
