// Package statespace owns the lifecycle binding a transition system to its
// cover graph and background collector (spec.md §5 "Resource lifecycle").
package statespace

import (
	"errors"
	"sync"

	"github.com/tchecker-go/tchecker/covergraph"
	"github.com/tchecker-go/tchecker/gc"
	"github.com/tchecker-go/tchecker/refzg"
	"github.com/tchecker-go/tchecker/zg"
)

// ErrAlreadyClosed indicates a StateSpace's Close was already called.
var ErrAlreadyClosed = errors.New("statespace: already closed")

// StateSpace binds a transition system (either flavour), the cover graph
// built over it, and the collector sweeping its pools. Close tears these
// down in the order spec.md §5 requires: the graph — the last thing still
// holding zone/valuation pointers into the transition system's pools —
// must be dropped, and the collector stopped, before the transition
// system itself is released.
type StateSpace struct {
	mu     sync.Mutex
	zg     *zg.System
	refzg  *refzg.System
	graph  *covergraph.CoverGraph
	coll   *gc.Collector
	closed bool
}

// New binds a plain zone-graph system to graph and coll. coll may be nil
// (a StateSpace built only to replay a path, say, has nothing to
// collect). Binding a non-nil graph requires sys to have been built with
// sharing enabled (a long-lived cover graph retains many zones at once,
// so interning pays for itself); New returns zg.ErrModeMismatch otherwise
// — the Open Question 3 decision recorded in DESIGN.md.
func New(sys *zg.System, graph *covergraph.CoverGraph, coll *gc.Collector) (*StateSpace, error) {
	if graph != nil {
		if err := sys.RequireSharing(true); err != nil {
			return nil, err
		}
	}
	return &StateSpace{zg: sys, graph: graph, coll: coll}, nil
}

// NewRef is New for a reference-clock zone-graph system. Package refzg
// never shares zones (it explores local-time equivalence classes, not a
// single interned pool), so NewRef does not gate on sharing mode.
func NewRef(sys *refzg.System, graph *covergraph.CoverGraph, coll *gc.Collector) *StateSpace {
	return &StateSpace{refzg: sys, graph: graph, coll: coll}
}

// ZG returns the bound plain zone-graph system, or nil if this StateSpace
// was built with NewRef.
func (s *StateSpace) ZG() *zg.System { return s.zg }

// RefZG returns the bound reference-clock zone-graph system, or nil if
// this StateSpace was built with New.
func (s *StateSpace) RefZG() *refzg.System { return s.refzg }

// Graph returns the bound cover graph.
func (s *StateSpace) Graph() *covergraph.CoverGraph { return s.graph }

// Close stops the collector, releases the cover graph, then releases the
// transition system, in that order. Close is not idempotent: a second call
// returns ErrAlreadyClosed.
func (s *StateSpace) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrAlreadyClosed
	}
	s.closed = true

	var stopErr error
	if s.coll != nil {
		stopErr = s.coll.Stop()
	}
	s.graph = nil
	s.zg = nil
	s.refzg = nil
	return stopErr
}
