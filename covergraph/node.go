package covergraph

import (
	"github.com/tchecker-go/tchecker/dbm"
	"github.com/tchecker-go/tchecker/hashtable"
	"github.com/tchecker-go/tchecker/intvar"
	"github.com/tchecker-go/tchecker/ta"
)

// EdgeKind distinguishes an actual (fired) transition from a subsumption
// edge recorded when a node is found covered (spec.md §4.7).
type EdgeKind uint8

const (
	ActualEdge EdgeKind = iota
	SubsumptionEdge
)

// InEdge is one incoming edge of a Node, recorded for path extraction
// (package path).
type InEdge struct {
	From *Node
	Vedge ta.Vedge
	Kind  EdgeKind
}

// Node is one stored state: its discrete part (vloc, intval), its zone,
// and the bookkeeping CoverGraph needs — activity/protection flags, its
// hashtable.Position, and its incoming edges (spec.md §3 "Node", §4.6).
type Node struct {
	ID int

	Vloc   ta.Vloc
	IntVal intvar.IntVal
	Zone   *dbm.DBM

	Active    bool
	Protected bool
	Final     bool

	In []InEdge

	pos hashtable.Position
}

// SetPosition implements hashtable.Positioned.
func (n *Node) SetPosition(p hashtable.Position) { n.pos = p }

// Position implements hashtable.Positioned.
func (n *Node) Position() hashtable.Position { return n.pos }

// SameDiscreteState is the default state predicate: equality of (vloc,
// intval) (spec.md §4.6 "by default equality of (vloc, intval)").
func SameDiscreteState(a, b *Node) bool {
	return ta.VlocEqual(a.Vloc, b.Vloc) && intvar.Equal(a.IntVal, b.IntVal)
}

// HashDiscreteState is the default bucket hash, combining vloc and intval
// with an FNV-1a-style fold; any two nodes with SameDiscreteState true
// must hash equal.
func HashDiscreteState(n *Node) uint64 {
	var h uint64 = 14695981039346656037
	mix := func(v int32) {
		h ^= uint64(uint32(v))
		h *= 1099511628211
	}
	for _, l := range n.Vloc {
		mix(int32(l))
	}
	for i := 0; i < len(n.IntVal); i++ {
		mix(n.IntVal.At(i))
	}
	return h
}
