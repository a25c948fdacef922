package covergraph

import (
	"sync"

	"github.com/tchecker-go/tchecker/hashtable"
	"github.com/tchecker-go/tchecker/ta"
)

// CoverGraph is the bucketed subsumption container of spec.md §4.6: an
// array of buckets, indexed by a hash over the discrete part, storing
// active nodes in insertion order with O(1) removal.
type CoverGraph struct {
	mu        sync.Mutex
	table     *hashtable.CollisionTable[*Node]
	statePred func(a, b *Node) bool
	zonePred  ZonePredicate
	nextID    int
}

// New builds a CoverGraph of tableSize buckets. statePred defaults to
// SameDiscreteState and zonePred to Inclusion when nil.
func New(tableSize int, statePred func(a, b *Node) bool, zonePred ZonePredicate) *CoverGraph {
	if statePred == nil {
		statePred = SameDiscreteState
	}
	if zonePred == nil {
		zonePred = Inclusion
	}
	hash := func(n *Node) uint64 { return HashDiscreteState(n) }
	return &CoverGraph{
		table:     hashtable.NewCollisionTable[*Node](tableSize, hash),
		statePred: statePred,
		zonePred:  zonePred,
	}
}

// Len reports the number of active nodes currently stored.
func (g *CoverGraph) Len() int { return g.table.Len() }

// Nodes returns a snapshot of every currently active node, in no
// particular order (used by package dot to dump the whole graph).
func (g *CoverGraph) Nodes() []*Node {
	var out []*Node
	for b := 0; b < g.table.BucketCount(); b++ {
		for _, n := range g.table.Bucket(b) {
			if n.Active {
				out = append(out, n)
			}
		}
	}
	return out
}

// AddNode stores n, marking it active (and protected, if root). Returns n
// for call-site chaining, mirroring spec.md §4.7's "n = G.add_node(s, root
// = true)".
func (g *CoverGraph) AddNode(n *Node, root bool) *Node {
	g.mu.Lock()
	defer g.mu.Unlock()
	n.Active = true
	if root {
		n.Protected = true
	}
	n.ID = g.nextID
	g.nextID++
	g.table.Insert(n)
	return n
}

// IsCovered reports whether some other active node with the same discrete
// part already stored covers n's zone (spec.md §4.6 "is_covered"). The
// validity guard applies to n's own role here: an inactive or protected n
// is never reported covered.
func (g *CoverGraph) IsCovered(n *Node) (bool, *Node, error) {
	if !n.Active || n.Protected {
		return false, nil, nil
	}
	g.mu.Lock()
	bucket := g.table.Bucket(g.table.BucketIndex(n))
	g.mu.Unlock()
	for _, m := range bucket {
		if m == n || !m.Active || !g.statePred(n, m) {
			continue
		}
		ok, err := g.zonePred(n, m)
		if err != nil {
			return false, nil, err
		}
		if ok {
			return true, m, nil
		}
	}
	return false, nil, nil
}

// CoveredNodes enumerates stored active nodes with the same discrete part
// as n whose zone is covered by n's zone (spec.md §4.6 "covered_nodes").
func (g *CoverGraph) CoveredNodes(n *Node) ([]*Node, error) {
	g.mu.Lock()
	bucket := g.table.Bucket(g.table.BucketIndex(n))
	g.mu.Unlock()
	var out []*Node
	for _, m := range bucket {
		if m == n || !m.Active || m.Protected || !g.statePred(n, m) {
			continue
		}
		ok, err := g.zonePred(m, n)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, m)
		}
	}
	return out, nil
}

// Remove deletes n from the graph. Per spec.md §4.6's validity guard, a
// protected node (every root/initial node) can never be removed, and an
// already-inactive node cannot be removed twice.
func (g *CoverGraph) Remove(n *Node) error {
	if n.Protected {
		return ErrProtectedNode
	}
	if !n.Active {
		return ErrInactiveNode
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.table.Remove(n.Position()); err != nil {
		return err
	}
	n.Active = false
	return nil
}

// AddActualEdge records a fired transition from -> to.
func AddActualEdge(from, to *Node, ve ta.Vedge) {
	to.In = append(to.In, InEdge{From: from, Vedge: ve.Clone(), Kind: ActualEdge})
}

// AddSubsumptionEdge records that to subsumes from (from was found covered
// by to, or reparented onto it).
func AddSubsumptionEdge(from, to *Node, ve ta.Vedge) {
	to.In = append(to.In, InEdge{From: from, Vedge: ve.Clone(), Kind: SubsumptionEdge})
}

// ReparentAsSubsumption moves every incoming actual edge of from onto to,
// converting each to a subsumption edge, then clears from's incoming
// edges — spec.md §4.7's "move incoming actual edges of m to n' as
// subsumption edges" step, run when n' newly subsumes a previously-stored
// node m.
func ReparentAsSubsumption(from, to *Node) {
	for _, e := range from.In {
		e.Kind = SubsumptionEdge
		to.In = append(to.In, e)
	}
	from.In = nil
}
