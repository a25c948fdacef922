package covreach

import "github.com/tchecker-go/tchecker/covergraph"

// Order selects the work-list discipline: BFS uses FIFO, DFS uses LIFO
// (spec.md §4.7 "Orderings and tie-breaks").
type Order uint8

const (
	BFS Order = iota
	DFS
)

// worklist is a FIFO or LIFO queue of *covergraph.Node, both enqueuing in
// successor order per spec.md §4.7.
type worklist struct {
	order Order
	items []*covergraph.Node
}

func newWorklist(order Order) *worklist {
	return &worklist{order: order}
}

func (w *worklist) push(n *covergraph.Node) {
	w.items = append(w.items, n)
}

func (w *worklist) empty() bool { return len(w.items) == 0 }

func (w *worklist) pop() *covergraph.Node {
	switch w.order {
	case DFS:
		last := len(w.items) - 1
		n := w.items[last]
		w.items = w.items[:last]
		return n
	default: // BFS
		n := w.items[0]
		w.items = w.items[1:]
		return n
	}
}

func (w *worklist) len() int { return len(w.items) }
