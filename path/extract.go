package path

import (
	"github.com/tchecker-go/tchecker/covergraph"
	"github.com/tchecker-go/tchecker/ta"
)

// ExtractVedges walks witness.In backward to a protected root, following
// both actual and subsumption edges for connectivity but collecting only
// actual-edge vedges into the returned sequence (spec.md §4.8: "report only
// the actual transitions of the path, silently skipping any subsumption
// hop"). The sequence is returned in forward (root-to-witness) order.
func ExtractVedges(witness *covergraph.Node) (root *covergraph.Node, vedges []ta.Vedge, err error) {
	cur := witness
	for !cur.Protected {
		if len(cur.In) == 0 {
			return nil, nil, ErrNoRoot
		}
		e := cur.In[0]
		if e.Kind == covergraph.ActualEdge {
			vedges = append(vedges, e.Vedge)
		}
		cur = e.From
	}
	root = cur
	for i, j := 0, len(vedges)-1; i < j; i, j = i+1, j-1 {
		vedges[i], vedges[j] = vedges[j], vedges[i]
	}
	return root, vedges, nil
}
