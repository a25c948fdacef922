package dot

import (
	"fmt"
	"io"
	"text/template"

	"github.com/tchecker-go/tchecker/covergraph"
	"github.com/tchecker-go/tchecker/ta"
)

// graphNode is one rendered vertex: its identity plus its label text.
type graphNode struct {
	ID    int
	Label string
	Final bool
}

// graphEdge is one rendered edge; Subsumption selects the dashed/grey
// style spec.md §6 calls for ("subsumption edges styled distinctly").
type graphEdge struct {
	From, To    int
	Label       string
	Subsumption bool
}

type graphDoc struct {
	Nodes []graphNode
	Edges []graphEdge
}

var graphTpl = template.Must(template.New("graph").Parse(`digraph coverreach {
rankdir=LR;
{{range .Nodes}}n{{.ID}} [shape={{if .Final}}doublecircle{{else}}circle{{end}}, label="{{.Label}}"];
{{end}}{{range .Edges}}n{{.From}} -> n{{.To}} [label="{{.Label}}"{{if .Subsumption}}, style=dashed, color=grey{{end}}];
{{end}}}
`))

// vedgeLabel renders a Vedge as a comma-separated list of process:edge
// pairs, skipping processes not involved (ta.NoEdge).
func vedgeLabel(ve ta.Vedge) string {
	if ve == nil {
		return ""
	}
	s := ""
	for p, e := range ve {
		if e == ta.NoEdge {
			continue
		}
		if s != "" {
			s += ","
		}
		s += fmt.Sprintf("%d:%d", p, e)
	}
	return s
}

// DumpGraph writes g as a DOT digraph to w: one vertex per active node,
// labelled with its vloc, intval and zone (in canonical form), and one
// edge per recorded InEdge, subsumption edges styled distinctly (spec.md
// §6 "Graph dump (DOT)").
func DumpGraph(w io.Writer, g *covergraph.CoverGraph, clockNames []string) error {
	doc := graphDoc{}
	for _, n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, graphNode{
			ID:    n.ID,
			Label: fmt.Sprintf("%v | %v | %s", n.Vloc, n.IntVal, ZoneString(n.Zone, clockNames)),
			Final: n.Final,
		})
		for _, e := range n.In {
			if e.From == nil {
				continue
			}
			doc.Edges = append(doc.Edges, graphEdge{
				From:        e.From.ID,
				To:          n.ID,
				Label:       vedgeLabel(e.Vedge),
				Subsumption: e.Kind == covergraph.SubsumptionEdge,
			})
		}
	}
	return graphTpl.Execute(w, doc)
}
