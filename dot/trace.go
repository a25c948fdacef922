package dot

import (
	"fmt"
	"io"
	"text/template"

	"github.com/tchecker-go/tchecker/path"
)

type traceStep struct {
	ID        int
	NextID    int
	Label     string
	EdgeLabel string
	Valuation string
	HasEdge   bool
}

type traceDoc struct {
	Steps []traceStep
}

var traceTpl = template.Must(template.New("trace").Parse(`digraph counterexample {
rankdir=LR;
{{range .Steps}}n{{.ID}} [shape=box, label="{{.Label}}{{if .Valuation}}\n{{.Valuation}}{{end}}"];
{{if .HasEdge}}n{{.ID}} -> n{{.NextID}} [label="{{.EdgeLabel}}"];
{{end}}{{end}}}
`))

// valuationString renders one rational valuation as a space-separated
// "name=p/q" list, names[i-1] naming clock i (clock 0, the reference, is
// never printed).
func valuationString(v path.Valuation, names []string) string {
	s := ""
	for i := 1; i < len(v); i++ {
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("%s=%s", clockName(names, i), v[i].RatString())
	}
	return s
}

// DumpCounterExample writes ce as a DOT digraph to w: one vertex per
// visited state labelled with its vloc and, if requested and available,
// its concrete valuation, one edge per fired vedge (spec.md §6
// "Counter-example (DOT / textual)").
func DumpCounterExample(w io.Writer, ce *path.CounterExample, clockNames []string, withValuations bool) error {
	doc := traceDoc{}
	for i, st := range ce.States {
		step := traceStep{ID: i, Label: fmt.Sprintf("%v", st.Vloc)}
		if withValuations && ce.Concrete {
			step.Valuation = valuationString(ce.Valuations[i], clockNames)
		}
		if i < len(ce.Vedges) {
			step.HasEdge = true
			step.NextID = i + 1
			step.EdgeLabel = vedgeLabel(ce.Vedges[i])
		}
		doc.Steps = append(doc.Steps, step)
	}
	return traceTpl.Execute(w, doc)
}
