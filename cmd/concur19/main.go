// Command concur19 runs covering reachability over the reference-clock
// (local-time, asynchronous) zone graph, bounding the spread between
// reference clocks instead of extrapolating (spec.md §4.2's RefDBM
// supplement referenced from §6).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tchecker-go/tchecker/covreach"
	"github.com/tchecker-go/tchecker/dot"
	"github.com/tchecker-go/tchecker/modelfile"
	"github.com/tchecker-go/tchecker/path"
	"github.com/tchecker-go/tchecker/refzg"
	"github.com/tchecker-go/tchecker/semantics"
	"github.com/tchecker-go/tchecker/statespace"
	"github.com/tchecker-go/tchecker/vmeval"
)

const (
	exitReached    = 0
	exitUnreached  = 1
	exitMisuse     = 2
	exitAbort      = 3
	defaultTableSz = 1024
)

type opts struct {
	search     string
	spread     int32
	labels     string
	tableSize  int
	graphOut   string
	traceOut   string
	withValues bool
}

func main() {
	var o opts
	var code int

	root := &cobra.Command{
		Use:   "concur19 MODEL",
		Short: "Decide reachability over the local-time (reference-clock) zone graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			code, err = run(cmd.Context(), o, args[0])
			return err
		},
		SilenceUsage: true,
	}

	root.Flags().StringVar(&o.search, "search", "bfs", "search order: bfs or dfs")
	root.Flags().Int32Var(&o.spread, "spread", 0, "maximum allowed spread between any two reference clocks")
	root.Flags().StringVar(&o.labels, "labels", "", "comma-separated target label set")
	root.Flags().IntVar(&o.tableSize, "table-size", defaultTableSz, "cover-graph hash table bucket count")
	root.Flags().StringVar(&o.graphOut, "graph-out", "", "write the explored cover graph as DOT to this file")
	root.Flags().StringVar(&o.traceOut, "trace-out", "", "write the counter-example as DOT to this file, if reached")
	root.Flags().BoolVar(&o.withValues, "with-values", false, "include concrete rational valuations in the counter-example dump")

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		if code == 0 {
			code = exitMisuse
		}
	}
	os.Exit(code)
}

func parseOrder(s string) (covreach.Order, error) {
	switch strings.ToLower(s) {
	case "bfs", "":
		return covreach.BFS, nil
	case "dfs":
		return covreach.DFS, nil
	default:
		return 0, fmt.Errorf("unknown --search %q", s)
	}
}

func parseLabels(s string) map[string]struct{} {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	out := make(map[string]struct{})
	for _, l := range strings.Split(s, ",") {
		l = strings.TrimSpace(l)
		if l != "" {
			out[l] = struct{}{}
		}
	}
	return out
}

func run(ctx context.Context, o opts, modelPath string) (int, error) {
	order, err := parseOrder(o.search)
	if err != nil {
		return exitMisuse, err
	}
	if o.spread < 0 {
		return exitMisuse, fmt.Errorf("--spread must be >= 0")
	}

	f, err := os.Open(modelPath)
	if err != nil {
		return exitMisuse, err
	}
	sys, err := modelfile.LoadFile(f)
	f.Close()
	if err != nil {
		return exitMisuse, err
	}

	ev := vmeval.Reference{}
	refOpts := semantics.RefOptions{Spread: o.spread}
	rsys := refzg.New(sys.TA, ev, semantics.Standard, refOpts)

	start := time.Now()
	res, err := covreach.Search(ctx, sys.TA, covreach.FromRefZG(rsys), o.tableSize, covreach.Options{
		Order: order, Cover: covreach.Full, Labels: parseLabels(o.labels),
	})
	if err != nil {
		return exitAbort, err
	}
	elapsed := time.Since(start)

	ss := statespace.NewRef(rsys, res.Graph, nil)
	defer ss.Close()

	if err := dot.DumpStats(os.Stdout, res.Stats, elapsed.String()); err != nil {
		return exitAbort, err
	}

	if o.graphOut != "" {
		if err := writeDOT(o.graphOut, func(w *os.File) error {
			return dot.DumpGraph(w, res.Graph, sys.ClockNames)
		}); err != nil {
			return exitAbort, err
		}
	}

	if res.Stats.Reached && o.traceOut != "" {
		ce, err := path.Extract(sys.TA, ev, res.Witness)
		if err != nil {
			return exitAbort, err
		}
		if err := writeDOT(o.traceOut, func(w *os.File) error {
			return dot.DumpCounterExample(w, ce, sys.ClockNames, o.withValues)
		}); err != nil {
			return exitAbort, err
		}
	}

	if res.Stats.Cancelled {
		return exitAbort, fmt.Errorf("concur19: search cancelled")
	}
	if res.Stats.Reached {
		return exitReached, nil
	}
	return exitUnreached, nil
}

func writeDOT(filePath string, dump func(*os.File) error) error {
	f, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer f.Close()
	return dump(f)
}
