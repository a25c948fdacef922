// Command reach runs spec.md §4.7's covering reachability search over a
// plain (shared-reference-clock) zone graph and reports whether a target
// label set is reachable.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tchecker-go/tchecker/clockbounds"
	"github.com/tchecker-go/tchecker/covreach"
	"github.com/tchecker-go/tchecker/dot"
	"github.com/tchecker-go/tchecker/extrapolation"
	"github.com/tchecker-go/tchecker/modelfile"
	"github.com/tchecker-go/tchecker/path"
	"github.com/tchecker-go/tchecker/semantics"
	"github.com/tchecker-go/tchecker/statespace"
	"github.com/tchecker-go/tchecker/vmeval"
	"github.com/tchecker-go/tchecker/zg"
)

// Exit codes per spec.md §6.
const (
	exitReached    = 0
	exitUnreached  = 1
	exitMisuse     = 2
	exitAbort      = 3
	defaultTableSz = 1024
)

type opts struct {
	search        string
	cover         string
	semanticsFlag string
	extrapFlag    string
	local         bool
	labels        string
	tableSize     int
	graphOut      string
	traceOut      string
	withValues    bool
}

func main() {
	var o opts
	var code int

	root := &cobra.Command{
		Use:   "reach MODEL",
		Short: "Decide reachability of a labelled state in a network of timed automata",
		Long: `reach loads a network of timed automata from MODEL (a modelfile JSON
document), explores its zone graph with the covering reachability
algorithm, and reports whether the requested labels are reachable.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			code, err = run(cmd.Context(), o, args[0])
			return err
		},
		SilenceUsage: true,
	}

	root.Flags().StringVar(&o.search, "search", "bfs", "search order: bfs or dfs")
	root.Flags().StringVar(&o.cover, "cover", "full", "covering mode: full or leaf")
	root.Flags().StringVar(&o.semanticsFlag, "semantics", "standard", "semantics: standard or elapsed")
	root.Flags().StringVar(&o.extrapFlag, "extrapolation", "none", "extrapolation: none, lu, lu+, m, or m+")
	root.Flags().BoolVar(&o.local, "local", false, "use the per-location extrapolation variant instead of the global one")
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

func parseCover(s string) (covreach.CoverMode, error) {
	switch strings.ToLower(s) {
	case "full", "":
		return covreach.Full, nil
	case "leaf":
		return covreach.LeafOnly, nil
	default:
		return 0, fmt.Errorf("unknown --cover %q", s)
	}
}

func parseFlavour(s string) (semantics.Flavour, error) {
	switch strings.ToLower(s) {
	case "standard", "":
		return semantics.Standard, nil
	case "elapsed":
		return semantics.Elapsed, nil
	default:
		return 0, fmt.Errorf("unknown --semantics %q", s)
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

// buildExtrapolation resolves --extrapolation/--local into an
// extrapolation.Operator[string] wired against sys's own clock bounds, or
// nil for "none" (spec.md §4.3).
func buildExtrapolation(sys *modelfile.Loaded, kindFlag string, local bool) (extrapolation.Operator[string], error) {
	var kind extrapolation.Kind
	switch strings.ToLower(kindFlag) {
	case "none", "":
		return nil, nil
	case "lu":
		kind = extrapolation.LU
	case "lu+":
		kind = extrapolation.LUPlus
	case "m":
		kind = extrapolation.M
	case "m+":
		kind = extrapolation.MPlus
	default:
		return nil, fmt.Errorf("unknown --extrapolation %q", kindFlag)
	}
	if local {
		return extrapolation.Local[string]{Kind: kind, Cache: clockbounds.NewVlocCache(sys.TA, 64)}, nil
	}
	return extrapolation.Global[string]{Kind: kind, Bounds: clockbounds.DeriveGlobal(sys.TA)}, nil
}

// run builds the zone graph, runs the search, emits the requested outputs,
// and returns the exit code spec.md §6 assigns to the outcome alongside
// any error worth logging.
func run(ctx context.Context, o opts, modelPath string) (int, error) {
	order, err := parseOrder(o.search)
	if err != nil {
		return exitMisuse, err
	}
	cover, err := parseCover(o.cover)
	if err != nil {
		return exitMisuse, err
	}
	flavour, err := parseFlavour(o.semanticsFlag)
	if err != nil {
		return exitMisuse, err
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

	extra, err := buildExtrapolation(sys, o.extrapFlag, o.local)
	if err != nil {
		return exitMisuse, err
	}

	ev := vmeval.Reference{}
	zsys := zg.New(sys.TA, ev, flavour, extra, true)

	start := time.Now()
	res, err := covreach.Search(ctx, sys.TA, covreach.FromZG(zsys), o.tableSize, covreach.Options{
		Order: order, Cover: cover, Labels: parseLabels(o.labels),
	})
	if err != nil {
		return exitAbort, err
	}
	elapsed := time.Since(start)

	ss, err := statespace.New(zsys, res.Graph, nil)
	if err != nil {
		return exitAbort, err
	}
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
		return exitAbort, fmt.Errorf("reach: search cancelled")
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
