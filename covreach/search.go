package covreach

import (
	"context"
	"errors"

	"github.com/tchecker-go/tchecker/covergraph"
	"github.com/tchecker-go/tchecker/ta"
)

// CoverMode selects when covergraph.CoverGraph.IsCovered is consulted
// (spec.md §4.7 "Covering modes").
type CoverMode uint8

const (
	// Full checks coverage before both enqueue and dequeue.
	Full CoverMode = iota
	// LeafOnly checks coverage only at dequeue.
	LeafOnly
)

// Options configures one Search run.
type Options struct {
	Order  Order
	Cover  CoverMode
	Labels map[string]struct{}
}

// Stats collects the counters spec.md §4.7 names.
type Stats struct {
	Visited          int
	CoveredOnPush    int
	CoveredOnPop     int
	ActualEdges      int
	SubsumptionEdges int
	PeakWorklistSize int
	Reached          bool
	Cancelled        bool
}

// Result is the outcome of a Search run: the fully (or partially, if
// cancelled) built cover graph, the run's statistics, and the witness node
// reaching the target labels, if any.
type Result struct {
	Graph   *covergraph.CoverGraph
	Stats   Stats
	Witness *covergraph.Node
}

// vlocLabels unions the label sets of every process's current location.
func vlocLabels(sys *ta.System, vloc ta.Vloc) map[string]struct{} {
	out := make(map[string]struct{})
	for p, locIdx := range vloc {
		for l := range sys.Processes[p].Locations[locIdx].Labels {
			out[l] = struct{}{}
		}
	}
	return out
}

// vlocFinal reports whether every process's current location is final —
// a "valid final" state per spec.md §4.7.
func vlocFinal(sys *ta.System, vloc ta.Vloc) bool {
	for p, locIdx := range vloc {
		if !sys.Processes[p].Locations[locIdx].Final {
			return false
		}
	}
	return true
}

// coversTarget reports whether have is a superset of want.
func coversTarget(have, want map[string]struct{}) bool {
	for l := range want {
		if _, ok := have[l]; !ok {
			return false
		}
	}
	return true
}

// Search runs spec.md §4.7's covering reachability algorithm over exp,
// using sys only to resolve each reached vloc's labels and final flag
// (sys must be the same ta.System exp was built from). tableSize sizes
// the cover graph's hash table. Cancellation is cooperative: Search checks
// ctx before every dequeue (spec.md §5) and returns a partial Result with
// Stats.Cancelled set, never an error, when ctx is done.
func Search(ctx context.Context, sys *ta.System, exp Explorer, tableSize int, opts Options) (*Result, error) {
	graph := covergraph.New(tableSize, nil, nil)
	wl := newWorklist(opts.Order)
	stats := Stats{}
	result := &Result{Graph: graph, Stats: stats}

	initials, err := exp.Initial()
	if err != nil {
		return nil, err
	}
	var seeded bool
	for _, init := range initials {
		if init.Status != ta.OK {
			continue
		}
		seeded = true
		if coversTarget(vlocLabels(sys, init.Vloc), opts.Labels) && vlocFinal(sys, init.Vloc) {
			n := graph.AddNode(&covergraph.Node{Vloc: init.Vloc, IntVal: init.IntVal, Zone: init.Zone, Final: true}, true)
			stats.Visited++
			stats.Reached = true
			result.Witness = n
			result.Stats = stats
			return result, nil
		}
		n := graph.AddNode(&covergraph.Node{Vloc: init.Vloc, IntVal: init.IntVal, Zone: init.Zone}, true)
		wl.push(n)
	}
	if !seeded {
		result.Stats = stats
		return result, ErrNoInitialState
	}

	for !wl.empty() {
		if wl.len() > stats.PeakWorklistSize {
			stats.PeakWorklistSize = wl.len()
		}
		select {
		case <-ctx.Done():
			stats.Cancelled = true
			result.Stats = stats
			return result, nil
		default:
		}

		n := wl.pop()
		stats.Visited++

		if opts.Cover == LeafOnly || opts.Cover == Full {
			covered, by, err := graph.IsCovered(n)
			if err != nil {
				return nil, err
			}
			if covered {
				covergraph.AddSubsumptionEdge(n, by, nil)
				stats.CoveredOnPop++
				stats.SubsumptionEdges++
				continue
			}
		}

		nexts, err := exp.Next(n.Vloc, n.IntVal, n.Zone)
		if err != nil {
			return nil, err
		}
		for _, t := range nexts {
			if t.Status != ta.OK {
				continue
			}

			if coversTarget(vlocLabels(sys, t.Vloc), opts.Labels) && vlocFinal(sys, t.Vloc) {
				target := graph.AddNode(&covergraph.Node{Vloc: t.Vloc, IntVal: t.IntVal, Zone: t.Zone, Final: true}, false)
				covergraph.AddActualEdge(n, target, t.Vedge)
				stats.ActualEdges++
				stats.Reached = true
				result.Witness = target
				result.Stats = stats
				return result, nil
			}

			candidate := &covergraph.Node{Vloc: t.Vloc, IntVal: t.IntVal, Zone: t.Zone, Active: true}
			if opts.Cover == Full {
				covered, by, err := graph.IsCovered(candidate)
				if err != nil {
					return nil, err
				}
				if covered {
					covergraph.AddSubsumptionEdge(n, by, t.Vedge)
					stats.CoveredOnPush++
					stats.SubsumptionEdges++
					continue
				}
			}

			covered, err := graph.CoveredNodes(candidate)
			if err != nil {
				return nil, err
			}
			target := graph.AddNode(candidate, false)
			for _, m := range covered {
				if m == target {
					continue
				}
				covergraph.ReparentAsSubsumption(m, target)
				if err := graph.Remove(m); err != nil && !errors.Is(err, covergraph.ErrProtectedNode) {
					return nil, err
				}
			}
			covergraph.AddActualEdge(n, target, t.Vedge)
			stats.ActualEdges++
			wl.push(target)
		}
	}

	result.Stats = stats
	return result, nil
}
