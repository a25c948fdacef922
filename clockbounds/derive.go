package clockbounds

import (
	"strconv"
	"strings"

	"github.com/tchecker-go/tchecker/ta"
)

// scanConstraint folds one resolved global plain-DBM constraint x - y <= k
// (or < k) into lu: a constraint bounding clock x from above contributes to
// U[x], one bounding clock y from below contributes to L[y]. Constraints
// between two non-reference clocks are conservative: both sides accumulate
// the same constant, which only widens the eventual extrapolation — still
// sound per the extrapolation contract (spec.md §4.3: extrap(d) ⊇ d for
// any valid bounds map, tighter bounds only reduce the precomputation's
// effectiveness, never its soundness).
func scanConstraint(lu LU, i, j int, k int32) {
	if k < 0 {
		k = -k
	}
	if i != 0 {
		lu.U.Bound(i, k)
	}
	if j != 0 {
		lu.L.Bound(j, k)
	}
}

// DeriveGlobal scans every location invariant and edge guard of sys and
// returns the global clock-bounds map each clock needs to stay below: the
// largest constant it is ever compared against, used as a location-
// independent (extrapolation.Global) abstraction (spec.md §4.3 "global...
// variants").
func DeriveGlobal(sys *ta.System) LU {
	layout := sys.Layout()
	dim := layout.PlainDim()
	lu := NewLU(dim)
	for p, proc := range sys.Processes {
		for _, loc := range proc.Locations {
			for _, c := range loc.ClockInvariant {
				pc := layout.PlainConstraint(p, c)
				scanConstraint(lu, pc.I, pc.J, pc.K)
			}
		}
		for _, e := range proc.Edges {
			for _, c := range e.ClockGuard {
				pc := layout.PlainConstraint(p, c)
				scanConstraint(lu, pc.I, pc.J, pc.K)
			}
		}
	}
	return lu
}

// DeriveLocal returns the per-location clock-bounds map for the discrete
// state vloc: only the invariant of each process's current location and
// the guards of its outgoing edges contribute, giving tighter bounds than
// DeriveGlobal at the cost of being keyed by discrete state (spec.md §4.3
// "local... variants", served through a Cache).
func DeriveLocal(sys *ta.System, vloc ta.Vloc) LU {
	layout := sys.Layout()
	dim := layout.PlainDim()
	lu := NewLU(dim)
	for p, locIdx := range vloc {
		proc := sys.Processes[p]
		loc := proc.Locations[locIdx]
		for _, c := range loc.ClockInvariant {
			pc := layout.PlainConstraint(p, c)
			scanConstraint(lu, pc.I, pc.J, pc.K)
		}
		for _, eIdx := range proc.OutgoingFrom(locIdx) {
			for _, c := range proc.Edges[eIdx].ClockGuard {
				pc := layout.PlainConstraint(p, c)
				scanConstraint(lu, pc.I, pc.J, pc.K)
			}
		}
	}
	return lu
}

// NewVlocCache builds a Cache keyed by the same "[l0 l1 ...]" string
// (fmt.Sprint of a []int) package zg derives from a vloc before calling an
// extrapolation.Operator[string], computing each entry's bounds with
// DeriveLocal.
func NewVlocCache(sys *ta.System, numBuckets int) *Cache[string] {
	return NewCache(numBuckets, hashString, func(key string) LU {
		return DeriveLocal(sys, decodeVlocKey(key))
	})
}

// decodeVlocKey parses fmt.Sprint([]int(v))'s "[l0 l1 ...]" rendering back
// into a ta.Vloc.
func decodeVlocKey(key string) ta.Vloc {
	inner := strings.TrimSuffix(strings.TrimPrefix(key, "["), "]")
	if inner == "" {
		return nil
	}
	fields := strings.Fields(inner)
	v := make(ta.Vloc, len(fields))
	for i, f := range fields {
		n, _ := strconv.Atoi(f)
		v[i] = n
	}
	return v
}

func hashString(s string) uint64 {
	var h uint64 = 14695981039346656037
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}
	return h
}
