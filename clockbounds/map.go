package clockbounds

import "github.com/tchecker-go/tchecker/dbm"

// noBound marks "no bound known" for a clock; clockbounds.Map treats it the
// same way dbm.Bounds does: as negative infinity, yielding universal
// abstraction for that row/column.
const noBound int32 = -1

// Map is a clock-bounds map L[1..n] or U[1..n] (for aLU) or M[1..n] (for
// aM); index 0 is always 0 by convention (spec.md §3 "Clock bounds map").
type Map []int32

// NewMap allocates a Map of dim entries, index 0 fixed to 0, every other
// clock initially unbounded.
func NewMap(dim int) Map {
	m := make(Map, dim)
	for i := 1; i < dim; i++ {
		m[i] = noBound
	}
	return m
}

// At returns m[i], or noBound if i is out of range.
func (m Map) At(i int) int32 {
	if i < 0 || i >= len(m) {
		return noBound
	}
	return m[i]
}

// Bound merges k into clock i's bound: the stored bound becomes the
// maximum of its current value and k (a clock appearing in several guards
// needs to be abstracted against the largest constant it is ever compared
// to).
func (m Map) Bound(i int, k int32) {
	if i <= 0 || i >= len(m) {
		return
	}
	if k > m[i] {
		m[i] = k
	}
}

// ToDBMBounds converts m to the dbm.Bounds shape dbm's extrapolation
// operators consume.
func (m Map) ToDBMBounds() dbm.Bounds { return dbm.Bounds(m) }

// LU is a pair of clock-bounds maps used for aLU (and, when L and U are the
// same Map, aM) extrapolation.
type LU struct {
	L, U Map
}

// NewLU allocates an LU pair of dim entries each, both maps unbounded.
func NewLU(dim int) LU { return LU{L: NewMap(dim), U: NewMap(dim)} }

// Merge folds another LU's bounds into lu in place, taking the pointwise
// maximum of each map (the merge rule spec.md §3 describes for combining
// per-location contributions into a local bounds map).
func (lu LU) Merge(other LU) {
	for i := range lu.L {
		lu.L.Bound(i, other.L.At(i))
		lu.U.Bound(i, other.U.At(i))
	}
}

// AsM collapses lu to a single map for aM abstraction: M[i] = max(L[i], U[i]).
func (lu LU) AsM() Map {
	m := NewMap(len(lu.L))
	for i := range m {
		m.Bound(i, lu.L.At(i))
		m.Bound(i, lu.U.At(i))
	}
	return m
}
