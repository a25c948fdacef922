package dbm

import "github.com/tchecker-go/tchecker/boundop"

// Bounds is a clock-bounds map indexed 0..n, where index 0 is conventionally
// 0 (spec.md §3 "Clock bounds map"). A missing (absent) bound is represented
// by a negative value and treated as -infinity, yielding universal
// abstraction for that row/column (spec.md §4.1).
type Bounds []int32

// at returns b[i] if in range, else -infinity (no bound known).
func (b Bounds) at(i int) int32 {
	if i < 0 || i >= len(b) || b[i] < 0 {
		return -boundop.InfK
	}
	return b[i]
}

// ExtraLU abstracts d against global or local LU bounds: for every
// off-diagonal (i,j), the bound is relaxed to LTInfinity if it exceeds the
// lower bound L[i], and to (<, -U[j]) if it falls below that (clock 0's
// bound is conventionally 0 and j == 0 is never abstracted against U). The
// result is re-tightened. extra_lu(d, L, U) superset-includes d (spec.md
// §4.1 invariant 7) and, over fixed L,U, has a finite image (invariant 8).
func ExtraLU(d *DBM, L, U Bounds) (*DBM, error) {
	if d.IsEmpty() {
		return Empty(d.dim), nil
	}
	out := d.Clone()
	dim := out.dim
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if i == j {
				continue
			}
			cur := out.At(i, j)
			if cur.IsInfinity() {
				continue
			}
			if int64(cur.K) > int64(L.at(i)) {
				out.set(i, j, boundop.LTInfinity)
				continue
			}
			if j != 0 && int64(-cur.K) > int64(U.at(j)) {
				out.set(i, j, boundop.Bound{Cmp: boundop.Lt, K: -U.at(j)})
			}
		}
	}
	return closeDBM(out)
}

// ExtraLUPlus is ExtraLU additionally abstracting rows against U[i] and
// columns against L[j]; it is strictly coarser than ExtraLU (spec.md §4.1).
func ExtraLUPlus(d *DBM, L, U Bounds) (*DBM, error) {
	if d.IsEmpty() {
		return Empty(d.dim), nil
	}
	out := d.Clone()
	dim := out.dim
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if i == j {
				continue
			}
			cur := out.At(i, j)
			if cur.IsInfinity() {
				continue
			}
			lowI := int64(L.at(i))
			upJ := int64(U.at(j))
			upI := int64(U.at(i))
			lowJ := int64(L.at(j))
			switch {
			case int64(cur.K) > lowI:
				out.set(i, j, boundop.LTInfinity)
			case j != 0 && int64(-cur.K) > upJ:
				out.set(i, j, boundop.Bound{Cmp: boundop.Lt, K: -U.at(j)})
			case i != 0 && int64(cur.K) > upI:
				out.set(i, j, boundop.LTInfinity)
			case int64(-cur.K) > lowJ:
				out.set(i, j, boundop.Bound{Cmp: boundop.Lt, K: -L.at(j)})
			}
		}
	}
	return closeDBM(out)
}

// ExtraM is ExtraLU with a single bounds map used for both L and U:
// extra_m(d, M) == ExtraLU(d, M, M) (spec.md §4.1).
func ExtraM(d *DBM, M Bounds) (*DBM, error) { return ExtraLU(d, M, M) }

// ExtraMPlus is ExtraLUPlus with a single bounds map for both L and U:
// extra_m_plus(d, M) == ExtraLUPlus(d, M, M) (spec.md §4.1).
func ExtraMPlus(d *DBM, M Bounds) (*DBM, error) { return ExtraLUPlus(d, M, M) }
