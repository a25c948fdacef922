package dbm

import (
	"fmt"

	"github.com/tchecker-go/tchecker/boundop"
)

// DBM is a row-major dim*dim difference-bound matrix. The zero value is not
// a valid DBM; use New, Universal, UniversalPositive, Zero or Empty.
type DBM struct {
	dim   int
	cells []boundop.Bound
}

// emptyZero is the distinguished (<,0) diagonal marking the Empty sentinel;
// every other Empty DBM cell is left zero-valued (never read).
var emptyZero = boundop.Bound{Cmp: boundop.Lt, K: 0}

// Dim returns the matrix dimension (number of clocks including the
// reference clock 0).
func (d *DBM) Dim() int { return d.dim }

// At returns DBM[i][j]. Panics on out-of-range indices: a precondition
// violation per spec.md §7, not a recoverable condition.
func (d *DBM) At(i, j int) boundop.Bound {
	d.checkIndex(i)
	d.checkIndex(j)
	return d.cells[i*d.dim+j]
}

// set writes DBM[i][j]; unexported because callers outside this package must
// go through the operations below to preserve tightness invariants.
func (d *DBM) set(i, j int, b boundop.Bound) {
	d.cells[i*d.dim+j] = b
}

func (d *DBM) checkIndex(i int) {
	if i < 0 || i >= d.dim {
		panic(fmt.Sprintf("dbm: clock index %d out of range [0,%d)", i, d.dim))
	}
}

// New allocates an uninitialized DBM of the given dimension; every cell is
// the zero Bound (Le,0) until populated. Most callers want Universal, Zero
// or UniversalPositive instead.
func New(dim int) *DBM {
	if dim <= 0 {
		panic("dbm: dimension must be positive")
	}
	return &DBM{dim: dim, cells: make([]boundop.Bound, dim*dim)}
}

// Universal returns the DBM with every off-diagonal bound at LTInfinity and
// the diagonal at LEZero: the unconstrained zone (spec.md §4.1).
func Universal(dim int) *DBM {
	d := New(dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if i == j {
				d.set(i, j, boundop.LEZero)
			} else {
				d.set(i, j, boundop.LTInfinity)
			}
		}
	}
	return d
}

// UniversalPositive is Universal additionally constrained so every clock is
// non-negative: DBM[0][i] == LEZero for all i > 0.
func UniversalPositive(dim int) *DBM {
	d := Universal(dim)
	for i := 1; i < dim; i++ {
		d.set(0, i, boundop.LEZero)
	}
	return d
}

// Zero returns the DBM where every clock (including the reference) is fixed
// to exactly 0: every bound is LEZero.
func Zero(dim int) *DBM {
	d := New(dim)
	for i := range d.cells {
		d.cells[i] = boundop.LEZero
	}
	return d
}

// Empty returns the unique representative of the empty zone: DBM[0][0] is
// set to the non-tight (<,0) sentinel. An Empty DBM's other cells carry no
// meaning and must not be read by callers; always test with IsEmpty first.
func Empty(dim int) *DBM {
	d := New(dim)
	d.set(0, 0, emptyZero)
	return d
}

// IsEmpty reports whether d is the empty-zone sentinel.
func (d *DBM) IsEmpty() bool {
	return boundop.Equal(d.At(0, 0), emptyZero)
}

// IsUniversal reports whether every off-diagonal bound is LTInfinity.
func (d *DBM) IsUniversal() bool {
	if d.IsEmpty() {
		return false
	}
	for i := 0; i < d.dim; i++ {
		for j := 0; j < d.dim; j++ {
			if i == j {
				continue
			}
			if !boundop.Equal(d.At(i, j), boundop.LTInfinity) {
				return false
			}
		}
	}
	return true
}

// IsPositive reports whether every clock is constrained to be non-negative:
// DBM[0][i] <= LEZero for all i > 0.
func (d *DBM) IsPositive() bool {
	if d.IsEmpty() {
		return false
	}
	for i := 1; i < d.dim; i++ {
		if !boundop.LessEqual(d.At(0, i), boundop.LEZero) {
			return false
		}
	}
	return true
}

// IsUniversalPositive reports whether d is exactly UniversalPositive(dim):
// every off-diagonal bound is LTInfinity except row 0, which is LEZero.
func (d *DBM) IsUniversalPositive() bool {
	if d.IsEmpty() {
		return false
	}
	for i := 0; i < d.dim; i++ {
		for j := 0; j < d.dim; j++ {
			if i == j {
				continue
			}
			if i == 0 {
				if !boundop.Equal(d.At(i, j), boundop.LEZero) {
					return false
				}
				continue
			}
			if !boundop.Equal(d.At(i, j), boundop.LTInfinity) {
				return false
			}
		}
	}
	return true
}

// IsTight reports whether d already satisfies the triangle-inequality
// closure (DBM[i][k] <= DBM[i][j] + DBM[j][k] for all i,j,k) and consistency
// (DBM[i][i] == LEZero for all i). Empty DBMs are considered not tight by
// construction (spec.md §4.1).
func (d *DBM) IsTight() bool {
	if d.IsEmpty() {
		return false
	}
	for i := 0; i < d.dim; i++ {
		if !boundop.Equal(d.At(i, i), boundop.LEZero) {
			return false
		}
	}
	for i := 0; i < d.dim; i++ {
		for j := 0; j < d.dim; j++ {
			for k := 0; k < d.dim; k++ {
				sum, ok := boundop.Add(d.At(i, j), d.At(j, k))
				if !ok {
					continue
				}
				if boundop.Less(sum, d.At(i, k)) {
					return false
				}
			}
		}
	}
	return true
}

// Clone returns an independent copy of d.
func (d *DBM) Clone() *DBM {
	c := &DBM{dim: d.dim, cells: make([]boundop.Bound, len(d.cells))}
	copy(c.cells, d.cells)
	return c
}

// IsEqual reports whether a and b hold identical bounds in every cell.
// Dimension mismatch is a precondition violation (panics), matching spec.md
// §7's treatment of mismatched dimensions.
func IsEqual(a, b *DBM) bool {
	requireSameDim(a, b)
	if a.IsEmpty() || b.IsEmpty() {
		return a.IsEmpty() == b.IsEmpty()
	}
	for i := range a.cells {
		if !boundop.Equal(a.cells[i], b.cells[i]) {
			return false
		}
	}
	return true
}

// IsLe reports a <= b (zone inclusion) iff a[i][j] <= b[i][j] for all i,j
// under the lexicographic bound order. The empty zone is included in every
// zone, and no non-empty zone is included in the empty zone.
func IsLe(a, b *DBM) bool {
	requireSameDim(a, b)
	if a.IsEmpty() {
		return true
	}
	if b.IsEmpty() {
		return false
	}
	for i := range a.cells {
		if !boundop.LessEqual(a.cells[i], b.cells[i]) {
			return false
		}
	}
	return true
}

func requireSameDim(a, b *DBM) {
	if a.dim != b.dim {
		panic(fmt.Sprintf("dbm: dimension mismatch %d vs %d", a.dim, b.dim))
	}
}
