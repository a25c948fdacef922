package refdbm

import (
	"github.com/tchecker-go/tchecker/boundop"
	"github.com/tchecker-go/tchecker/dbm"
)

// Universal returns the unconstrained RefDBM over l: every off-diagonal
// bound is LTInfinity.
func Universal(l Layout) *dbm.DBM { return dbm.Universal(l.Dim()) }

// UniversalPositive returns Universal(l) additionally constrained so every
// offset clock is synchronized to be no earlier than the reference clock
// that owns it: RDBM[owner(j)][j] == LEZero for every offset clock j.
func UniversalPositive(l Layout) *dbm.DBM {
	d := Universal(l)
	for j := l.RefCount; j < l.Dim(); j++ {
		d, _ = dbm.Constrain(d, dbm.Constraint{I: l.Owner(j), J: j, Cmp: boundop.Le, K: 0})
	}
	return d
}

// Zero returns the RefDBM where every clock, reference or offset, is fixed
// to exactly the same value.
func Zero(l Layout) *dbm.DBM { return dbm.Zero(l.Dim()) }

// Empty returns the empty-zone sentinel over l.
func Empty(l Layout) *dbm.DBM { return dbm.Empty(l.Dim()) }

// IsEmpty reports whether d is the empty-zone sentinel.
func IsEmpty(d *dbm.DBM) bool { return d.IsEmpty() }

// IsUniversal reports whether every off-diagonal bound of d is LTInfinity.
// The reference-clock layout does not change this test: it is the same
// predicate as over plain DBMs.
func IsUniversal(d *dbm.DBM) bool { return d.IsUniversal() }

// IsPositive reports whether every offset clock is bounded below by the
// reference clock that owns it.
func IsPositive(d *dbm.DBM, l Layout) bool {
	if d.IsEmpty() {
		return false
	}
	for j := l.RefCount; j < l.Dim(); j++ {
		if !boundop.LessEqual(d.At(l.Owner(j), j), boundop.LEZero) {
			return false
		}
	}
	return true
}

// IsUniversalPositive reports whether d is exactly UniversalPositive(l):
// LEZero on the diagonal and on every (owner(j), j) pair, LTInfinity
// everywhere else.
func IsUniversalPositive(d *dbm.DBM, l Layout) bool {
	if d.IsEmpty() {
		return false
	}
	dim := l.Dim()
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			want := boundop.LTInfinity
			if i == j || i == l.Owner(j) {
				want = boundop.LEZero
			}
			if !boundop.Equal(d.At(i, j), want) {
				return false
			}
		}
	}
	return true
}

// IsTight reports whether d already satisfies the triangle-inequality
// closure; delegated directly to the underlying DBM algebra.
func IsTight(d *dbm.DBM) bool { return d.IsTight() }

// IsOpenUp reports whether d admits an unbounded time elapse on every
// reference clock: no clock (offset or reference) carries an upper bound
// against any reference clock other than itself.
func IsOpenUp(d *dbm.DBM, l Layout) bool {
	if d.IsEmpty() {
		return false
	}
	dim := l.Dim()
	for t := 0; t < l.RefCount; t++ {
		for x := 0; x < dim; x++ {
			if x == t {
				continue
			}
			if !d.At(x, t).IsInfinity() {
				return false
			}
		}
	}
	return true
}

// IsEqual reports whether a and b hold identical bounds in every cell.
func IsEqual(a, b *dbm.DBM) bool { return dbm.IsEqual(a, b) }

// IsLe reports zone inclusion a <= b.
func IsLe(a, b *dbm.DBM) bool { return dbm.IsLe(a, b) }
