package boundop

import "math"

// Cmp is the comparator half of a difference bound: whether the constraint
// is strict (<) or non-strict (<=).
type Cmp uint8

const (
	// Le denotes a non-strict bound: x_i - x_j <= K.
	Le Cmp = iota
	// Lt denotes a strict bound: x_i - x_j < K.
	Lt
)

// String renders the comparator as it appears in printed constraints.
func (c Cmp) String() string {
	if c == Lt {
		return "<"
	}
	return "<="
}

// dual flips a comparator: dual(<=) = <, dual(<) = <=. Used by Negate.
func (c Cmp) dual() Cmp {
	if c == Lt {
		return Le
	}
	return Lt
}

// Bound is a difference-bound pair (Cmp, K), representing x_i - x_j <Cmp> K.
// K is meaningless when the Bound equals LTInfinity.
type Bound struct {
	Cmp Cmp
	K   int32
}

// InfK is the sentinel magnitude used for +infinity bounds. It is chosen far
// from math.MaxInt32 so that Add can detect genuine overflow without
// colliding with the infinity encoding.
const InfK int32 = math.MaxInt32 / 2

// LEZero is the (<=, 0) bound: the diagonal of every consistent DBM, and the
// bound of a just-reset clock against the constant.
var LEZero = Bound{Cmp: Le, K: 0}

// LTInfinity is the (<, +inf) bound: no constraint at all.
var LTInfinity = Bound{Cmp: Lt, K: InfK}

// IsInfinity reports whether b denotes +infinity.
func (b Bound) IsInfinity() bool {
	return b.Cmp == Lt && b.K >= InfK
}

// Add computes the composition (c1,k1) + (c2,k2) = (min(c1,c2), k1+k2), with
// infinity absorbing (inf + anything = inf). ok is false on int32 overflow
// of a finite sum; callers must treat a false ok as a failed operation, not
// as a usable Bound.
func Add(a, b Bound) (sum Bound, ok bool) {
	if a.IsInfinity() || b.IsInfinity() {
		return LTInfinity, true
	}
	k64 := int64(a.K) + int64(b.K)
	if k64 > math.MaxInt32 || k64 < math.MinInt32 {
		return Bound{}, false
	}
	cmp := a.Cmp
	if b.Cmp == Lt {
		cmp = Lt
	}
	if a.Cmp == Le && b.Cmp == Le {
		cmp = Le
	}
	return Bound{Cmp: cmp, K: int32(k64)}, true
}

// Negate computes neg(c,k) = (dual(c), -k); used when mirroring a row into a
// column (or vice versa) during reset.
func Negate(b Bound) Bound {
	if b.IsInfinity() {
		// -infinity is not representable as a finite Bound; callers negate
		// finite bounds only (enforced by the reset/positivity call sites).
		return Bound{Cmp: b.Cmp.dual(), K: -InfK}
	}
	return Bound{Cmp: b.Cmp.dual(), K: -b.K}
}

// Less implements the lexicographic order: (<,k) < (<=,k) < (<,k+1). Two
// bounds with the same K differ only by strictness, and Lt is tighter.
func Less(a, b Bound) bool {
	if a.K != b.K {
		return a.K < b.K
	}
	return a.Cmp == Lt && b.Cmp == Le
}

// LessEqual is the non-strict companion of Less, used pervasively by is_le
// and by the tighten closure's `<=` comparisons.
func LessEqual(a, b Bound) bool {
	return !Less(b, a)
}

// Equal reports whether two bounds denote the same constraint.
func Equal(a, b Bound) bool {
	return a.Cmp == b.Cmp && a.K == b.K
}

// Min returns the tighter (numerically smaller) of two bounds, per Less.
func Min(a, b Bound) Bound {
	if Less(a, b) {
		return a
	}
	return b
}
