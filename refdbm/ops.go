package refdbm

import (
	"github.com/tchecker-go/tchecker/boundop"
	"github.com/tchecker-go/tchecker/dbm"
)

// ClockConstraint is a single constraint over clocks addressed in the
// reference-clock layout, J (or I) may be RefClockID meaning "the
// reference clock owning the other operand" (spec.md §4.2).
type ClockConstraint struct {
	I, J int
	Cmp  boundop.Cmp
	K    int32
}

func (c ClockConstraint) resolve(l Layout) dbm.Constraint {
	i, j := c.I, c.J
	if i == RefClockID {
		i = l.Owner(j)
	}
	if j == RefClockID {
		j = l.Owner(i)
	}
	return dbm.Constraint{I: i, J: j, Cmp: c.Cmp, K: c.K}
}

// Constrain intersects d with a single clock constraint, resolving
// RefClockID operands against l first.
func Constrain(d *dbm.DBM, l Layout, c ClockConstraint) (*dbm.DBM, error) {
	return dbm.Constrain(d, c.resolve(l))
}

// ConstrainAll folds Constrain over cs, short-circuiting at the first
// empty result.
func ConstrainAll(d *dbm.DBM, l Layout, cs []ClockConstraint) (*dbm.DBM, error) {
	cur := d
	for _, c := range cs {
		next, err := Constrain(cur, l, c)
		if err != nil {
			return nil, err
		}
		if next.IsEmpty() {
			return next, nil
		}
		cur = next
	}
	return cur, nil
}

// refSet returns clocks, defaulting to every reference clock in l when none
// is given explicitly.
func refSet(l Layout, clocks []int) []int {
	if clocks == nil {
		return defaultRefSet(l)
	}
	return clocks
}

// Synchronize identifies every pair of reference clocks in clocks (all of
// them, if clocks is nil): after Synchronize, the selected reference clocks
// read the same value. Returns Empty(l) if doing so is infeasible.
func Synchronize(d *dbm.DBM, l Layout, clocks []int) (*dbm.DBM, error) {
	set := refSet(l, clocks)
	cur := d
	for _, ti := range set {
		for _, tj := range set {
			if ti == tj {
				continue
			}
			var err error
			cur, err = dbm.Constrain(cur, dbm.Constraint{I: ti, J: tj, Cmp: boundop.Le, K: 0})
			if err != nil {
				return nil, err
			}
			if cur.IsEmpty() {
				return cur, nil
			}
		}
	}
	return cur, nil
}

// IsSynchronized reports whether every pair of reference clocks in clocks
// (all of them, if clocks is nil) already reads the same value.
func IsSynchronized(d *dbm.DBM, l Layout, clocks []int) bool {
	if d.IsEmpty() {
		return false
	}
	set := refSet(l, clocks)
	for _, ti := range set {
		for _, tj := range set {
			if ti == tj {
				continue
			}
			if !boundop.Equal(d.At(ti, tj), boundop.LEZero) {
				return false
			}
		}
	}
	return true
}

// IsSynchronizable reports whether Synchronize over every reference clock
// would not yield the empty zone.
func IsSynchronizable(d *dbm.DBM, l Layout) bool {
	s, err := Synchronize(d, l, nil)
	if err != nil {
		return false
	}
	return !s.IsEmpty()
}

// BoundSpread constrains every pair of reference clocks in clocks (all of
// them, if clocks is nil) to differ by at most spread. A negative spread is
// infeasible and always yields Empty(l).
func BoundSpread(d *dbm.DBM, l Layout, spread int32, clocks []int) (*dbm.DBM, error) {
	set := refSet(l, clocks)
	cur := d
	for _, ti := range set {
		for _, tj := range set {
			if ti == tj {
				continue
			}
			var err error
			cur, err = dbm.Constrain(cur, dbm.Constraint{I: ti, J: tj, Cmp: boundop.Le, K: spread})
			if err != nil {
				return nil, err
			}
			if cur.IsEmpty() {
				return cur, nil
			}
		}
	}
	return dbm.Tighten(cur)
}

// ResetToReferenceClock applies x := owner(x) + 0 to d: offset clock x
// becomes synchronized with the reference clock it is measured against.
// Implemented as a plain clock reset onto the owning reference clock, which
// already leaves the result tight without a further closure pass.
func ResetToReferenceClock(d *dbm.DBM, l Layout, x int) *dbm.DBM {
	return dbm.ApplyReset(d, dbm.Reset{X: x, Y: l.Owner(x), K: 0})
}

// ClockReset is x := y + k in the reference-clock layout; y may be
// RefClockID, meaning "reset x to the reference clock that owns it".
type ClockReset struct {
	X, Y int
	K    int32
}

// Reset applies a single ClockReset to d.
func Reset(d *dbm.DBM, l Layout, r ClockReset) *dbm.DBM {
	y := r.Y
	if y == RefClockID {
		y = l.Owner(r.X)
	}
	return dbm.ApplyReset(d, dbm.Reset{X: r.X, Y: y, K: r.K})
}

// ResetAll folds Reset over rs in order.
func ResetAll(d *dbm.DBM, l Layout, rs []ClockReset) *dbm.DBM {
	cur := d
	for _, r := range rs {
		cur = Reset(cur, l, r)
	}
	return cur
}

// AsynchronousOpenUp lets time elapse independently on every reference
// clock in delayAllowed (all of them, if delayAllowed is nil): for each
// such reference clock t, every clock's upper bound against t is relaxed to
// LTInfinity. Unlike Synchronize and BoundSpread this is a pure relaxation,
// so the result needs no re-closure (spec.md §4.2 "asynchronous time
// elapse").
func AsynchronousOpenUp(d *dbm.DBM, l Layout, delayAllowed []int) *dbm.DBM {
	set := refSet(l, delayAllowed)
	cur := d
	for _, t := range set {
		cur = dbm.OpenColumn(cur, t)
	}
	return cur
}

// ToDBM projects a synchronized RefDBM down to a plain DBM over one
// reference clock (index 0) plus l's offset clocks, in offset-clock
// declaration order. Projecting an unsynchronized RefDBM produces a DBM
// whose bounds against clock 0 reflect whichever reference clock each
// offset clock happens to be measured against, which is only meaningful
// once the reference clocks agree (spec.md §4.2).
func ToDBM(d *dbm.DBM, l Layout) (*dbm.DBM, error) {
	dim := l.OffsetCount() + 1
	out := dbm.Universal(dim)
	offsetIndex := func(x int) int { return x - l.RefCount + 1 }

	var err error
	for x := l.RefCount; x < l.Dim(); x++ {
		ox := offsetIndex(x)
		owner := l.Owner(x)
		out, err = dbm.Constrain(out, dbm.Constraint{I: 0, J: ox, Cmp: d.At(owner, x).Cmp, K: d.At(owner, x).K})
		if err != nil {
			return nil, err
		}
		out, err = dbm.Constrain(out, dbm.Constraint{I: ox, J: 0, Cmp: d.At(x, owner).Cmp, K: d.At(x, owner).K})
		if err != nil {
			return nil, err
		}
		for y := l.RefCount; y < l.Dim(); y++ {
			if x == y {
				continue
			}
			oy := offsetIndex(y)
			out, err = dbm.Constrain(out, dbm.Constraint{I: ox, J: oy, Cmp: d.At(x, y).Cmp, K: d.At(x, y).K})
			if err != nil {
				return nil, err
			}
		}
		if out.IsEmpty() {
			return out, nil
		}
	}
	return out, nil
}
