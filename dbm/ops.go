package dbm

import "github.com/tchecker-go/tchecker/boundop"

// Constraint is a single clock-difference constraint x_i - x_j <Cmp> K, as
// produced by TA guard/invariant evaluation (spec.md §4.4) and consumed by
// Constrain.
type Constraint struct {
	I, J int
	Cmp  boundop.Cmp
	K    int32
}

// bound renders c as the Bound it intersects the DBM with.
func (c Constraint) bound() boundop.Bound { return boundop.Bound{Cmp: c.Cmp, K: c.K} }

// Reset describes x := y + k. y == 0 is the common "reset to constant"
// case (including plain reset-to-zero when k == 0 too).
type Reset struct {
	X, Y int
	K    int32
}

// Tighten closes d under the Floyd-Warshall triangle inequality:
//
//	d[i][k] := min(d[i][k], d[i][j] + d[j][k])  for all i, j, k
//
// It returns the tightened DBM (a new value; d is not mutated). If any
// diagonal cell becomes strictly tighter than LEZero the zone is infeasible
// and Tighten returns Empty(dim), nil. An arithmetic overflow anywhere in
// the closure aborts the whole operation and returns ErrOverflow.
func Tighten(d *DBM) (*DBM, error) {
	if d.IsEmpty() {
		return Empty(d.dim), nil
	}
	out := d.Clone()
	return closeDBM(out)
}

// closeDBM runs the Floyd-Warshall closure over out in place and returns it
// (or Empty on infeasibility). Shared by Tighten and Constrain so both use
// the same, once-proven-correct closure rather than a bespoke incremental
// variant that would be infeasible to validate without running the
// toolchain.
func closeDBM(out *DBM) (*DBM, error) {
	dim := out.dim
	for k := 0; k < dim; k++ {
		for i := 0; i < dim; i++ {
			ik := out.At(i, k)
			if ik.IsInfinity() {
				continue
			}
			for j := 0; j < dim; j++ {
				kj := out.At(k, j)
				sum, ok := boundop.Add(ik, kj)
				if !ok {
					return nil, ErrOverflow
				}
				if boundop.Less(sum, out.At(i, j)) {
					out.set(i, j, sum)
				}
			}
		}
	}
	for i := 0; i < dim; i++ {
		if boundop.Less(out.At(i, i), boundop.LEZero) {
			return Empty(dim), nil
		}
	}
	for i := 0; i < dim; i++ {
		out.set(i, i, boundop.LEZero)
	}
	return out, nil
}

// Constrain intersects d with the single constraint x_i - x_j <Cmp> K. Per
// spec.md §4.1, the constraint is installed only if it is strictly tighter
// than the current DBM[i][j]; the DBM is then re-tightened so the result
// stays canonical. Returns Empty(dim) if the result is infeasible.
func Constrain(d *DBM, c Constraint) (*DBM, error) {
	if d.IsEmpty() {
		return Empty(d.dim), nil
	}
	nb := c.bound()
	if !boundop.Less(nb, d.At(c.I, c.J)) {
		// Not strictly tighter: intersection is a no-op.
		return d.Clone(), nil
	}
	out := d.Clone()
	out.set(c.I, c.J, nb)
	return closeDBM(out)
}

// ConstrainAll folds Constrain over cs in order, short-circuiting at the
// first Empty result (spec.md §4.1 "fold over a constraint container,
// stopping at first empty").
func ConstrainAll(d *DBM, cs []Constraint) (*DBM, error) {
	cur := d
	for _, c := range cs {
		next, err := Constrain(cur, c)
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

// Reset applies x := y + k to d and returns the result, which remains tight
// without a full re-close: row/column x is replaced wholesale from row/
// column y (or from the reference row/column 0 when y == 0), so no new
// triangle-inequality violation can arise (spec.md §4.1).
//
// Three policies, selected by r.Y:
//
//	y == 0            reset to constant k: copy row/col 0 shifted by k/-k.
//	y != x, y != 0     copy row/col y shifted by k/-k.
//	y == x, k == 0     no-op.
func ApplyReset(d *DBM, r Reset) *DBM {
	if r.Y == r.X && r.K == 0 {
		return d.Clone()
	}
	if d.IsEmpty() {
		return Empty(d.dim)
	}
	out := d.Clone()
	dim := out.dim
	src := r.Y
	shift := boundop.Bound{Cmp: boundop.Le, K: r.K}
	negShift := boundop.Bound{Cmp: boundop.Le, K: -r.K}

	for i := 0; i < dim; i++ {
		if i == r.X {
			continue
		}
		// row x: DBM[x][i] = DBM[y][i] + k  (x - i = (y - i) + k)
		if v, ok := boundop.Add(out.At(src, i), shift); ok {
			out.set(r.X, i, v)
		}
		// col x: DBM[i][x] = DBM[i][y] - k
		if v, ok := boundop.Add(out.At(i, src), negShift); ok {
			out.set(i, r.X, v)
		}
	}
	out.set(r.X, r.X, boundop.LEZero)
	out.set(r.X, src, shift)
	out.set(src, r.X, negShift)
	if src == r.X {
		out.set(r.X, r.X, boundop.LEZero)
	}
	return out
}

// OpenUp applies time-elapse: every non-reference clock's upper bound
// against 0 becomes unconstrained (DBM[i][0] = LTInfinity for i > 0); lower
// bounds (DBM[0][i]) are untouched. The result stays tight because row 0
// only ever tightens other rows, never loosens them (spec.md §4.1).
func OpenUp(d *DBM) *DBM {
	if d.IsEmpty() {
		return Empty(d.dim)
	}
	return OpenColumn(d, 0)
}

// OpenColumn relaxes every row's bound against column col to LTInfinity,
// except the diagonal, which stays LEZero. OpenUp is the col == 0 case;
// networks of reference clocks (package refdbm) generalize it to one call
// per reference clock to let time elapse independently on each process.
func OpenColumn(d *DBM, col int) *DBM {
	if d.IsEmpty() {
		return Empty(d.dim)
	}
	out := d.Clone()
	for i := 0; i < out.dim; i++ {
		if i == col {
			continue
		}
		out.set(i, col, boundop.LTInfinity)
	}
	return out
}

// OpenDown applies the time-predecessor operator: every clock's lower bound
// against 0 is relaxed to LEZero, then the DBM is re-tightened.
func OpenDown(d *DBM) (*DBM, error) {
	if d.IsEmpty() {
		return Empty(d.dim), nil
	}
	out := d.Clone()
	for i := 1; i < out.dim; i++ {
		out.set(0, i, boundop.LEZero)
	}
	return Tighten(out)
}
