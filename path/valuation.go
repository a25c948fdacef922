package path

import (
	"math/big"

	"github.com/tchecker-go/tchecker/boundop"
	"github.com/tchecker-go/tchecker/dbm"
)

// Valuation is a rational clock valuation, indexed like a DBM: Valuation[0]
// is always the zero reference clock.
type Valuation []*big.Rat

func zero() *big.Rat { return new(big.Rat) }

// boundRat converts a finite Bound's magnitude to a *big.Rat; callers must
// check IsInfinity first.
func boundRat(b boundop.Bound) *big.Rat {
	return new(big.Rat).SetInt64(int64(b.K))
}

// SamplePoint picks one rational valuation inside d, one clock at a time
// against the reference clock, then validates the candidate against every
// pairwise constraint in d (spec.md §4.8). Per-clock sampling against the
// reference only is a deliberate simplification (documented in DESIGN.md):
// it can reject a point that full linear-programming feasibility would
// accept, in which case it returns ErrNoConcretePoint rather than a wrong
// point.
func SamplePoint(d *dbm.DBM) (Valuation, error) {
	v := samplePerClock(d)
	if !validate(d, v) {
		return nil, ErrNoConcretePoint
	}
	return v, nil
}

// samplePerClock builds a candidate using only each clock's bound against
// the reference clock; it does not itself guarantee full DBM validity.
func samplePerClock(d *dbm.DBM) Valuation {
	dim := d.Dim()
	v := make(Valuation, dim)
	v[0] = zero()
	half := big.NewRat(1, 2)
	one := big.NewRat(1, 1)
	for i := 1; i < dim; i++ {
		lowerBound := d.At(0, i) // x_0 - x_i <Cmp> K  =>  x_i >= -K (strict if Cmp==Lt)
		upperBound := d.At(i, 0) // x_i - x_0 <Cmp> K  =>  x_i <= K (strict if Cmp==Lt)

		lower := new(big.Rat).Neg(boundRat(lowerBound))
		lowerStrict := lowerBound.Cmp == boundop.Lt

		if upperBound.IsInfinity() {
			point := new(big.Rat).Set(lower)
			if lowerStrict {
				point.Add(point, one)
			}
			v[i] = point
			continue
		}
		upper := boundRat(upperBound)
		point := new(big.Rat).Add(lower, upper)
		point.Mul(point, half)
		v[i] = point
	}
	return v
}

// validate checks every pairwise constraint d.At(i,j) against candidate v.
func validate(d *dbm.DBM, v Valuation) bool {
	dim := d.Dim()
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if i == j {
				continue
			}
			b := d.At(i, j)
			if b.IsInfinity() {
				continue
			}
			diff := new(big.Rat).Sub(v[i], v[j])
			k := boundRat(b)
			cmp := diff.Cmp(k)
			if b.Cmp == boundop.Lt {
				if cmp >= 0 {
					return false
				}
			} else if cmp > 0 {
				return false
			}
		}
	}
	return true
}
