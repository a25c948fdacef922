package extrapolation

import (
	"github.com/tchecker-go/tchecker/clockbounds"
	"github.com/tchecker-go/tchecker/dbm"
)

// Kind selects which abstraction operator a Global or Local applies.
type Kind uint8

const (
	LU Kind = iota
	LUPlus
	M
	MPlus
	NoOp
)

func apply(k Kind, d *dbm.DBM, lu clockbounds.LU) (*dbm.DBM, error) {
	switch k {
	case LU:
		return dbm.ExtraLU(d, lu.L.ToDBMBounds(), lu.U.ToDBMBounds())
	case LUPlus:
		return dbm.ExtraLUPlus(d, lu.L.ToDBMBounds(), lu.U.ToDBMBounds())
	case M:
		return dbm.ExtraM(d, lu.AsM().ToDBMBounds())
	case MPlus:
		return dbm.ExtraMPlus(d, lu.AsM().ToDBMBounds())
	case NoOp:
		return d.Clone(), nil
	default:
		return d.Clone(), nil
	}
}

// Operator is the (dbm, vloc) -> dbm contract, keyed by a discrete state K
// (typically a ta.Vloc-derived comparable key).
type Operator[K comparable] interface {
	Extrapolate(d *dbm.DBM, key K) (*dbm.DBM, error)
}

// Global applies the same clock-bounds map to every zone regardless of
// discrete state — valid when the network's clock bounds do not depend on
// location (spec.md §4.3 "global ... variants").
type Global[K comparable] struct {
	Kind   Kind
	Bounds clockbounds.LU
}

// Extrapolate implements Operator.
func (g Global[K]) Extrapolate(d *dbm.DBM, _ K) (*dbm.DBM, error) {
	return apply(g.Kind, d, g.Bounds)
}

// Local looks up the clock-bounds map per discrete state through a
// clockbounds.Cache, re-deriving tighter bounds location by location
// (spec.md §4.3 "local ... variants").
type Local[K comparable] struct {
	Kind  Kind
	Cache *clockbounds.Cache[K]
}

// Extrapolate implements Operator.
func (l Local[K]) Extrapolate(d *dbm.DBM, key K) (*dbm.DBM, error) {
	return apply(l.Kind, d, l.Cache.Get(key))
}
