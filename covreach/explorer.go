package covreach

import (
	"github.com/tchecker-go/tchecker/dbm"
	"github.com/tchecker-go/tchecker/intvar"
	"github.com/tchecker-go/tchecker/ta"
)

// Transition is one produced successor (or initial state): the vedge that
// fired (the zero Vedge for an initial state), the reached discrete state
// and zone, and the ta.Status reported by the underlying zone-graph
// system. Search drops anything whose Status isn't ta.OK.
type Transition struct {
	Vedge  ta.Vedge
	Vloc   ta.Vloc
	IntVal intvar.IntVal
	Zone   *dbm.DBM
	Status ta.Status
}

// Explorer is the zone-graph contract Search needs: initial()/next() as
// spec.md §4.7's pseudocode names them. Package zg and package refzg each
// satisfy this indirectly through the FromZG/FromRefZG adapters below,
// keeping Search itself agnostic to which zone flavour produced its
// states.
type Explorer interface {
	Initial() ([]Transition, error)
	Next(vloc ta.Vloc, intval intvar.IntVal, zone *dbm.DBM) ([]Transition, error)
}
