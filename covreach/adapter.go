package covreach

import (
	"github.com/tchecker-go/tchecker/dbm"
	"github.com/tchecker-go/tchecker/intvar"
	"github.com/tchecker-go/tchecker/refzg"
	"github.com/tchecker-go/tchecker/ta"
	"github.com/tchecker-go/tchecker/zg"
)

type zgExplorer struct{ sys *zg.System }

// FromZG adapts a plain zone-graph System to the Explorer contract.
func FromZG(sys *zg.System) Explorer { return zgExplorer{sys} }

func (e zgExplorer) Initial() ([]Transition, error) {
	results, err := e.sys.Initial()
	if err != nil {
		return nil, err
	}
	out := make([]Transition, len(results))
	for i, r := range results {
		out[i] = Transition{Status: r.Status, Vloc: r.State.Vloc, IntVal: r.State.IntVal, Zone: r.State.Zone}
	}
	return out, nil
}

func (e zgExplorer) Next(vloc ta.Vloc, intval intvar.IntVal, zone *dbm.DBM) ([]Transition, error) {
	results, err := e.sys.Next(zg.State{Vloc: vloc, IntVal: intval, Zone: zone})
	if err != nil {
		return nil, err
	}
	out := make([]Transition, len(results))
	for i, r := range results {
		out[i] = Transition{Vedge: r.Vedge, Status: r.Status, Vloc: r.State.Vloc, IntVal: r.State.IntVal, Zone: r.State.Zone}
	}
	return out, nil
}

type refzgExplorer struct{ sys *refzg.System }

// FromRefZG adapts a reference-clock zone-graph System to the Explorer
// contract.
func FromRefZG(sys *refzg.System) Explorer { return refzgExplorer{sys} }

func (e refzgExplorer) Initial() ([]Transition, error) {
	results, err := e.sys.Initial()
	if err != nil {
		return nil, err
	}
	out := make([]Transition, len(results))
	for i, r := range results {
		out[i] = Transition{Status: r.Status, Vloc: r.State.Vloc, IntVal: r.State.IntVal, Zone: r.State.Zone}
	}
	return out, nil
}

func (e refzgExplorer) Next(vloc ta.Vloc, intval intvar.IntVal, zone *dbm.DBM) ([]Transition, error) {
	results, err := e.sys.Next(refzg.State{Vloc: vloc, IntVal: intval, Zone: zone})
	if err != nil {
		return nil, err
	}
	out := make([]Transition, len(results))
	for i, r := range results {
		out[i] = Transition{Vedge: r.Vedge, Status: r.Status, Vloc: r.State.Vloc, IntVal: r.State.IntVal, Zone: r.State.Zone}
	}
	return out, nil
}
