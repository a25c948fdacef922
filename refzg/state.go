package refzg

import (
	"github.com/tchecker-go/tchecker/dbm"
	"github.com/tchecker-go/tchecker/intvar"
	"github.com/tchecker-go/tchecker/ta"
)

// State is the tuple (vloc, intval, zone) over a RefDBM zone.
type State struct {
	Vloc   ta.Vloc
	IntVal intvar.IntVal
	Zone   *dbm.DBM
}

// InitialResult is the outcome of evaluating one initial vloc.
type InitialResult struct {
	State  State
	Status ta.Status
}

// NextResult is the outcome of evaluating one outgoing vedge from a State.
type NextResult struct {
	Vedge  ta.Vedge
	State  State
	Status ta.Status
}
