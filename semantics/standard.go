package semantics

import "github.com/tchecker-go/tchecker/dbm"

// Transition is the already-resolved (globally-indexed) input to Next: the
// flat clock-constraint/reset containers ta.System.Next produces for one
// chosen vedge, after ta.ClockLayout has mapped every process-local clock
// index to its plain-DBM global index.
type Transition struct {
	SrcInvariant []dbm.Constraint
	Guard        []dbm.Constraint
	Reset        []dbm.Reset
	TgtInvariant []dbm.Constraint
}

// Next applies Flavour's contract to d and t, in order, short-circuiting
// at the first empty intersection (spec.md §4.3).
func Next(d *dbm.DBM, t Transition, f Flavour) (*dbm.DBM, error) {
	cur, err := dbm.ConstrainAll(d, t.SrcInvariant)
	if err != nil || cur.IsEmpty() {
		return cur, err
	}
	cur, err = dbm.ConstrainAll(cur, t.Guard)
	if err != nil || cur.IsEmpty() {
		return cur, err
	}
	for _, r := range t.Reset {
		cur = dbm.ApplyReset(cur, r)
	}
	cur, err = dbm.ConstrainAll(cur, t.TgtInvariant)
	if err != nil || cur.IsEmpty() {
		return cur, err
	}
	if f == Elapsed {
		cur = dbm.OpenUp(cur)
	}
	return cur, nil
}

// Initial builds the zone of an initial state: the universal-positive zone
// of dimension dim, intersected with tgt_invariant, then (if Elapsed)
// opened up (spec.md §4.3 "Initial variants").
func Initial(dim int, tgtInvariant []dbm.Constraint, f Flavour) (*dbm.DBM, error) {
	cur, err := dbm.ConstrainAll(dbm.UniversalPositive(dim), tgtInvariant)
	if err != nil || cur.IsEmpty() {
		return cur, err
	}
	if f == Elapsed {
		cur = dbm.OpenUp(cur)
	}
	return cur, nil
}
