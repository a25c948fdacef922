package covergraph

import (
	"github.com/tchecker-go/tchecker/clockbounds"
	"github.com/tchecker-go/tchecker/dbm"
	"github.com/tchecker-go/tchecker/refdbm"
	"github.com/tchecker-go/tchecker/semantics"
)

// ZonePredicate tests whether candidate's zone is covered by stored's zone
// (spec.md §4.6's six zone-predicate plug-ins).
type ZonePredicate func(candidate, stored *Node) (bool, error)

// Inclusion is plain zone inclusion: Z1 ⊆ Z2, tested with dbm.IsLe
// (spec.md §4.6 predicate 1).
func Inclusion(candidate, stored *Node) (bool, error) {
	return dbm.IsLe(candidate.Zone, stored.Zone), nil
}

// ExtraLUGlobal builds an aLU-inclusion predicate with one fixed global
// bounds pair: Z1 ⊆ Extra-LU(Z2, L, U) (spec.md §4.6 predicate 2). It
// materializes the abstraction rather than the pointwise rule that avoids
// doing so — functionally equivalent, simply not the constant-factor
// optimization described in original_source.
func ExtraLUGlobal(L, U clockbounds.Map) ZonePredicate {
	return func(candidate, stored *Node) (bool, error) {
		extra, err := dbm.ExtraLU(stored.Zone, L.ToDBMBounds(), U.ToDBMBounds())
		if err != nil {
			return false, err
		}
		return dbm.IsLe(candidate.Zone, extra), nil
	}
}

// ExtraLULocal builds an aLU-inclusion predicate whose bounds vary with
// the candidate's discrete state, served by a clockbounds.Cache (spec.md
// §4.6 predicate 3).
func ExtraLULocal(cache *clockbounds.Cache[int]) ZonePredicate {
	return func(candidate, stored *Node) (bool, error) {
		lu := cache.Get(int(HashDiscreteState(candidate)))
		extra, err := dbm.ExtraLU(stored.Zone, lu.L.ToDBMBounds(), lu.U.ToDBMBounds())
		if err != nil {
			return false, err
		}
		return dbm.IsLe(candidate.Zone, extra), nil
	}
}

// ExtraMGlobal is ExtraLUGlobal specialized to aM (L == U == M) (spec.md
// §4.6 predicate 4).
func ExtraMGlobal(M clockbounds.Map) ZonePredicate {
	return ExtraLUGlobal(M, M)
}

// ExtraMLocal is ExtraLULocal specialized to aM, collapsing the cached LU
// pair via LU.AsM (spec.md §4.6 predicate 4).
func ExtraMLocal(cache *clockbounds.Cache[int]) ZonePredicate {
	return func(candidate, stored *Node) (bool, error) {
		lu := cache.Get(int(HashDiscreteState(candidate)))
		m := lu.AsM().ToDBMBounds()
		extra, err := dbm.ExtraM(stored.Zone, m)
		if err != nil {
			return false, err
		}
		return dbm.IsLe(candidate.Zone, extra), nil
	}
}

// SyncInclusion builds a sync-zone inclusion predicate for RefDBM-backed
// nodes: project both zones via refdbm.ToDBM (precondition: both are
// synchronized) and compare with plain inclusion (spec.md §4.6 predicate
// 5). Returns an error from either projection if its input is not
// synchronized or overflows.
func SyncInclusion(l refdbm.Layout) ZonePredicate {
	return func(candidate, stored *Node) (bool, error) {
		cd, err := refdbm.ToDBM(candidate.Zone, l)
		if err != nil {
			return false, err
		}
		sd, err := refdbm.ToDBM(stored.Zone, l)
		if err != nil {
			return false, err
		}
		return dbm.IsLe(cd, sd), nil
	}
}

// SyncALUStar composes SyncInclusion with global aLU-inclusion over the
// projected plain DBMs: sync-aLU-inclusion for RefDBM (spec.md §4.6
// predicate 7). Gated on Elapsed semantics per SPEC_FULL.md's Open
// Question 2: under Standard semantics time never advances independently
// per process, so the aLU abstraction over a projected sync-zone would not
// be a sound over-approximation, and this returns ErrNotElapsed instead of
// a silently-wrong result.
func SyncALUStar(l refdbm.Layout, L, U clockbounds.Map, flavour semantics.Flavour) (ZonePredicate, error) {
	if flavour != semantics.Elapsed {
		return nil, ErrNotElapsed
	}
	return func(candidate, stored *Node) (bool, error) {
		cd, err := refdbm.ToDBM(candidate.Zone, l)
		if err != nil {
			return false, err
		}
		sd, err := refdbm.ToDBM(stored.Zone, l)
		if err != nil {
			return false, err
		}
		extra, err := dbm.ExtraLU(sd, L.ToDBMBounds(), U.ToDBMBounds())
		if err != nil {
			return false, err
		}
		return dbm.IsLe(cd, extra), nil
	}, nil
}

// TimeElapseALUStar is the time-elapse variant of SyncALUStar: it first
// opens up the projected stored zone (letting time elapse once more before
// abstracting) before applying aLU-inclusion (spec.md §4.6 predicate 6).
// Gated the same way as SyncALUStar.
func TimeElapseALUStar(l refdbm.Layout, L, U clockbounds.Map, flavour semantics.Flavour) (ZonePredicate, error) {
	if flavour != semantics.Elapsed {
		return nil, ErrNotElapsed
	}
	return func(candidate, stored *Node) (bool, error) {
		cd, err := refdbm.ToDBM(candidate.Zone, l)
		if err != nil {
			return false, err
		}
		sd, err := refdbm.ToDBM(stored.Zone, l)
		if err != nil {
			return false, err
		}
		opened := dbm.OpenUp(sd)
		extra, err := dbm.ExtraLU(opened, L.ToDBMBounds(), U.ToDBMBounds())
		if err != nil {
			return false, err
		}
		return dbm.IsLe(cd, extra), nil
	}, nil
}
