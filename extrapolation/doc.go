// Package extrapolation implements the abstraction operator contract of
// spec.md §4.3: a function (dbm, dim, vloc) -> dbm such that
// extrap(dbm, ·) superset-includes dbm and the image of extrap over
// reachable zones is finite. Concrete instances wrap the global/local
// extra_lu, extra_lu_plus, extra_m, extra_m_plus operators already
// implemented over plain DBMs (package dbm), selecting the bounds map
// either once per run (Global) or per discrete state via a
// clockbounds.Cache (Local). Extrapolation is applied only in package zg,
// never refzg (spec.md §4.3).
package extrapolation
