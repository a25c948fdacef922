// Package refdbm: sentinel errors.
//
// Most refdbm operations report infeasibility as Empty(l), matching the
// underlying dbm package (spec.md §4.2); refdbm introduces no error
// conditions of its own beyond what dbm already reports (overflow).
package refdbm
