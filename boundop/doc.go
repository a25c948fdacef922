// Package boundop implements difference-bound arithmetic: the small value
// type every DBM and RefDBM cell is built from.
//
// A Bound is a pair (Cmp, K) denoting the constraint x_i - x_j <Cmp> K, with
// Cmp one of Lt ("<") or Le ("<="). Two sentinels recur throughout the zone
// algebra: LEZero (the diagonal of a consistent DBM) and LTInfinity (an
// unconstrained difference). Bounds compose under Add (tightening through a
// third clock) and compare under a lexicographic order where, for equal K,
// Lt is strictly tighter than Le.
//
// Overflow: all arithmetic is over int32. Add reports overflow via
// a boolean rather than panicking, so callers in package dbm can downgrade
// the enclosing operation to a failure per spec.md §4.1's numeric semantics.
package boundop
