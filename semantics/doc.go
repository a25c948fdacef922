// Package semantics wires the TA front-end's flat clock-constraint/reset
// containers (package ta) into the zone kernels (packages dbm, refdbm)
// following spec.md §4.3's standard/elapsed contract:
//
//	standard:  intersect src_invariant; intersect guard; apply resets;
//	           intersect tgt_invariant.
//	elapsed:   standard, then open_up (DBM) or asynchronous_open_up with
//	           tgt_delay_allowed (RefDBM).
//
// RefDBM semantics additionally synchronizes sync_refclocks between guard
// and reset, and bound-spreads at the end. Initial variants start from the
// universal-positive zone instead of an input zone.
package semantics
