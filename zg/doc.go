// Package zg is the plain zone-graph transition system: it composes
// package ta's front-end (initial/outgoing/next enumeration), package
// semantics' standard/elapsed step order, and an optional
// extrapolation.Operator applied after every transition (spec.md §4.3
// "applied after the transition step, only in ZG").
//
// System.Initial and System.Next return one Result per enumerated
// value, each carrying the discrete state, the resulting zone, and a
// ta.Status — callers (package covreach) drop anything whose Status isn't
// ta.OK rather than treating it as an error.
package zg
