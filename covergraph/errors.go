// Package covergraph: sentinel errors.
package covergraph

import "errors"

var (
	// ErrProtectedNode indicates an attempt to Remove a protected node
	// (spec.md §9: initial nodes are always protected).
	ErrProtectedNode = errors.New("covergraph: node is protected")

	// ErrInactiveNode indicates an attempt to Remove a node that is not
	// active (spec.md §4.6 "Validity guard"). IsCovered does not return it;
	// it reports an inactive node as not covered.
	ErrInactiveNode = errors.New("covergraph: node is not active")

	// ErrNotElapsed indicates an aLU*/time-elapse-aLU* covering predicate
	// was invoked under semantics.Standard, where it would be unsound
	// (SPEC_FULL.md Open Question 2).
	ErrNotElapsed = errors.New("covergraph: predicate requires elapsed semantics")
)
