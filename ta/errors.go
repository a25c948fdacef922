// Package ta: sentinel errors.
package ta

import "errors"

var (
	// ErrNoInitialLocation indicates a process declares no initial
	// location, making the whole network unsatisfiable at Initial time.
	ErrNoInitialLocation = errors.New("ta: process has no initial location")

	// ErrIncompatibleEdge indicates a chosen outgoing value does not match
	// any declared synchronisation vector or asynchronous edge shape.
	ErrIncompatibleEdge = errors.New("ta: edge selection incompatible with declared synchronisations")

	// ErrBadProcess indicates a process index outside the declared range.
	ErrBadProcess = errors.New("ta: process index out of range")

	// ErrBadClock indicates a process-local clock index outside its
	// declared range.
	ErrBadClock = errors.New("ta: clock index out of range")
)
