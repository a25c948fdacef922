// Package dbm: sentinel errors.
//
// Error policy: only sentinel variables are exposed; callers use errors.Is.
// Numeric overflow is the sole recoverable error condition in this package
// (spec.md §7's "Numeric overflow" kind); everything else the package
// expresses as a return value (Empty) rather than an error, per spec.md
// §4.1's "DBM operations never report partial results".
package dbm

import "errors"

var (
	// ErrOverflow indicates that a difference-bound addition or composition
	// would overflow int32. The enclosing operation must be treated as
	// failed; no partial DBM is returned.
	ErrOverflow = errors.New("dbm: overflow in bound arithmetic")

	// ErrDimensionMismatch indicates two DBMs (or a DBM and a constraint)
	// were combined despite disagreeing on dimension.
	ErrDimensionMismatch = errors.New("dbm: dimension mismatch")

	// ErrBadClock indicates a clock index outside [0, dim).
	ErrBadClock = errors.New("dbm: clock index out of range")
)
