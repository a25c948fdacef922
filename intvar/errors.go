// Package intvar: sentinel errors.
package intvar

import "errors"

var (
	// ErrOutOfRange indicates a value outside a declared variable's
	// [Min,Max] bounds.
	ErrOutOfRange = errors.New("intvar: value out of declared range")

	// ErrBadSlot indicates a slot index outside the declared range.
	ErrBadSlot = errors.New("intvar: slot index out of range")

	// ErrDimensionMismatch indicates two IntVals of different slot counts
	// were combined or compared.
	ErrDimensionMismatch = errors.New("intvar: dimension mismatch")
)
