// Package intvar declares bounded integer-variable slots and IntVal, the
// immutable ordered tuple of their current values (spec.md §3 "IntVal").
package intvar
