// Package arena: sentinel errors.
package arena

import "errors"

var (
	// ErrBadHandle indicates an operation on the zero Handle, which
	// belongs to no pool.
	ErrBadHandle = errors.New("arena: handle out of range")

	// ErrUseAfterFree indicates an operation on a Handle whose slot is no
	// longer in use: its refcount has dropped to zero, whether or not the
	// slot has been swept yet.
	ErrUseAfterFree = errors.New("arena: use after free")
)
