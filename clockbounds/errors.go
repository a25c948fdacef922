// Package clockbounds: sentinel errors.
package clockbounds

import "errors"

// ErrBadClock indicates a clock index outside the declared range.
var ErrBadClock = errors.New("clockbounds: clock index out of range")
