// Package covreach: sentinel errors.
package covreach

import "errors"

// ErrNoInitialState indicates every initial edge evaluated to a non-OK
// status, so exploration has nothing to seed the work-list with.
var ErrNoInitialState = errors.New("covreach: no usable initial state")
