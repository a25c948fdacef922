// Package zg: sentinel errors.
package zg

import "errors"

// ErrModeMismatch indicates a System constructed with one Sharing setting
// was used somewhere that assumed the other (SPEC_FULL.md Open Question
// 3: sharing-mode consistency is enforced per run, not per call).
var ErrModeMismatch = errors.New("zg: sharing mode mismatch")
