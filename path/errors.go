package path

import "errors"

// ErrNoRoot indicates a node's In chain never reaches a protected node;
// the cover graph is malformed (every root is added with protected=true).
var ErrNoRoot = errors.New("path: witness has no protected root")

// ErrReplayInfeasible indicates the extracted vedge sequence could not be
// replayed: some step had no successor matching the recorded vedge under
// standard, non-extrapolating semantics.
var ErrReplayInfeasible = errors.New("path: symbolic replay diverged from witness")

// ErrNoConcretePoint indicates the backward valuation search found no
// rational point consistent with a node's zone; spec.md §4.8 sanctions
// aborting the concrete trace in this case rather than failing the whole
// extraction.
var ErrNoConcretePoint = errors.New("path: no concrete valuation satisfies zone")
