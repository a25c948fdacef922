// Package clockbounds computes and caches the clock-bounds maps that drive
// DBM/RefDBM extrapolation: L/U pairs for aLU abstraction, and the coarser
// single map M for aM abstraction. Bounds are either global (one map for
// the whole system) or local (one map per discrete location tuple, merged
// from per-location contributions and cached under Cache).
package clockbounds
