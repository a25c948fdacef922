// Package gc implements the single background collection thread spec.md
// §4.5 describes: a round-robin sweep across every enrolled arena.Pool,
// running collectable slots' destructors and returning them to their
// pool's free list. Callers must Stop the collector before destroying any
// pool it still has enrolled.
package gc
