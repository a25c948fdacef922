// Package arena implements the pool allocator spec.md §4.5 describes:
// zones, vlocs, intvals, states, and transitions are allocated from a
// Pool[T], each slot carrying a reference count and occupying one of three
// states — in-use (refcount >= 1), collectable (refcount == 0, destructor
// not yet run), free (on the free list, destructor already run). Alloc
// returns a Handle that owns one reference; dropping the last reference
// (Release reaching zero) moves the slot to collectable without running
// the destructor inline — that is the job of a background collector
// (package gc) calling Sweep in round-robin across every enrolled pool.
//
// All pool state is protected by one coarse-grained mutex per pool, mirroring
// spec.md §4.5's "all pool state is protected by coarse-grained locking";
// the only concurrent producer/consumer relationship is allocators racing
// Alloc/Release against the collector's Sweep.
package arena
