// Package tchecker is a symbolic model checker for networks of timed
// automata (NTA): finite-state processes synchronised on shared labels,
// equipped with real-valued clocks that constrain guards, invariants and
// resets. Given a network and a target label set, it decides reachability
// and, when reachable, produces a witness path with a concrete clock
// valuation.
//
// The module is organised by concern, bottom-up:
//
//	boundop/        — saturating (Cmp, K) difference bounds
//	dbm/             — canonical-form DBM algebra: tighten, constrain, reset,
//	                   open-up, extrapolation
//	refdbm/          — the reference-clock DBM variant used for local-time
//	                   (asynchronous) exploration
//	clockbounds/     — L/U/M clock-bounds maps, global and per-location
//	intvar/          — declared integer-variable slots
//	vmeval/          — the guard/statement evaluator contract
//	ta/              — the network of processes: locations, edges, clock
//	                   layout, transition resolution
//	semantics/       — standard/elapsed initial/next, wired onto DBM/RefDBM
//	extrapolation/   — global/local aLU, aLU+, aM, aM+ abstraction operators
//	zg/, refzg/      — the plain and reference-clock zone-graph transition
//	                   systems
//	hashtable/       — bucketed collision table backing CoverGraph and Cache
//	covergraph/      — the subsumption graph: nodes, actual/subsumption
//	                   edges, covering predicates
//	covreach/        — the covering reachability work-list search
//	path/            — counter-example extraction and concrete rational
//	                   trace reconstruction
//	arena/, gc/      — pool allocation and background collection
//	statespace/      — transition-system/cover-graph/collector lifecycle
//	dot/             — DOT/textual output (zones, graphs, counter-examples,
//	                   statistics)
//	modelfile/       — JSON model loading
//	cmd/reach/,
//	cmd/concur19/    — CLI entry points
package tchecker
