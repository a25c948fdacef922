// Package covreach implements the covering reachability search of
// spec.md §4.7: a work-list exploration (BFS or DFS) over a zone-graph
// transition system, checking successors against a covergraph.CoverGraph
// either only at dequeue (leaf-only covering) or at both enqueue and
// dequeue (full covering), stopping at the first node whose discrete
// labels cover the requested target set and which is a valid final state.
package covreach
