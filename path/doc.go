// Package path extracts a counter-example path from a covering-reachability
// witness (spec.md §4.8): the sequence of fired vedges from a protected root
// to the witness node, a symbolic replay of that sequence through a fresh
// standard-semantics, non-extrapolating zone graph (mirroring
// tchecker::zg::compute_symbolic_run), and a concrete rational valuation at
// every visited node.
package path
