// Package covergraph implements the bucketed subsumption container of
// spec.md §4.6: a stream of discovered states is stored in buckets keyed by
// a hash of the discrete part (vloc, intval); IsCovered answers "is n
// subsumed by some already-stored active node with the same discrete
// part", and CoveredNodes enumerates the stored nodes that n itself subsumes.
//
// Protected/covered asymmetry (spec.md §9, decided in SPEC_FULL.md's Open
// Questions): a Node flagged Protected (every root/initial node) can still
// subsume others, but Remove refuses to remove it — IsCovered/CoveredNodes
// are therefore intentionally asymmetric with respect to which side of the
// comparison a protected node occupies.
package covergraph
