// Package dbm implements the canonical-form Difference-Bound Matrix kernel:
// the representation of a zone (a convex set of clock valuations) used
// throughout the symbolic model checker.
//
// A DBM of dimension dim is a dim*dim matrix of boundop.Bound values, index 0
// denoting the constant-zero reference clock. DBM[i][j] stores the tightest
// known bound on x_i - x_j. Every DBM observable outside this package is
// tight (closed under Floyd-Warshall) and consistent (DBM[i][i] == LEZero
// for all i), or is the unique Empty sentinel.
//
// Operations never return a partial result: they produce a tight consistent
// DBM, the Empty sentinel, or an error (overflow). See Tighten, Constrain,
// ApplyReset, OpenUp/OpenDown and the ExtraLU/ExtraM family.
//
// Complexity: Tighten is O(dim^3) (Floyd-Warshall). Constrain installs the
// new bound and re-runs the full closure, so it is O(dim^3) too; it does
// not re-tighten incrementally through the constrained pair. ApplyReset,
// OpenUp and OpenColumn copy the matrix (O(dim^2)); OpenDown re-tightens
// the result (O(dim^3)).
package dbm
