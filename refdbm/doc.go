// Package refdbm implements difference-bound matrices over networks of
// reference clocks: one reference clock per process plus the offset clocks
// it owns. A RefDBM is an ordinary *dbm.DBM whose first RefCount rows/
// columns are the reference clocks and whose remaining rows/columns are
// offset clocks, each mapped to the reference clock it is measured against
// by a Layout.
//
// Row i, column j conventions follow the offset-clock ownership direction:
// cell (i,j) carries LEZero on the diagonal, and also on every pair where i
// is the reference clock owning offset clock j (or j is itself that
// reference clock). This is the orientation exercised by the corpus's own
// reference-DBM tests, not the mirrored one a first reading of the
// difference-bound literature might suggest.
package refdbm
