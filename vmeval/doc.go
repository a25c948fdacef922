// Package vmeval defines the integer-VM contract package ta consumes to
// evaluate guards, invariants, and statements over intvar.IntVal, plus a
// minimal reference evaluator implementing it. The real statement/guard
// language (parsing, typing, a full expression AST) is out of scope here;
// this package only fixes the boundary ta needs (spec.md §4.4, §6 —
// "deliberately thin, the real VM is out of scope").
package vmeval
