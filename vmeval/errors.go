// Package vmeval: sentinel errors.
package vmeval

import "errors"

var (
	// ErrGuardViolated indicates a guard expression evaluated false.
	ErrGuardViolated = errors.New("vmeval: guard violated")

	// ErrInvariantViolated indicates an invariant expression evaluated
	// false.
	ErrInvariantViolated = errors.New("vmeval: invariant violated")

	// ErrStatementFailed indicates a statement could not be applied (an
	// assignment landed outside its slot's declared bounds).
	ErrStatementFailed = errors.New("vmeval: statement failed")

	// ErrUnknownExpr indicates an Expr or Stmt value the reference
	// evaluator does not recognise.
	ErrUnknownExpr = errors.New("vmeval: unknown expression or statement node")
)
