package vmeval

import (
	"fmt"

	"github.com/tchecker-go/tchecker/intvar"
)

// Evaluator is the contract ta consumes to evaluate integer-variable
// guards, invariants, and statements, without ta depending on a concrete
// expression representation.
type Evaluator interface {
	// EvalBool evaluates a boolean expression (a guard or invariant) over
	// v. A guard/invariant evaluating to false is not itself an error; ta
	// maps that outcome to the appropriate status code.
	EvalBool(expr Expr, v intvar.IntVal) (bool, error)

	// Apply evaluates stmt against v and sys, returning the resulting
	// IntVal. ErrStatementFailed (wrapped) indicates the statement could
	// not be applied, e.g. because an assignment landed out of bounds.
	Apply(stmt Stmt, v intvar.IntVal, sys *intvar.System) (intvar.IntVal, error)
}

// Reference is the minimal tree-walking Evaluator over the Expr/Stmt node
// types declared in this package.
type Reference struct{}

var _ Evaluator = Reference{}

// EvalBool implements Evaluator.
func (Reference) EvalBool(expr Expr, v intvar.IntVal) (bool, error) {
	switch e := expr.(type) {
	case And:
		for _, c := range e.Clauses {
			ok, err := (Reference{}).EvalBool(c, v)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil
	case Bin:
		l, err := evalInt(e.Left, v)
		if err != nil {
			return false, err
		}
		r, err := evalInt(e.Right, v)
		if err != nil {
			return false, err
		}
		switch e.Op {
		case OpEq:
			return l == r, nil
		case OpNeq:
			return l != r, nil
		case OpLt:
			return l < r, nil
		case OpLe:
			return l <= r, nil
		case OpGt:
			return l > r, nil
		case OpGe:
			return l >= r, nil
		}
		return false, fmt.Errorf("vmeval: %w: boolean Bin with operator %d", ErrUnknownExpr, e.Op)
	default:
		return false, fmt.Errorf("vmeval: %w: %T is not a boolean expression", ErrUnknownExpr, expr)
	}
}

func evalInt(expr Expr, v intvar.IntVal) (int32, error) {
	switch e := expr.(type) {
	case Const:
		return int32(e), nil
	case Var:
		return v.At(e.Slot), nil
	case Bin:
		l, err := evalInt(e.Left, v)
		if err != nil {
			return 0, err
		}
		r, err := evalInt(e.Right, v)
		if err != nil {
			return 0, err
		}
		switch e.Op {
		case OpAdd:
			return l + r, nil
		case OpSub:
			return l - r, nil
		}
		return 0, fmt.Errorf("vmeval: %w: integer Bin with operator %d", ErrUnknownExpr, e.Op)
	default:
		return 0, fmt.Errorf("vmeval: %w: %T is not an integer expression", ErrUnknownExpr, expr)
	}
}

// Apply implements Evaluator.
func (r Reference) Apply(stmt Stmt, v intvar.IntVal, sys *intvar.System) (intvar.IntVal, error) {
	switch s := stmt.(type) {
	case Nop:
		return v, nil
	case Seq:
		cur := v
		for _, sub := range s.Stmts {
			var err error
			cur, err = r.Apply(sub, cur, sys)
			if err != nil {
				return nil, err
			}
		}
		return cur, nil
	case Assign:
		val, err := evalInt(s.Value, v)
		if err != nil {
			return nil, err
		}
		next, err := v.With(sys, s.Slot, val)
		if err != nil {
			return nil, fmt.Errorf("vmeval: %w: %v", ErrStatementFailed, err)
		}
		return next, nil
	default:
		return nil, fmt.Errorf("vmeval: %w: %T is not a statement", ErrUnknownExpr, stmt)
	}
}
