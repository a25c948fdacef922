package vmeval

// Stmt is an integer-variable statement applied during a transition, after
// clock resets are computed but before the target invariant is checked
// (spec.md §4.4).
type Stmt interface{ isStmt() }

// Assign sets integer-variable slot Slot to the value of Value.
type Assign struct {
	Slot  int
	Value Expr
}

func (Assign) isStmt() {}

// Seq applies Stmts in order, stopping at the first failure.
type Seq struct{ Stmts []Stmt }

func (Seq) isStmt() {}

// Nop performs no change; the zero value of Stmt's absence.
type Nop struct{}

func (Nop) isStmt() {}
