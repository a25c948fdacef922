package vmeval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tchecker/intvar"
)

func TestEvalBoolConjunction(t *testing.T) {
	v := intvar.IntVal{2, 5}
	expr := And{Clauses: []Expr{
		Bin{Op: OpGe, Left: Var{0}, Right: Const(0)},
		Bin{Op: OpLt, Left: Var{1}, Right: Const(10)},
	}}
	ok, err := Reference{}.EvalBool(expr, v)
	require.NoError(t, err)
	assert.True(t, ok)

	failing := And{Clauses: []Expr{Bin{Op: OpGt, Left: Var{0}, Right: Const(100)}}}
	ok, err = Reference{}.EvalBool(failing, v)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEmptyConjunctionIsVacuouslyTrue(t *testing.T) {
	ok, err := Reference{}.EvalBool(And{}, intvar.IntVal{})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestApplyAssignAndSeq(t *testing.T) {
	sys, err := intvar.NewSystem([]intvar.Declaration{
		{Name: "id", Size: 1, Min: 0, Max: 3, Initial: 0},
		{Name: "pid", Size: 1, Min: 0, Max: 3, Initial: 1},
	})
	require.NoError(t, err)

	v := sys.Initial()
	stmt := Seq{Stmts: []Stmt{
		Assign{Slot: 0, Value: Var{1}},
		Assign{Slot: 1, Value: Bin{Op: OpAdd, Left: Var{1}, Right: Const(1)}},
	}}

	next, err := Reference{}.Apply(stmt, v, sys)
	require.NoError(t, err)
	assert.EqualValues(t, 1, next.At(0))
	assert.EqualValues(t, 2, next.At(1))

	bad := Assign{Slot: 0, Value: Const(99)}
	_, err = Reference{}.Apply(bad, v, sys)
	require.ErrorIs(t, err, ErrStatementFailed)
}
