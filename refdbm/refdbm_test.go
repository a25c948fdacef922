package refdbm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tchecker/boundop"
	"github.com/tchecker-go/tchecker/dbm"
)

// threeProcessLayout mirrors three processes, each with one reference clock
// and two offset clocks: t0,t1,t2,x1,x2,y1,y2,z1,z2.
func threeProcessLayout() Layout {
	return Layout{
		RefCount: 3,
		RefMap:   []int{0, 1, 2, 0, 0, 1, 1, 2, 2},
	}
}

const (
	t0 = 0
	t1 = 1
	t2 = 2
	x1 = 3
	x2 = 4
	y1 = 5
	y2 = 6
	z1 = 7
	z2 = 8
)

// TestableProperty9: universal_positive sets LEZero exactly on the
// diagonal and on (owner(j), j) pairs, LTInfinity elsewhere.
func TestUniversalPositiveOrientation(t *testing.T) {
	l := threeProcessLayout()
	d := UniversalPositive(l)
	assert.True(t, IsUniversalPositive(d, l))
	assert.False(t, IsUniversal(d))

	assert.True(t, boundop.Equal(d.At(t0, x1), boundop.LEZero))
	assert.True(t, boundop.Equal(d.At(t0, x2), boundop.LEZero))
	assert.True(t, boundop.Equal(d.At(x1, t0), boundop.LTInfinity))
	assert.True(t, boundop.Equal(d.At(x1, x2), boundop.LTInfinity))
}

func TestIsPositive(t *testing.T) {
	l := threeProcessLayout()
	assert.True(t, IsPositive(UniversalPositive(l), l))
	assert.True(t, IsPositive(Zero(l), l))
	assert.False(t, IsPositive(Universal(l), l))
}

// TestableProperty10: is_open_up is insensitive to lower bounds against a
// reference clock but false as soon as any clock carries an upper bound
// against a reference clock.
func TestIsOpenUp(t *testing.T) {
	l := threeProcessLayout()

	assert.True(t, IsOpenUp(UniversalPositive(l), l))
	assert.False(t, IsOpenUp(Zero(l), l))

	d := UniversalPositive(l)
	d, err := dbm.Constrain(d, dbm.Constraint{I: t0, J: x1, Cmp: boundop.Lt, K: -1})
	require.NoError(t, err)
	assert.True(t, IsOpenUp(d, l), "lower bound against a reference clock leaves open_up true")

	d2 := UniversalPositive(l)
	d2, err = dbm.Constrain(d2, dbm.Constraint{I: y2, J: t1, Cmp: boundop.Lt, K: 4})
	require.NoError(t, err)
	assert.False(t, IsOpenUp(d2, l), "upper bound against a reference clock makes open_up false")
}

// TestableProperty11: synchronize identifies reference clocks; a prior
// constraint that pins them apart makes synchronize infeasible.
func TestSynchronizeAndIsSynchronized(t *testing.T) {
	l := threeProcessLayout()

	d := UniversalPositive(l)
	assert.False(t, IsSynchronized(d, l, nil))

	synced, err := Synchronize(d, l, nil)
	require.NoError(t, err)
	assert.True(t, IsSynchronized(synced, l, nil))

	assert.True(t, IsSynchronized(d, l, []int{t0}))

	partial, err := Synchronize(d, l, []int{t0, t1})
	require.NoError(t, err)
	assert.True(t, IsSynchronized(partial, l, []int{t0, t1}))
	assert.False(t, IsSynchronized(partial, l, nil))
}

// S4: RefDBM synchronisation contradiction -- a pre-existing lower bound
// apart on two reference clocks makes synchronize and is_synchronizable
// report infeasibility.
func TestScenarioS4SynchronizationContradiction(t *testing.T) {
	l := threeProcessLayout()
	d := UniversalPositive(l)
	d, err := dbm.Constrain(d, dbm.Constraint{I: t1, J: t0, Cmp: boundop.Lt, K: -1})
	require.NoError(t, err)
	require.False(t, d.IsEmpty())

	assert.False(t, IsSynchronizable(d, l))
	s, err := Synchronize(d, l, nil)
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())
}

func TestBoundSpread(t *testing.T) {
	l := threeProcessLayout()

	d := UniversalPositive(l)
	out, err := BoundSpread(d, l, 2, nil)
	require.NoError(t, err)
	require.False(t, out.IsEmpty())
	assert.True(t, boundop.LessEqual(out.At(t0, t1), boundop.Bound{Cmp: boundop.Le, K: 2}))

	empty, err := BoundSpread(d, l, -1, nil)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestResetToReferenceClock(t *testing.T) {
	l := threeProcessLayout()
	d := UniversalPositive(l)
	d, err := dbm.Constrain(d, dbm.Constraint{I: t2, J: z1, Cmp: boundop.Lt, K: -1})
	require.NoError(t, err)
	d, err = dbm.Constrain(d, dbm.Constraint{I: z1, J: t2, Cmp: boundop.Le, K: 5})
	require.NoError(t, err)
	require.False(t, d.IsEmpty())

	reset := ResetToReferenceClock(d, l, z1)

	want := UniversalPositive(l)
	var werr error
	want, werr = dbm.Constrain(want, dbm.Constraint{I: z1, J: t2, Cmp: boundop.Le, K: 0})
	require.NoError(t, werr)
	want, werr = dbm.Constrain(want, dbm.Constraint{I: z1, J: z2, Cmp: boundop.Le, K: 0})
	require.NoError(t, werr)

	assert.True(t, IsEqual(reset, want))
}

func TestAsynchronousOpenUpIsNoopOnUniversalPositive(t *testing.T) {
	l := threeProcessLayout()
	d := UniversalPositive(l)
	out := AsynchronousOpenUp(d, l, nil)
	assert.True(t, IsEqual(d, out))
}

func TestAsynchronousOpenUpOpensEveryColumn(t *testing.T) {
	l := threeProcessLayout()
	d := UniversalPositive(l)
	d, err := dbm.Constrain(d, dbm.Constraint{I: y2, J: x1, Cmp: boundop.Le, K: 8})
	require.NoError(t, err)

	out := AsynchronousOpenUp(d, l, nil)
	for x := 0; x < l.Dim(); x++ {
		for col := 0; col < l.RefCount; col++ {
			if x == col {
				assert.True(t, boundop.Equal(out.At(x, col), boundop.LEZero))
			} else {
				assert.True(t, out.At(x, col).IsInfinity())
			}
		}
	}
}

func TestToDBMOnSynchronizedUniversalPositive(t *testing.T) {
	l := threeProcessLayout()
	d := UniversalPositive(l)
	d, err := Synchronize(d, l, nil)
	require.NoError(t, err)

	out, err := ToDBM(d, l)
	require.NoError(t, err)
	assert.True(t, out.IsUniversalPositive())
}
