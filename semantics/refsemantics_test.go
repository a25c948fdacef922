package semantics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tchecker/boundop"
	"github.com/tchecker-go/tchecker/refdbm"
)

func twoRefLayout() refdbm.Layout {
	// t0, t1 reference clocks; x (owned by t0), y (owned by t1).
	return refdbm.Layout{RefCount: 2, RefMap: []int{0, 1, 0, 1}}
}

func TestRefInitialStandardStaysSynchronizedAndBounded(t *testing.T) {
	l := twoRefLayout()
	d, err := RefInitial(l, nil, RefOptions{Spread: 0}, Standard)
	require.NoError(t, err)
	require.False(t, d.IsEmpty())
	assert.True(t, refdbm.IsSynchronized(d, l, nil))
}

func TestRefNextSynchronizesBetweenGuardAndReset(t *testing.T) {
	l := twoRefLayout()
	d, err := RefInitial(l, nil, RefOptions{Spread: 0}, Standard)
	require.NoError(t, err)

	tr := RefTransition{
		Reset: []refdbm.ClockReset{{X: 2, Y: refdbm.RefClockID, K: 0}},
	}
	next, err := RefNext(d, l, tr, RefOptions{SyncRefclocks: nil, Spread: 0}, Standard)
	require.NoError(t, err)
	require.False(t, next.IsEmpty())
	assert.True(t, refdbm.IsSynchronized(next, l, nil))
}

func TestRefNextElapsedOpensUpSelectedReferenceClocks(t *testing.T) {
	l := twoRefLayout()
	d, err := RefInitial(l, nil, RefOptions{Spread: 5}, Standard)
	require.NoError(t, err)

	tr := RefTransition{}
	opts := RefOptions{TgtDelayAllowed: []bool{true, false}, Spread: 5}
	next, err := RefNext(d, l, tr, opts, Elapsed)
	require.NoError(t, err)
	require.False(t, next.IsEmpty())
	assert.True(t, next.At(1, 0).IsInfinity())
}

func TestRefNextReportsEmptyOnContradictoryGuard(t *testing.T) {
	l := twoRefLayout()
	d, err := RefInitial(l, nil, RefOptions{Spread: 0}, Standard)
	require.NoError(t, err)

	tr := RefTransition{
		Guard: []refdbm.ClockConstraint{{I: 0, J: 1, Cmp: boundop.Lt, K: -1}},
	}
	next, err := RefNext(d, l, tr, RefOptions{Spread: 0}, Standard)
	require.NoError(t, err)
	assert.True(t, next.IsEmpty())
}
