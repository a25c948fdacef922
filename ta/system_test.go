package ta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tchecker/boundop"
	"github.com/tchecker-go/tchecker/intvar"
	"github.com/tchecker-go/tchecker/vmeval"
)

// twoProcessSystem builds a sender/receiver network with a single
// synchronisation vector "hs" on one clock each, plus one asynchronous tick
// edge on the sender, over a shared intvar "count".
func twoProcessSystem(t *testing.T) *System {
	t.Helper()
	ivars, err := intvar.NewSystem([]intvar.Declaration{
		{Name: "count", Size: 1, Min: 0, Max: 10, Initial: 0},
	})
	require.NoError(t, err)

	sender := Process{
		Name: "sender",
		Locations: []Location{
			{ID: 0, Name: "idle", Initial: true},
			{ID: 1, Name: "sent"},
		},
		Edges: []Edge{
			{ID: 0, Src: 0, Tgt: 1, Sync: "hs", ClockGuard: []ClockConstraint{{X: RefClock, Y: 1, Cmp: boundop.Le, K: 5}}},
			{ID: 1, Src: 1, Tgt: 0, Sync: ""},
		},
		ClockCount: 1,
	}
	receiver := Process{
		Name: "receiver",
		Locations: []Location{
			{ID: 0, Name: "waiting", Initial: true},
			{ID: 1, Name: "received"},
		},
		Edges: []Edge{
			{ID: 0, Src: 0, Tgt: 1, Sync: "hs", ClockReset: []ClockReset{{X: 1, Y: RefClock, K: 0}}},
		},
		ClockCount: 1,
	}

	syncs := []SyncVector{{Events: map[int]string{0: "hs", 1: "hs"}}}
	return NewSystem([]Process{sender, receiver}, syncs, ivars)
}

func TestInitialVlocsSingleCombination(t *testing.T) {
	s := twoProcessSystem(t)
	vlocs, err := s.InitialVlocs()
	require.NoError(t, err)
	require.Len(t, vlocs, 1)
	assert.Equal(t, Vloc{0, 0}, vlocs[0])
}

func TestInitialVlocsRejectsProcessWithNoInitialLocation(t *testing.T) {
	s := twoProcessSystem(t)
	s.Processes[1].Locations[0].Initial = false
	_, err := s.InitialVlocs()
	require.ErrorIs(t, err, ErrNoInitialLocation)
}

func TestOutgoingFindsSynchronisedAndAsynchronousEdges(t *testing.T) {
	s := twoProcessSystem(t)
	out := s.Outgoing(Vloc{0, 0})
	require.Len(t, out, 1)
	assert.Equal(t, Vedge{0, 0}, out[0])

	out = s.Outgoing(Vloc{1, 1})
	require.Len(t, out, 1)
	assert.Equal(t, Vedge{1, NoEdge}, out[0])
}

func TestNextAppliesSynchronisedEdge(t *testing.T) {
	s := twoProcessSystem(t)
	iv := s.IntVars.Initial()
	tr, err := s.Next(Vloc{0, 0}, iv, Vedge{0, 0}, vmeval.Reference{})
	require.NoError(t, err)
	assert.Equal(t, OK, tr.Status)
	require.Len(t, tr.Guard, 1)
	assert.Equal(t, ClockConstraint{X: RefClock, Y: 1, Cmp: boundop.Le, K: 5}, tr.Guard[0])
	require.Len(t, tr.Reset, 1)
	assert.Equal(t, ClockReset{X: 1, Y: RefClock, K: 0}, tr.Reset[0])

	tgt := TargetVloc(Vloc{0, 0}, tr.Vedge, s.Processes)
	assert.Equal(t, Vloc{1, 1}, tgt)

	require.Len(t, tr.PlainGuard, 1)
	assert.Equal(t, s.Layout().PlainConstraint(0, ClockConstraint{X: RefClock, Y: 1, Cmp: boundop.Le, K: 5}), tr.PlainGuard[0])
	require.Len(t, tr.RefGuard, 1)
	assert.Equal(t, s.Layout().RefConstraint(0, ClockConstraint{X: RefClock, Y: 1, Cmp: boundop.Le, K: 5}), tr.RefGuard[0])

	require.Len(t, tr.PlainReset, 1)
	assert.Equal(t, s.Layout().PlainReset(1, ClockReset{X: 1, Y: RefClock, K: 0}), tr.PlainReset[0])
	require.Len(t, tr.RefReset, 1)
	assert.Equal(t, s.Layout().RefReset(1, ClockReset{X: 1, Y: RefClock, K: 0}), tr.RefReset[0])
}

func TestInitialResolvesClockInvariantsPerProcess(t *testing.T) {
	s := twoProcessSystem(t)
	s.Processes[0].Locations[0].ClockInvariant = []ClockConstraint{{X: 1, Y: RefClock, Cmp: boundop.Le, K: 10}}

	out := s.Initial(Vloc{0, 0}, vmeval.Reference{})
	assert.Equal(t, OK, out.Status)
	require.Len(t, out.Invariant, 1)
	require.Len(t, out.PlainInvariant, 1)
	require.Len(t, out.RefInvariant, 1)
	assert.Equal(t, s.Layout().PlainConstraint(0, out.Invariant[0]), out.PlainInvariant[0])
	assert.Equal(t, s.Layout().RefConstraint(0, out.Invariant[0]), out.RefInvariant[0])
}

func TestLayoutResolvesDistinctClocksPerProcess(t *testing.T) {
	s := twoProcessSystem(t)
	l := s.Layout()
	assert.Equal(t, 0, l.PlainIndex(0, RefClock))
	assert.Equal(t, 0, l.PlainIndex(1, RefClock))
	assert.NotEqual(t, l.PlainIndex(0, 1), l.PlainIndex(1, 1))
	assert.Equal(t, 0, l.RefIndex(0, RefClock))
	assert.Equal(t, 1, l.RefIndex(1, RefClock))
}
