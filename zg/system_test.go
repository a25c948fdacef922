package zg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tchecker/boundop"
	"github.com/tchecker-go/tchecker/intvar"
	"github.com/tchecker-go/tchecker/semantics"
	"github.com/tchecker-go/tchecker/ta"
	"github.com/tchecker-go/tchecker/vmeval"
)

// handshakeSystem builds a sender/receiver network synchronised on "hs",
// the sender bounding the handshake to within 5 time units.
func handshakeSystem(t *testing.T) *ta.System {
	t.Helper()
	ivars, err := intvar.NewSystem(nil)
	require.NoError(t, err)

	sender := ta.Process{
		Name: "sender",
		Locations: []ta.Location{
			{ID: 0, Name: "idle", Initial: true},
			{ID: 1, Name: "sent"},
		},
		Edges: []ta.Edge{
			{ID: 0, Src: 0, Tgt: 1, Sync: "hs", ClockGuard: []ta.ClockConstraint{
				{X: 1, Y: ta.RefClock, Cmp: boundop.Le, K: 5},
			}},
		},
		ClockCount: 1,
	}
	receiver := ta.Process{
		Name: "receiver",
		Locations: []ta.Location{
			{ID: 0, Name: "waiting", Initial: true},
			{ID: 1, Name: "received"},
		},
		Edges: []ta.Edge{
			{ID: 0, Src: 0, Tgt: 1, Sync: "hs", ClockReset: []ta.ClockReset{
				{X: 1, Y: ta.RefClock, K: 0},
			}},
		},
		ClockCount: 1,
	}

	syncs := []ta.SyncVector{{Events: map[int]string{0: "hs", 1: "hs"}}}
	return ta.NewSystem([]ta.Process{sender, receiver}, syncs, ivars)
}

func TestInitialBuildsUniversalPositiveZone(t *testing.T) {
	sys := New(handshakeSystem(t), vmeval.Reference{}, semantics.Standard, nil, false)
	results, err := sys.Initial()
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, ta.OK, results[0].Status)
	assert.True(t, results[0].State.Zone.IsUniversalPositive())
}

func TestNextFiresSynchronisedHandshake(t *testing.T) {
	sys := New(handshakeSystem(t), vmeval.Reference{}, semantics.Standard, nil, false)
	init, err := sys.Initial()
	require.NoError(t, err)
	require.Len(t, init, 1)

	next, err := sys.Next(init[0].State)
	require.NoError(t, err)
	require.Len(t, next, 1)
	assert.Equal(t, ta.OK, next[0].Status)
	assert.Equal(t, ta.Vloc{1, 1}, next[0].State.Vloc)
	assert.False(t, next[0].State.Zone.IsEmpty())
}

func TestSharingInternsStructurallyEqualZones(t *testing.T) {
	sys := New(handshakeSystem(t), vmeval.Reference{}, semantics.Standard, nil, true)
	init, err := sys.Initial()
	require.NoError(t, err)
	require.Len(t, init, 1)

	a, err := sys.Next(init[0].State)
	require.NoError(t, err)
	b, err := sys.Next(init[0].State)
	require.NoError(t, err)
	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Same(t, a[0].State.Zone, b[0].State.Zone)
}

func TestRequireSharingRejectsMismatch(t *testing.T) {
	sys := New(handshakeSystem(t), vmeval.Reference{}, semantics.Standard, nil, true)
	require.NoError(t, sys.RequireSharing(true))
	require.ErrorIs(t, sys.RequireSharing(false), ErrModeMismatch)
}
