package covreach

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tchecker/intvar"
	"github.com/tchecker-go/tchecker/semantics"
	"github.com/tchecker-go/tchecker/ta"
	"github.com/tchecker-go/tchecker/vmeval"
	"github.com/tchecker-go/tchecker/zg"
)

// alwaysFalse is an integer invariant expression that never holds.
var alwaysFalse = vmeval.Bin{Op: vmeval.OpLt, Left: vmeval.Const(1), Right: vmeval.Const(0)}

func twoLocationSystem(t *testing.T) *ta.System {
	t.Helper()
	ivars, err := intvar.NewSystem(nil)
	require.NoError(t, err)
	proc := ta.Process{
		Name: "p",
		Locations: []ta.Location{
			{ID: 0, Name: "start", Initial: true},
			{ID: 1, Name: "goal", Final: true, Labels: map[string]struct{}{"done": {}}},
		},
		Edges: []ta.Edge{
			{ID: 0, Src: 0, Tgt: 1, Sync: ""},
		},
	}
	return ta.NewSystem([]ta.Process{proc}, nil, ivars)
}

func selfLoopSystem(t *testing.T) *ta.System {
	t.Helper()
	ivars, err := intvar.NewSystem(nil)
	require.NoError(t, err)
	proc := ta.Process{
		Name: "p",
		Locations: []ta.Location{
			{ID: 0, Name: "s", Initial: true},
		},
		Edges: []ta.Edge{
			{ID: 0, Src: 0, Tgt: 0, Sync: ""},
		},
	}
	return ta.NewSystem([]ta.Process{proc}, nil, ivars)
}

func TestSearchReachesDirectTarget(t *testing.T) {
	sys := twoLocationSystem(t)
	zsys := zg.New(sys, vmeval.Reference{}, semantics.Standard, nil, false)
	exp := FromZG(zsys)

	result, err := Search(context.Background(), sys, exp, 16, Options{
		Order:  BFS,
		Cover:  LeafOnly,
		Labels: map[string]struct{}{"done": {}},
	})
	require.NoError(t, err)
	assert.True(t, result.Stats.Reached)
	require.NotNil(t, result.Witness)
	assert.Equal(t, ta.Vloc{1}, result.Witness.Vloc)
}

func TestSearchTerminatesViaCoveringOnSelfLoop(t *testing.T) {
	sys := selfLoopSystem(t)
	zsys := zg.New(sys, vmeval.Reference{}, semantics.Standard, nil, false)
	exp := FromZG(zsys)

	result, err := Search(context.Background(), sys, exp, 16, Options{
		Order: BFS,
		Cover: Full,
	})
	require.NoError(t, err)
	assert.False(t, result.Stats.Reached)
	assert.Equal(t, 1, result.Stats.Visited)
	assert.Equal(t, 1, result.Graph.Len())
	assert.Equal(t, 1, result.Stats.CoveredOnPush)
}

func TestSearchReportsNoInitialStateWhenEveryInitialFails(t *testing.T) {
	sys := selfLoopSystem(t)
	sys.Processes[0].Locations[0].IntInvariant = alwaysFalse
	zsys := zg.New(sys, vmeval.Reference{}, semantics.Standard, nil, false)
	exp := FromZG(zsys)

	_, err := Search(context.Background(), sys, exp, 16, Options{Order: BFS, Cover: Full})
	require.ErrorIs(t, err, ErrNoInitialState)
}
