package path

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tchecker/boundop"
	"github.com/tchecker-go/tchecker/covreach"
	"github.com/tchecker-go/tchecker/intvar"
	"github.com/tchecker-go/tchecker/semantics"
	"github.com/tchecker-go/tchecker/ta"
	"github.com/tchecker-go/tchecker/vmeval"
	"github.com/tchecker-go/tchecker/zg"
)

// resetGuardSystem builds a single process with one clock: start resets the
// clock on its way to mid, then mid fires to goal under a bounded guard.
func resetGuardSystem(t *testing.T) *ta.System {
	t.Helper()
	ivars, err := intvar.NewSystem(nil)
	require.NoError(t, err)
	proc := ta.Process{
		Name: "p",
		Locations: []ta.Location{
			{ID: 0, Name: "start", Initial: true},
			{ID: 1, Name: "mid"},
			{ID: 2, Name: "goal", Final: true, Labels: map[string]struct{}{"done": {}}},
		},
		Edges: []ta.Edge{
			{ID: 0, Src: 0, Tgt: 1, Sync: "", ClockReset: []ta.ClockReset{
				{X: 1, Y: ta.RefClock, K: 0},
			}},
			{ID: 1, Src: 1, Tgt: 2, Sync: "", ClockGuard: []ta.ClockConstraint{
				{X: ta.RefClock, Y: 1, Cmp: boundop.Le, K: 5},
			}},
		},
		ClockCount: 1,
	}
	return ta.NewSystem([]ta.Process{proc}, nil, ivars)
}

func reach(t *testing.T, sys *ta.System) *covreach.Result {
	t.Helper()
	zsys := zg.New(sys, vmeval.Reference{}, semantics.Standard, nil, false)
	exp := covreach.FromZG(zsys)
	result, err := covreach.Search(context.Background(), sys, exp, 16, covreach.Options{
		Order:  covreach.BFS,
		Cover:  covreach.LeafOnly,
		Labels: map[string]struct{}{"done": {}},
	})
	require.NoError(t, err)
	require.True(t, result.Stats.Reached)
	require.NotNil(t, result.Witness)
	return result
}

func TestExtractVedgesReturnsFiredSequenceInOrder(t *testing.T) {
	sys := resetGuardSystem(t)
	result := reach(t, sys)

	root, vedges, err := ExtractVedges(result.Witness)
	require.NoError(t, err)
	assert.True(t, root.Protected)
	require.Len(t, vedges, 2)
	assert.Equal(t, ta.Vloc{0}, root.Vloc)
	assert.Equal(t, ta.Vedge{0}, vedges[0])
	assert.Equal(t, ta.Vedge{1}, vedges[1])
}

func TestReplayReproducesNonEmptyZonesAlongThePath(t *testing.T) {
	sys := resetGuardSystem(t)
	result := reach(t, sys)
	root, vedges, err := ExtractVedges(result.Witness)
	require.NoError(t, err)

	states, transitions, err := Replay(sys, vmeval.Reference{}, root.Vloc, vedges)
	require.NoError(t, err)
	require.Len(t, states, 3)
	require.Len(t, transitions, 2)
	for _, s := range states {
		assert.False(t, s.Zone.IsEmpty())
	}
	assert.Equal(t, ta.Vloc{2}, states[2].Vloc)
}

func TestExtractBuildsConsistentConcreteTrace(t *testing.T) {
	sys := resetGuardSystem(t)
	result := reach(t, sys)

	ce, err := Extract(sys, vmeval.Reference{}, result.Witness)
	require.NoError(t, err)
	require.True(t, ce.Concrete, "expected a concrete trace: %v", ce.ConcreteErr)
	require.Len(t, ce.Valuations, 3)

	// The reset on the first edge forces the clock to 0 at "mid"; the
	// second edge carries no reset, so "goal" must show the same value.
	assert.Equal(t, ce.Valuations[1][1], ce.Valuations[2][1])
	assert.True(t, ce.Valuations[1][1].Sign() == 0)
}
