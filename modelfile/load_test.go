package modelfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tchecker/boundop"
)

const twoProcessJSON = `{
	"intvars": [{"name": "count", "size": 1, "min": 0, "max": 10, "initial": 0}],
	"processes": [
		{
			"name": "sender",
			"clockCount": 1,
			"clockNames": ["x"],
			"locations": [
				{"id": 0, "name": "idle", "initial": true},
				{"id": 1, "name": "sent"}
			],
			"edges": [
				{"id": 0, "src": 0, "tgt": 1, "sync": "hs",
				 "clockGuard": [{"x": "x", "y": "", "cmp": "<=", "k": 5}]},
				{"id": 1, "src": 1, "tgt": 0, "sync": "",
				 "clockReset": [{"x": "x", "y": "", "k": 0}]}
			]
		},
		{
			"name": "receiver",
			"clockCount": 1,
			"clockNames": ["y"],
			"locations": [
				{"id": 0, "name": "waiting", "initial": true, "labels": ["start"]},
				{"id": 1, "name": "received", "final": true, "labels": ["done"]}
			],
			"edges": [
				{"id": 0, "src": 0, "tgt": 1, "sync": "hs"}
			]
		}
	],
	"syncs": [
		{"events": {"sender": "hs", "receiver": "hs"}}
	]
}`

func TestLoadBuildsTwoProcessSystemWithResolvedClocksAndSyncs(t *testing.T) {
	sys, clockNames, err := Load(strings.NewReader(twoProcessJSON))
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "x", "y"}, clockNames)
	require.Len(t, sys.Processes, 2)

	sender := sys.Processes[0]
	require.Len(t, sender.Edges, 2)

	guard := sender.Edges[0].ClockGuard
	require.Len(t, guard, 1)
	assert.Equal(t, 1, guard[0].X)
	assert.Equal(t, 0, guard[0].Y)
	assert.Equal(t, boundop.Le, guard[0].Cmp)
	assert.Equal(t, int32(5), guard[0].K)

	reset := sender.Edges[1].ClockReset
	require.Len(t, reset, 1)
	assert.Equal(t, 1, reset[0].X)
	assert.Equal(t, 0, reset[0].Y)

	require.Len(t, sys.Syncs, 1)
	assert.Equal(t, "hs", sys.Syncs[0].Events[0])
	assert.Equal(t, "hs", sys.Syncs[0].Events[1])

	assert.Equal(t, int32(0), sys.IntVars.Initial()[0])
}

func TestLoadRejectsUnknownClockName(t *testing.T) {
	bad := strings.Replace(twoProcessJSON, `"x": "x", "y": ""`, `"x": "nope", "y": ""`, 1)
	_, _, err := Load(strings.NewReader(bad))
	require.ErrorIs(t, err, ErrUnknownClock)
}

func TestLoadRejectsUnknownSyncProcessName(t *testing.T) {
	bad := strings.Replace(twoProcessJSON, `"sender": "hs"`, `"ghost": "hs"`, 1)
	_, _, err := Load(strings.NewReader(bad))
	require.ErrorIs(t, err, ErrUnknownProcess)
}
