package statespace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tchecker/covergraph"
	"github.com/tchecker-go/tchecker/gc"
	"github.com/tchecker-go/tchecker/intvar"
	"github.com/tchecker-go/tchecker/semantics"
	"github.com/tchecker-go/tchecker/ta"
	"github.com/tchecker-go/tchecker/vmeval"
	"github.com/tchecker-go/tchecker/zg"
)

func trivialSystem(t *testing.T) *ta.System {
	t.Helper()
	ivars, err := intvar.NewSystem(nil)
	require.NoError(t, err)
	proc := ta.Process{Name: "p", Locations: []ta.Location{{ID: 0, Name: "s", Initial: true}}}
	return ta.NewSystem([]ta.Process{proc}, nil, ivars)
}

func TestNewRejectsNonSharingSystemWithGraph(t *testing.T) {
	sys := zg.New(trivialSystem(t), vmeval.Reference{}, semantics.Standard, nil, false)
	graph := covergraph.New(16, nil, nil)
	_, err := New(sys, graph, nil)
	assert.ErrorIs(t, err, zg.ErrModeMismatch)
}

func TestCloseStopsCollectorAndReleasesGraph(t *testing.T) {
	sys := zg.New(trivialSystem(t), vmeval.Reference{}, semantics.Standard, nil, true)
	graph := covergraph.New(16, nil, nil)
	coll := gc.New(time.Millisecond)
	coll.Start()

	ss, err := New(sys, graph, coll)
	require.NoError(t, err)
	assert.Same(t, graph, ss.Graph())

	require.NoError(t, ss.Close())
	assert.Nil(t, ss.Graph())
	assert.ErrorIs(t, ss.Close(), ErrAlreadyClosed)
}
