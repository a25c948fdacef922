package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoLocationModel = `{
	"processes": [{
		"name": "p",
		"clockCount": 1,
		"clockNames": ["x"],
		"locations": [
			{"id": 0, "name": "start", "initial": true},
			{"id": 1, "name": "goal", "final": true, "labels": ["done"]}
		],
		"edges": [
			{"id": 0, "src": 0, "tgt": 1, "sync": ""}
		]
	}],
	"syncs": []
}`

func writeModel(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(p, []byte(twoLocationModel), 0o644))
	return p
}

func TestRunReportsReachedOverRefZG(t *testing.T) {
	code, err := run(context.Background(), opts{search: "bfs", labels: "done"}, writeModel(t))
	require.NoError(t, err)
	assert.Equal(t, exitReached, code)
}

func TestRunRejectsNegativeSpread(t *testing.T) {
	code, err := run(context.Background(), opts{search: "bfs", spread: -1}, writeModel(t))
	require.Error(t, err)
	assert.Equal(t, exitMisuse, code)
}
