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

func TestRunReportsReachedForSatisfiableLabel(t *testing.T) {
	code, err := run(context.Background(), opts{search: "bfs", cover: "full", semanticsFlag: "standard", extrapFlag: "none", labels: "done"}, writeModel(t))
	require.NoError(t, err)
	assert.Equal(t, exitReached, code)
}

func TestRunReportsUnreachedForUnknownLabel(t *testing.T) {
	code, err := run(context.Background(), opts{search: "bfs", cover: "full", semanticsFlag: "standard", extrapFlag: "none", labels: "never"}, writeModel(t))
	require.NoError(t, err)
	assert.Equal(t, exitUnreached, code)
}

func TestRunMisusesOnBadSearchFlag(t *testing.T) {
	code, err := run(context.Background(), opts{search: "wat"}, writeModel(t))
	require.Error(t, err)
	assert.Equal(t, exitMisuse, code)
}

func TestRunWritesGraphAndTraceDOT(t *testing.T) {
	dir := t.TempDir()
	graphOut := filepath.Join(dir, "graph.dot")
	traceOut := filepath.Join(dir, "trace.dot")
	code, err := run(context.Background(), opts{
		search: "bfs", cover: "full", semanticsFlag: "standard", extrapFlag: "none",
		labels: "done", graphOut: graphOut, traceOut: traceOut, withValues: true,
	}, writeModel(t))
	require.NoError(t, err)
	assert.Equal(t, exitReached, code)

	g, err := os.ReadFile(graphOut)
	require.NoError(t, err)
	assert.Contains(t, string(g), "digraph coverreach")

	tr, err := os.ReadFile(traceOut)
	require.NoError(t, err)
	assert.Contains(t, string(tr), "digraph counterexample")
}
