package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/scenario"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := newCommand(&stdout, &stderr).Run(context.Background(), append([]string{"gridpath"}, args...))

	return stdout.String(), stderr.String(), err
}

func TestFind_Default(t *testing.T) {
	out, _, err := run(t, "find")
	require.NoError(t, err)
	assert.Equal(t, ""+
		"..G..\n"+
		"..o..\n"+
		"..o..\n"+
		"..o..\n"+
		"..o..\n"+
		"..o..\n"+
		"..S..\n"+
		"cost: 6, length: 7, settled: 7\n", out)
}

func TestFind_ScenarioAndOverride(t *testing.T) {
	gap := filepath.Join("testdata", "gap.yaml")

	out, _, err := run(t, "find", "--scenario", gap)
	require.NoError(t, err)
	assert.Contains(t, out, "cost: 8, length: 9")

	out, _, err = run(t, "find", "-s", gap, "--x", "4", "--y", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "cost: 3, length: 4")
}

func TestFind_NoPath(t *testing.T) {
	out, _, err := run(t, "find", "-s", filepath.Join("testdata", "wall.yaml"))
	assert.ErrorIs(t, err, astar.ErrPathNotFound)
	assert.Contains(t, out, "no path")
	assert.Contains(t, out, "..S..")
}

func TestFind_InvalidStart(t *testing.T) {
	_, _, err := run(t, "find", "--x", "9")
	assert.ErrorIs(t, err, astar.ErrInvalidCoordinate)
}

func TestFind_Trace(t *testing.T) {
	out, _, err := run(t, "find", "--trace")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "enqueue (2,6) g=0 h=6 f=6\nsettle  (2,6) g=0 h=6 f=6\n"))
	assert.Contains(t, out, "settle  (2,0) g=6 h=0 f=6\n")
}

func TestSweep(t *testing.T) {
	out, _, err := run(t, "sweep", "-s", filepath.Join("testdata", "gap.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ""+
		"  0  0  0  0  0\n"+
		"  1  1  1  -  1\n"+
		"  -  -  -  3  2\n"+
		"  7  6  5  4  3\n"+
		"  8  7  6  5  4\n", out)
}

func TestInit(t *testing.T) {
	out, _, err := run(t, "init")
	require.NoError(t, err)

	s, err := scenario.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, 5, s.Width)
	assert.Equal(t, 7, s.Height)
	assert.Len(t, s.Rows, 7)
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := run(t, "--debug", "find")
	require.NoError(t, err)
	assert.Contains(t, stderr, "search started")
}

func TestMissingScenario(t *testing.T) {
	_, _, err := run(t, "find", "-s", filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}
