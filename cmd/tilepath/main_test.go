package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const detourMap = "S.#..\n" +
	"..#..\n" +
	"....G\n"

func writeMap(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "level.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestFind_Markers(t *testing.T) {
	out, _, err := run(t, "find", "--map", writeMap(t, detourMap))
	require.NoError(t, err)
	assert.Equal(t, "**#..\n.*#..\n.****\ncost=6 steps=6 expanded=9\n", out)
}

func TestFind_ExplicitCells(t *testing.T) {
	out, _, err := run(t, "find", "-m", writeMap(t, detourMap), "--from", "4,0", "--to", "4,2", "-w", "uniform")
	require.NoError(t, err)
	assert.Contains(t, out, "cost=2 steps=2")
}

func TestFind_Diagonal(t *testing.T) {
	path := writeMap(t, detourMap)

	// Octile steps are 10/14. Without corner cutting the diagonal
	// (1,1)→(2,2) past the wall end at (2,1) is refused.
	out, _, err := run(t, "find", "-m", path, "--diagonal", "-w", "octile")
	require.NoError(t, err)
	assert.Contains(t, out, "cost=54 ")

	out, _, err = run(t, "find", "-m", path, "--diagonal", "--corner-cutting", "-w", "octile")
	require.NoError(t, err)
	assert.Contains(t, out, "cost=48 ")
}

func TestFind_Trace(t *testing.T) {
	_, trace, err := run(t, "find", "-m", writeMap(t, "SG\n"), "--trace")
	require.NoError(t, err)
	assert.Contains(t, trace, "expand (0,0) g=0")
	assert.Contains(t, trace, "relax  (0,0)→(1,0) g=1 f=1")
}

func TestFind_Unreachable(t *testing.T) {
	out, _, err := run(t, "find", "-m", writeMap(t, "S#G\n"))
	assert.ErrorIs(t, err, errUnreachable)
	assert.Contains(t, out, "no path from (0,0) to (2,0)")
}

func TestFind_Errors(t *testing.T) {
	path := writeMap(t, detourMap)
	cases := []struct {
		name string
		args []string
		msg  string
	}{
		{"NoMap", []string{"find"}, `"map" not set`},
		{"MissingFile", []string{"find", "-m", filepath.Join(t.TempDir(), "nope.txt")}, "nope.txt"},
		{"BadWeight", []string{"find", "-m", path, "-w", "bogus"}, "unknown weight"},
		{"BadCell", []string{"find", "-m", path, "--to", "4;2"}, "cell"},
		{"NoGoalMarker", []string{"find", "-m", writeMap(t, "S..\n")}, "no goal given"},
		{"BadMap", []string{"find", "-m", writeMap(t, "S.\n.\n")}, "level.txt"},
		{"StartOffGrid", []string{"find", "-m", path, "--from", "9,9"}, "start"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, tc.args...)
			require.Error(t, err)
			assert.NotErrorIs(t, err, errUnreachable)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestReach(t *testing.T) {
	path := writeMap(t, detourMap)

	out, _, err := run(t, "reach", "-m", path)
	require.NoError(t, err)
	assert.Equal(t, "reachable=13 of 15 cells\n", out)

	out, _, err = run(t, "reach", "-m", writeMap(t, "S#.\n##.\n"))
	require.NoError(t, err)
	assert.Equal(t, "reachable=1 of 6 cells\n", out)

	// Diagonal moves past the wall corner are allowed with corner cutting.
	out, _, err = run(t, "reach", "-m", writeMap(t, "S#\n#.\n"), "--diagonal", "--corner-cutting")
	require.NoError(t, err)
	assert.Equal(t, "reachable=2 of 4 cells\n", out)
}
