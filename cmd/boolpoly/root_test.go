// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, stderr bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	testCases := []struct {
		args     []string
		expected string
	}{
		{[]string{"--names", "x,y,z", "eval", "z + y*x + 1 + z"}, "x*y + 1\n"},
		{[]string{"--names", "x,y,z", "add", "x + y", "y + z", "1"}, "x + z + 1\n"},
		{[]string{"--names", "x,y,z", "mul", "x*y + z", "x + 1"}, "x*z + z\n"},
		{[]string{"--names", "x,y,z", "div", "x*y + x*z + y", "x"}, "y + z\n"},
		{[]string{"--names", "x,y,z", "--order", "dlex", "lead", "x*y + z + 1"}, "x*y {0,1} 2\n"},
		{[]string{"--names", "x,y,z", "-o", "dp_asc", "lead", "x + y*z"}, "y*z {1,2} 2\n"},
		{[]string{"--names", "x,y,z", "deg", "x*y*z + x"}, "3\n"},
		{[]string{"--names", "x,y,z", "divisors", "x*y + z"}, "x*y + x + y + 1\n"},
		{[]string{"--names", "x,y,z", "spoly", "x*y + z", "y*z + 1"}, "x + z\n"},
		{[]string{"--names", "x,y,z", "vars", "x + 1", "z"}, "x*z\n"},
		{[]string{"--names", "x,y,z", "nodes", "x*y"}, "4 1\n"},
		{[]string{"-n", "3", "--fast", "mul", "x0 + x1", "x1 + x2"}, "x0*x1 + x0*x2 + x1*x2 + x1\n"},
	}
	for _, tc := range testCases {
		out, err := run(t, tc.args...)
		require.NoError(t, err, strings.Join(tc.args, " "))
		assert.Equal(t, tc.expected, out, strings.Join(tc.args, " "))
	}
}

func TestErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--names", "x,y", "eval", "x + u"},
		{"--names", "x,y", "div", "x", "x + y"},
		{"--names", "x,y", "--order", "grevlex", "eval", "x"},
		{"-n", "0", "eval", "1"},
		{"--names", "x,y", "eval"},
		{"--config", "missing.toml", "eval", "1"},
	} {
		_, err := run(t, args...)
		assert.Error(t, err, strings.Join(args, " "))
	}
}

func TestDot(t *testing.T) {
	out, err := run(t, "--names", "x,y", "dot", "x*y + 1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph G {"))
}

func TestStatsAndMetrics(t *testing.T) {
	out, err := run(t, "--names", "x,y", "--stats", "mul", "x + 1", "y")
	require.NoError(t, err)
	assert.Contains(t, out, "Unique Access:")
	out, err = run(t, "--names", "x,y", "--metrics", "mul", "x + 1", "y")
	require.NoError(t, err)
	assert.Contains(t, out, `boolpoly_ring_variables{ring="boolpoly"} 2`)
}

func TestConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring.toml")
	data := `
[boolpoly]
loglevel="warn"

[boolpoly.ring]
varnum=3
names=["a","b","c"]
ordering="dlex"

[boolpoly.reduction]
tailReduction=false
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	out, err := run(t, "--config", path, "lead", "a + b*c")
	require.NoError(t, err)
	assert.Equal(t, "b*c {1,2} 2\n", out)
	// flags override the configuration file
	out, err = run(t, "--config", path, "--order", "lp", "lead", "a + b*c")
	require.NoError(t, err)
	assert.Equal(t, "a {0} 1\n", out)
	out, err = run(t, "--config", path, "options")
	require.NoError(t, err)
	assert.Contains(t, out, "redtail: false")
}
