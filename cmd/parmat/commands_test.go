// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parmat/matrix"
	"github.com/katalvlaran/parmat/plan"
)

// execute runs the command tree with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestFill(t *testing.T) {
	out, _, err := execute(t, "", "fill", "-r", "3", "-c", "3", "-w", "4")
	require.NoError(t, err)
	assert.Equal(t, "[0, 0, 0]\n[1, 1, 2]\n[2, 3, 3]\n", out)
}

func TestFillVerbose(t *testing.T) {
	_, logs, err := execute(t, "", "fill", "-r", "1", "-c", "2", "-w", "3", "-v")
	require.NoError(t, err)
	assert.Contains(t, logs, "worker idle")
	assert.Contains(t, logs, "fill finished")
}

func TestFillErrors(t *testing.T) {
	_, _, err := execute(t, "", "fill", "-r", "0")
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)

	_, _, err = execute(t, "", "fill", "-w", "0")
	require.ErrorIs(t, err, matrix.ErrInvalidWorkerCount)
}

func TestPlanThenVerify(t *testing.T) {
	out, _, err := execute(t, "data:\n  - [1, 2, 3]\n  - [4, 5, 6]\n  - [7, 8, 9]\n",
		"plan", "-i", "-", "-f", "yaml", "-w", "4", "-o", "json")
	require.NoError(t, err)

	p, err := plan.Decode(strings.NewReader(out), plan.FormatJSON)
	require.NoError(t, err)
	require.Len(t, p.Assignments, 4)
	assert.Equal(t, plan.Span{Start: 0, End: 2}, p.Assignments[0].Linear)

	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o600))
	got, _, err := execute(t, "", "verify", "-i", path)
	require.NoError(t, err)
	assert.Equal(t, "ok: 3x3 across 4 workers\n", got)
}

func TestVerifyRejectsBrokenPlan(t *testing.T) {
	const broken = `rows: 1
cols: 2
workers: 1
assignments:
  - worker: 0
    count: 2
    idle: false
    linear: {start: 0, end: 0}
    from: {row: 0, col: 0}
    to: {row: 0, col: 0}
`
	_, _, err := execute(t, broken, "verify", "-i", "-")
	require.ErrorIs(t, err, plan.ErrInvalidPlan)
}

func TestPlanErrors(t *testing.T) {
	_, _, err := execute(t, "", "plan", "-w", "2")
	require.Error(t, err, "missing --input")

	_, _, err = execute(t, "", "plan", "-i", "m.toml")
	require.ErrorIs(t, err, plan.ErrUnknownFormat)

	_, _, err = execute(t, `{"data":[[1],[2,3]]}`, "plan", "-i", "-", "-f", "json")
	require.ErrorIs(t, err, matrix.ErrInconsistentRowLength)
}
