package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wfccharts/bench"
	"wfccharts/common"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--log-level", "warn"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

// copyData writes the embedded revision to a directory, applying edit to
// the time table.
func copyData(t *testing.T, edit func(string) string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{bench.DecisionNodesFile, bench.TimeFile, bench.BacktracksFile} {
		b, err := os.ReadFile(filepath.Join("bench", "data", name))
		require.NoError(t, err)
		s := string(b)
		if name == bench.TimeFile && edit != nil {
			s = edit(s)
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(s), 0644))
	}
	return dir
}

func TestRunDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "figs")
	out, err := execute(t, "run", "--out", dir)
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out), 4)

	// images only: one file per routine
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 4)
	assert.FileExists(t, filepath.Join(dir, "time_128x128.svg"))
}

func TestNoCommandRunsDefault(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	tmp := t.TempDir()
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { os.Chdir(wd) })

	out, err := execute(t)
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out), 4)

	entries, err := os.ReadDir(filepath.Join(tmp, common.DefaultFigDir))
	require.NoError(t, err)
	assert.Len(t, entries, 4)

	_, err = execute(t, "bogus")
	assert.Error(t, err)
}

func TestRunDataFiles(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "run", "--out", dir, "--csv", "--markdown", "--manifest")
	require.NoError(t, err)
	figs, err := common.ListFigs(dir)
	require.NoError(t, err)
	assert.Len(t, figs, 4)
	assert.FileExists(t, filepath.Join(dir, "backtracks_panel.csv"))
	assert.FileExists(t, filepath.Join(dir, "decision_nodes_table.md"))
	assert.FileExists(t, filepath.Join(dir, "manifest.json"))
}

func TestRunOnlyEPS(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "run", "--out", dir, "--only", "time_32x32", "--format", "eps")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "time_32x32.eps"))
	_, err = os.Stat(filepath.Join(dir, "time_32x32.csv"))
	assert.True(t, os.IsNotExist(err))

	_, err = execute(t, "run", "--out", dir, "--only", "nope")
	assert.Error(t, err)

	_, err = execute(t, "run", "--out", dir, "--format", "gif")
	assert.Error(t, err)
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "wfccharts.yaml")
	figs := filepath.Join(dir, "out")
	cfg := "out: " + figs + "\nonly: [backtracks_panel]\ncsv: true\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))

	_, err := execute(t, "run", "--config", cfgPath)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(figs, "backtracks_panel.svg"))
	assert.FileExists(t, filepath.Join(figs, "backtracks_panel.csv"))

	// flags win over the file
	other := filepath.Join(dir, "flag")
	_, err = execute(t, "run", "--config", cfgPath, "--out", other, "--csv=false")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(other, "backtracks_panel.svg"))
	_, err = os.Stat(filepath.Join(other, "backtracks_panel.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunRejectsMalformedData(t *testing.T) {
	data := copyData(t, func(s string) string {
		return strings.Replace(s, "[.inf, 0.009897475, ", "[0.009897475, ", 1)
	})
	_, err := execute(t, "run", "--out", t.TempDir(), "--data", data)
	assert.ErrorIs(t, err, bench.ErrLength)
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "decision_nodes_panel")
	assert.Contains(t, out, "time_128x128.svg")
}

func TestTable(t *testing.T) {
	out, err := execute(t, "table", "--markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "| Floorplan 64x64 |")
	assert.Contains(t, out, "Time to Run (128x128)")
}

func TestDrift(t *testing.T) {
	same := copyData(t, nil)
	out, err := execute(t, "drift", "--data", same)
	require.NoError(t, err)
	assert.Equal(t, "no differences\n", out)

	changed := copyData(t, func(s string) string {
		return strings.Replace(s, "[.inf, 0.009897475, ", "[0.5, 0.009897475, ", 1)
	})
	out, err = execute(t, "drift", "--data", changed)
	require.NoError(t, err)
	assert.Equal(t, "time / Castle 32x32 / Standard Backtracking: inf -> 0.5\n", out)

	_, err = execute(t, "drift")
	assert.Error(t, err)
}
