package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/minlog/minimize"
)

func testEngine(t *testing.T) *minimize.Engine {
	t.Helper()
	engine, err := minimize.NewWithConfig(minimize.DefaultConfig(), nil)
	require.NoError(t, err)
	return engine
}

func TestInitConfigurationFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), ".minlog.yaml")

	require.NoError(t, initConfigurationFile(path))

	config, err := minimize.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, minimize.DefaultConfig(), config)
}

func TestRunMinimizeJSON(t *testing.T) {
	t.Parallel()
	out := filepath.Join(t.TempDir(), "out.json")

	failed := runMinimize(context.Background(), zap.NewNop(), testEngine(t),
		[]string{"F = m(0,1,2,3)", "F = M(1,3) + D(0)"}, true, out)
	assert.False(t, failed)

	d, err := os.ReadFile(out)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(d, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "1", decoded[0]["expression"])
	assert.Equal(t, "(B')", decoded[1]["expression"])
	assert.Equal(t, "POS", decoded[1]["form"])
}

func TestRunMinimizeReportsFailures(t *testing.T) {
	t.Parallel()
	out := filepath.Join(t.TempDir(), "out.json")

	failed := runMinimize(context.Background(), zap.NewNop(), testEngine(t),
		[]string{"F = m(1)", "garbage text no sign"}, true, out)
	assert.True(t, failed)
}

func TestRunBatch(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.eqn"), []byte("# adder\nF = m(1,3,5,7)\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.eqn"), []byte("F = m(0,2)\n"), 0o644))
	out := filepath.Join(t.TempDir(), "out.json")

	failed := runBatch(context.Background(), zap.NewNop(), testEngine(t), []string{dir}, true, out)
	assert.False(t, failed)

	d, err := os.ReadFile(out)
	require.NoError(t, err)
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(d, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "C", decoded[0]["expression"])
	assert.Equal(t, filepath.Join(dir, "a.eqn")+":2", decoded[0]["source"])
	assert.Equal(t, "B'", decoded[1]["expression"])
}

func TestRunBatchMissingPath(t *testing.T) {
	t.Parallel()
	failed := runBatch(context.Background(), zap.NewNop(), testEngine(t),
		[]string{filepath.Join(t.TempDir(), "missing")}, true, "")
	assert.True(t, failed)
}

func TestRunPrimes(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := runPrimes(&buf, zap.NewNop(), testEngine(t), []string{"F = m(0,2,5,7)"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "F = m(0,2,5,7)\n")
	assert.Contains(t, buf.String(), "2 prime implicants")

	err = runPrimes(&buf, zap.NewNop(), testEngine(t), []string{"F = m()", "F = m(1)"})
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "1 prime implicants")
}

func TestFlagOverrides(t *testing.T) {
	c := &cobra.Command{Use: "test"}
	c.Flags().StringVar(&coverStrategy, "cover", "", "")
	c.Flags().BoolVar(&verifyCover, "verify", true, "")
	c.Flags().StringVar(&variableNames, "names", "", "")
	require.NoError(t, c.Flags().Parse([]string{"--verify=false"}))

	config := minimize.DefaultConfig()
	config.Cover = "greedy"
	flagOverrides(c)(&config)

	// only flags set on the command line replace file values
	assert.Equal(t, "greedy", config.Cover)
	assert.False(t, config.Verify)
	assert.Nil(t, config.Variables)
}

func TestSplitNames(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"x", "y", "carry"}, splitNames("x, y ,carry"))
}
