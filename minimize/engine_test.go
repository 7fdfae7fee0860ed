package minimize

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/minlog/internal/cover"
	"github.com/gnoswap-labs/minlog/internal/parser"
	"github.com/gnoswap-labs/minlog/internal/primes"
	"github.com/gnoswap-labs/minlog/internal/types"
)

func newEngine(t *testing.T, mutate func(*Config)) *Engine {
	t.Helper()
	config := DefaultConfig()
	if mutate != nil {
		mutate(&config)
	}
	engine, err := NewWithConfig(config, nil)
	require.NoError(t, err)
	return engine
}

// denseEquation lists every minterm of an n-variable function.
func denseEquation(n int) string {
	terms := make([]string, 1<<n)
	for i := range terms {
		terms[i] = fmt.Sprint(i)
	}
	return "F = m(" + strings.Join(terms, ",") + ")"
}

func TestRun(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		input         string
		mutate        func(*Config)
		expression    string
		form          string
		variableCount int
		primes        int
	}{
		{
			name:          "constant one",
			input:         "F = m(0,1,2,3)",
			expression:    "1",
			form:          "SOP",
			variableCount: 2,
			primes:        1,
		},
		{
			name:          "maxterms with dont care",
			input:         "F = M(1,3) + D(0)",
			expression:    "(B')",
			form:          "POS",
			variableCount: 2,
			primes:        2,
		},
		{
			name:          "odd numbers",
			input:         "F = m(1,3,5,7)",
			expression:    "C",
			form:          "SOP",
			variableCount: 3,
			primes:        1,
		},
		{
			name:          "single zero term",
			input:         "F = m(0)",
			expression:    "A'",
			form:          "SOP",
			variableCount: 1,
			primes:        1,
		},
		{
			name:          "configured width",
			input:         "F = m(0,1,2,3)",
			mutate:        func(c *Config) { c.VariableCount = 3 },
			expression:    "A'",
			form:          "SOP",
			variableCount: 3,
			primes:        1,
		},
		{
			name:          "configured names",
			input:         "F = m(2,3)",
			mutate:        func(c *Config) { c.Variables = []string{"x", "y"} },
			expression:    "x",
			form:          "SOP",
			variableCount: 2,
			primes:        1,
		},
		{
			name:          "greedy cover",
			input:         "F = m(0,2,5,7)",
			mutate:        func(c *Config) { c.Cover = "greedy" },
			expression:    "A'C'+AC",
			form:          "SOP",
			variableCount: 3,
			primes:        2,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result, err := newEngine(t, tt.mutate).Run(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expression, result.Expression)
			assert.Equal(t, tt.form, result.Form)
			assert.Equal(t, tt.variableCount, result.VariableCount)
			assert.Len(t, result.PrimeImplicants, tt.primes)
			assert.True(t, result.Verified)
			assert.False(t, result.Failed())
		})
	}
}

func TestRunSelectsEssentials(t *testing.T) {
	t.Parallel()
	for _, strategy := range []string{"exact", "greedy"} {
		engine := newEngine(t, func(c *Config) { c.Cover = strategy })
		result, err := engine.Run("F = m(4,8,10,11,12,15) + d(9,14)")
		require.NoError(t, err)

		assert.Equal(t, 4, result.VariableCount)
		assert.Len(t, result.PrimeImplicants, 4)
		assert.Len(t, result.Essential, 2)
		assert.Len(t, result.Selected, 3)
		assert.Subset(t, result.Selected, result.Essential)
		assert.Contains(t, result.Expression, "BC'D'")
		assert.Contains(t, result.Expression, "AC")
		assert.Equal(t, "F = m(4,8,10,11,12,15) + d(9,14)", result.Canonical)
	}
}

func TestRunWithoutVerify(t *testing.T) {
	t.Parallel()
	result, err := newEngine(t, func(c *Config) { c.Verify = false }).Run("F = m(1)")
	require.NoError(t, err)
	assert.False(t, result.Verified)
	assert.Equal(t, "A", result.Expression)
}

func TestRunErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		mutate  func(*Config)
		wantErr error
	}{
		{"no marker", "garbage text no sign", nil, parser.ErrMalformedEquation},
		{"empty term list", "F = m()", nil, parser.ErrNoTerms},
		{"too many variables", "F = m(8)", func(c *Config) { c.MaxVariables = 3 }, ErrTooManyVariables},
		{"configured width too small", "F = m(4)", func(c *Config) { c.VariableCount = 2 }, ErrVariableCount},
		{"cube limit", denseEquation(8), nil, primes.ErrTooManyCubes},
		{"lowered cube limit", "F = m(0,1,2,3)", func(c *Config) { c.MaxCubes = 3 }, primes.ErrTooManyCubes},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := newEngine(t, tt.mutate).Run(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRunDenseWithinCubeLimit(t *testing.T) {
	t.Parallel()
	result, err := newEngine(t, nil).Run(denseEquation(6))
	require.NoError(t, err)
	assert.Equal(t, "1", result.Expression)
	assert.True(t, result.Verified)
}

func TestRunContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newEngine(t, nil).RunContext(ctx, "F = m(0,1,2,5,6,7)")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNoVariableLimit(t *testing.T) {
	t.Parallel()
	engine := newEngine(t, func(c *Config) { c.MaxVariables = 0 })
	count, err := engine.VariableCount(types.Equation{Terms: []types.Term{1 << 30}})
	require.NoError(t, err)
	assert.Equal(t, 31, count)
}

func TestNewWithConfigErrors(t *testing.T) {
	t.Parallel()
	config := DefaultConfig()
	config.Cover = "bogus"
	_, err := NewWithConfig(config, nil)
	assert.ErrorIs(t, err, cover.ErrUnknownStrategy)

	config = DefaultConfig()
	config.VariableCount = 33
	_, err = NewWithConfig(config, nil)
	assert.ErrorIs(t, err, ErrVariableCount)
}

func TestPrimeImplicants(t *testing.T) {
	t.Parallel()
	eq, pis, err := newEngine(t, nil).PrimeImplicants("F = m(0,1,2,5,6,7)")
	require.NoError(t, err)
	assert.Equal(t, types.Minterms, eq.Mode)
	assert.Len(t, pis, 6)

	_, _, err = newEngine(t, nil).PrimeImplicants("F = m()")
	assert.ErrorIs(t, err, parser.ErrNoTerms)
}

func TestNewFromFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), ".minlog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: test\ncover: greedy\nverify: false\n"), 0o644))

	engine, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, "test", engine.Config().Name)
	assert.False(t, engine.Config().Verify)
	assert.Equal(t, DefaultMaxVariables, engine.Config().MaxVariables)

	_, err = New(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
