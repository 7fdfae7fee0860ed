package formatter

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/minlog/minimize"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func run(t *testing.T, text string) *minimize.Result {
	t.Helper()
	engine, err := minimize.NewWithConfig(minimize.DefaultConfig(), nil)
	require.NoError(t, err)
	result, err := engine.Run(text)
	require.NoError(t, err)
	return result
}

func TestGenerateFormattedResult(t *testing.T) {
	t.Parallel()
	result := run(t, "F = m(0,2,5,7)")

	assert.Equal(t, "Reduced Equation:\nA'C'+AC\n", GenerateFormattedResult([]*minimize.Result{result}, false))

	result.Source = "adder.eqn:3"
	expected := `--> adder.eqn:3 F = m(0,2,5,7)
Reduced Equation:
A'C'+AC
  = form: SOP
  = prime implicants: 2
  = essential: 0-0 1-1
  = selected: 0-0 1-1
  = verified: yes
`
	assert.Equal(t, expected, GenerateFormattedResult([]*minimize.Result{result}, true))
}

func TestGenerateFormattedResultFailure(t *testing.T) {
	t.Parallel()
	results := []*minimize.Result{
		{Source: "arg:1", Canonical: "F = m()", Error: "no terms supplied in the equation"},
		run(t, "F = M(1,3) + D(0)"),
	}

	expected := `--> arg:1 F = m()
error: no terms supplied in the equation
Reduced Equation:
(B')
`
	assert.Equal(t, expected, GenerateFormattedResult(results, false))
}

func TestGeneratePrimeImplicantTable(t *testing.T) {
	t.Parallel()
	engine, err := minimize.NewWithConfig(minimize.DefaultConfig(), nil)
	require.NoError(t, err)
	eq, pis, err := engine.PrimeImplicants("F = m(0,2,5,7)")
	require.NoError(t, err)

	expected := "pattern  terms  implicant\n" +
		"0-0      0,2    A'C'\n" +
		"1-1      5,7    AC\n" +
		"2 prime implicants\n"
	assert.Equal(t, expected, GeneratePrimeImplicantTable(eq, pis, 3, nil))
}

func TestGenerateJSON(t *testing.T) {
	t.Parallel()
	result := run(t, "F = m(1,3) + d(0)")
	result.Source = "arg:1"

	d, err := GenerateJSON([]*minimize.Result{result, {Source: "arg:2", Error: "boom"}})
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(d, &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, "arg:1", decoded[0]["source"])
	assert.Equal(t, "F = m(1,3) + d(0)", decoded[0]["equation"])
	assert.Equal(t, "B", decoded[0]["expression"])
	assert.Equal(t, true, decoded[0]["verified"])
	assert.Equal(t, float64(2), decoded[0]["variable_count"])
	assert.Equal(t, []any{
		map[string]any{"pattern": "-1", "terms": []any{float64(1), float64(3)}},
	}, decoded[0]["selected"])
	assert.NotContains(t, decoded[0], "error")

	assert.Equal(t, "boom", decoded[1]["error"])
	assert.NotContains(t, decoded[1], "selected")
}
