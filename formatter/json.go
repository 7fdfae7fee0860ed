package formatter

import (
	"encoding/json"

	"github.com/samber/lo"

	"github.com/gnoswap-labs/minlog/internal/cube"
	"github.com/gnoswap-labs/minlog/internal/types"
	"github.com/gnoswap-labs/minlog/minimize"
)

type jsonImplicant struct {
	Pattern string   `json:"pattern"`
	Terms   []uint32 `json:"terms"`
}

type jsonResult struct {
	*minimize.Result
	Essential []jsonImplicant `json:"essential,omitempty"`
	Selected  []jsonImplicant `json:"selected,omitempty"`
}

func implicants(cubes []cube.Cube, width int) []jsonImplicant {
	return lo.Map(cubes, func(c cube.Cube, _ int) jsonImplicant {
		return jsonImplicant{
			Pattern: c.Pattern(width),
			Terms: lo.Map(c.Terms(), func(t types.Term, _ int) uint32 {
				return t.Value()
			}),
		}
	})
}

// GenerateJSON encodes results as a JSON array, with the essential and
// selected implicants spelled out as patterns and covered terms.
func GenerateJSON(results []*minimize.Result) ([]byte, error) {
	out := lo.Map(results, func(r *minimize.Result, _ int) jsonResult {
		return jsonResult{
			Result:    r,
			Essential: implicants(r.Essential, r.VariableCount),
			Selected:  implicants(r.Selected, r.VariableCount),
		}
	})
	return json.MarshalIndent(out, "", "  ")
}
