// Package printer renders a list of implicants as a reduced equation.
package printer

import (
	"strings"

	"github.com/gnoswap-labs/minlog/internal/cube"
	"github.com/gnoswap-labs/minlog/internal/types"
)

// Header introduces a rendered equation in text output.
const Header = "Reduced Equation:"

// Render writes each cube as a product term joined by '+' (SOP), or as a
// parenthesized sum term with the product left implicit (POS).
// numVar is not checked against the width of the cubes.
func Render(cubes []cube.Cube, form types.Form, numVar int, names []string) string {
	if len(cubes) == 0 {
		// an empty sum is false, an empty product is true
		if form == types.POS {
			return "1"
		}
		return "0"
	}

	var b strings.Builder
	for i, c := range cubes {
		b.WriteString(c.Format(form, numVar, names))
		if form == types.SOP && i != len(cubes)-1 {
			b.WriteString("+")
		}
	}
	return b.String()
}
