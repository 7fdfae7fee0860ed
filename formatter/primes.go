package formatter

import (
	"fmt"
	"strings"

	"github.com/gnoswap-labs/minlog/internal/cube"
	"github.com/gnoswap-labs/minlog/internal/types"
)

// GeneratePrimeImplicantTable lists each prime implicant with its pattern, the
// terms it covers and its rendering over variableCount variables.
//
//	pattern  terms       implicant
//	-100     4,12        BC'D'
func GeneratePrimeImplicantTable(eq types.Equation, pis []cube.Cube, variableCount int, names []string) string {
	var builder strings.Builder

	form := eq.Mode.Form()
	width := variableCount
	if width < len("pattern") {
		width = len("pattern")
	}

	rows := make([][2]string, len(pis))
	termsWidth := len("terms")
	for i, pi := range pis {
		terms := types.JoinTerms(pi.Terms())
		if pi.IsDontCare() {
			terms += " (d)"
		}
		rows[i] = [2]string{terms, pi.Format(form, variableCount, names)}
		if len(terms) > termsWidth {
			termsWidth = len(terms)
		}
	}

	builder.WriteString(headerStyle.Sprintf("%-*s  %-*s  %s", width, "pattern", termsWidth, "terms", "implicant"))
	builder.WriteString("\n")
	for i, pi := range pis {
		builder.WriteString(lineStyle.Sprintf("%-*s", width, pi.Pattern(variableCount)))
		builder.WriteString(noStyle.Sprintf("  %-*s  ", termsWidth, rows[i][0]))
		builder.WriteString(resultStyle.Sprint(rows[i][1]))
		builder.WriteString("\n")
	}
	builder.WriteString(fmt.Sprintf("%d prime implicants\n", len(pis)))
	return builder.String()
}
