package formatter

import (
	"strconv"
	"strings"

	"github.com/gnoswap-labs/minlog/internal/types"
)

// GenerateParsedListing lists the parsed terms one per line, followed by the
// don't-care terms.
func GenerateParsedListing(eq types.Equation) string {
	var builder strings.Builder

	if eq.Mode == types.Maxterms {
		builder.WriteString("Maxterms parsed from equation:\n")
	} else {
		builder.WriteString("Minterms parsed from equation:\n")
	}
	for _, t := range eq.Terms {
		builder.WriteString(strconv.FormatUint(uint64(t), 10) + "\n")
	}
	builder.WriteString("\n")

	if len(eq.DontCares) == 0 {
		builder.WriteString("Without any dont care terms\n")
		return builder.String()
	}
	builder.WriteString("Dont cares parsed from equation:\n")
	for _, t := range eq.DontCares {
		builder.WriteString(strconv.FormatUint(uint64(t), 10) + "\n")
	}
	return builder.String()
}
