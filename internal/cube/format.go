package cube

import (
	"strconv"
	"strings"

	"github.com/gnoswap-labs/minlog/internal/bits"
	"github.com/gnoswap-labs/minlog/internal/types"
)

// VariableName returns the default name of variable i: A, B, ..., Z, then
// X26, X27, ...
func VariableName(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return "X" + strconv.Itoa(i)
}

// Format renders the cube as a product term (SOP) or a parenthesized sum term
// (POS) over numVar variables. The first variable is the most significant bit.
// names overrides the default variable names; missing entries fall back to
// VariableName.
//
// In a product term a 1 bit is the plain variable and a 0 bit its complement;
// in a sum term it is the other way around. Wildcard positions are omitted.
func (c Cube) Format(form types.Form, numVar int, names []string) string {
	var lits []string
	for i := 0; i < numVar; i++ {
		pos := uint(numVar - 1 - i)
		// positions beyond the word are fixed zeros
		inWord := pos < bits.WordSize
		if inWord && bits.TestBit(c.mask, pos) {
			continue
		}
		name := VariableName(i)
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		set := inWord && bits.TestBit(c.base, pos)
		if set == (form == types.POS) {
			name += "'"
		}
		lits = append(lits, name)
	}

	if form == types.POS {
		if len(lits) == 0 {
			return "(0)"
		}
		return "(" + strings.Join(lits, "+") + ")"
	}
	if len(lits) == 0 {
		return "1"
	}
	return strings.Join(lits, "")
}
