package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Term is an index into the truth table of a Boolean function.
// Depending on the equation it is a minterm or a maxterm number.
type Term uint32

// Value returns the table index of the term.
func (t Term) Value() uint32 { return uint32(t) }

// Mode tells whether the terms of an equation are minterms or maxterms.
type Mode int

const (
	Minterms Mode = iota
	Maxterms
)

func (m Mode) String() string {
	switch m {
	case Minterms:
		return "minterms"
	case Maxterms:
		return "maxterms"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Marker returns the introducer character used for this mode in equation text.
func (m Mode) Marker() string {
	if m == Maxterms {
		return "M"
	}
	return "m"
}

// Form returns the normal form a reduced equation is written in:
// minterms reduce to a sum of products, maxterms to a product of sums.
func (m Mode) Form() Form {
	if m == Maxterms {
		return POS
	}
	return SOP
}

// Form is the normal form of a rendered expression.
type Form int

const (
	SOP Form = iota // sum of products
	POS             // product of sums
)

func (f Form) String() string {
	if f == POS {
		return "POS"
	}
	return "SOP"
}

// Equation is the structured form of a parsed equation text.
type Equation struct {
	Mode      Mode
	Terms     []Term
	DontCares []Term
}

// String returns the canonical text of the equation, e.g. "F = m(1,3) + d(0)".
// Parsing the canonical text yields the same equation.
func (e Equation) String() string {
	var b strings.Builder
	b.WriteString("F = ")
	b.WriteString(e.Mode.Marker())
	b.WriteString("(")
	b.WriteString(JoinTerms(e.Terms))
	b.WriteString(")")
	if len(e.DontCares) > 0 {
		if e.Mode == Maxterms {
			b.WriteString(" + D(")
		} else {
			b.WriteString(" + d(")
		}
		b.WriteString(JoinTerms(e.DontCares))
		b.WriteString(")")
	}
	return b.String()
}

// MaxTerm returns the largest index among the required and don't-care terms.
func (e Equation) MaxTerm() uint32 {
	var max uint32
	for _, list := range [][]Term{e.Terms, e.DontCares} {
		for _, t := range list {
			if t.Value() > max {
				max = t.Value()
			}
		}
	}
	return max
}

// JoinTerms writes terms as a comma separated list of decimal values.
func JoinTerms(terms []Term) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = strconv.FormatUint(uint64(t), 10)
	}
	return strings.Join(parts, ",")
}
