// Package cube implements generalized terms ("cubes") for Quine-McCluskey
// tabulation.
//
// A cube is a base bit pattern plus a wildcard mask. Bits set in the mask are
// don't-care positions: they are ignored when comparing cubes, and the cube
// covers every term obtained by assigning them arbitrary values. An order-k cube
// (k wildcard bits) therefore stands for 2^k truth table entries that can be
// written as a single product or sum term.
package cube

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/gnoswap-labs/minlog/internal/bits"
	"github.com/gnoswap-labs/minlog/internal/types"
)

// Cube is a group of terms differing only in the wildcard bit positions.
type Cube struct {
	base     uint32
	mask     uint32
	dontCare bool
	absorbed bool
}

// Key identifies a cube by its significant bits. Two cubes with equal keys
// cover the same terms.
type Key struct {
	Base uint32
	Mask uint32
}

// New creates a cube from a base pattern and a wildcard mask.
func New(base, mask uint32, dontCare bool) Cube {
	return Cube{base: base, mask: mask, dontCare: dontCare}
}

// FromTerm creates the order-0 cube of a single term.
func FromTerm(t types.Term, dontCare bool) Cube {
	return Cube{base: t.Value(), dontCare: dontCare}
}

// Base returns the fixed bits of the cube. Bits under the wildcard mask are
// always zero.
func (c Cube) Base() uint32 { return c.base &^ c.mask }

// Mask returns the wildcard mask.
func (c Cube) Mask() uint32 { return c.mask }

// IsDontCare reports whether the cube was built only from don't-care terms.
func (c Cube) IsDontCare() bool { return c.dontCare }

// Absorbed reports whether the cube has been merged into a higher order cube.
func (c Cube) Absorbed() bool { return c.absorbed }

// IsPrimeImplicant reports whether the cube was never absorbed.
func (c Cube) IsPrimeImplicant() bool { return !c.absorbed }

// MarkAbsorbed records that the cube took part in a successful merge.
func (c *Cube) MarkAbsorbed() { c.absorbed = true }

// Order returns the number of wildcard positions.
func (c Cube) Order() int { return bits.PopCount(c.mask) }

// Key returns the comparison key of the cube.
func (c Cube) Key() Key { return Key{Base: c.Base(), Mask: c.mask} }

// Equal reports whether two cubes cover the same terms. The don't-care and
// absorbed flags are not compared.
func (c Cube) Equal(other Cube) bool { return c.Key() == other.Key() }

// Adjacent reports whether c and other can be merged: they share the same
// wildcard mask and differ in exactly one non-wildcard bit.
func (c Cube) Adjacent(other Cube) bool {
	if c.mask != other.mask {
		return false
	}
	return bits.PopCount((c.base^other.base)&^c.mask) == 1
}

// Merge combines two adjacent cubes into the next order cube. The differing
// bit becomes a wildcard. The result is a don't-care cube only when both
// parents are. Merge does not change the absorbed flags of its operands.
func (c Cube) Merge(other Cube) (Cube, bool) {
	if !c.Adjacent(other) {
		return Cube{}, false
	}
	diff := (c.base ^ other.base) &^ c.mask
	return Cube{
		base:     c.base &^ (diff | c.mask),
		mask:     c.mask | diff,
		dontCare: c.dontCare && other.dontCare,
	}, true
}

// Covers reports whether t is one of the terms of the cube.
func (c Cube) Covers(t types.Term) bool {
	return t.Value()&^c.mask == c.Base()
}

// Terms returns every term covered by the cube in ascending order.
func (c Cube) Terms() []types.Term {
	base := c.Base()
	terms := make([]types.Term, 0, 1<<c.Order())
	// enumerate the subsets of the mask in increasing order
	var sub uint32
	for {
		terms = append(terms, types.Term(base|sub))
		if sub == c.mask {
			break
		}
		sub = (sub - c.mask) & c.mask
	}
	return terms
}

// String returns the cube as a pattern over 32 bits with '-' in wildcard
// positions, trimmed to the highest significant position.
func (c Cube) String() string {
	width := bits.Len(c.Base() | c.mask)
	if width == 0 {
		width = 1
	}
	return c.Pattern(width)
}

// Pattern returns the cube as a string of '0', '1' and '-' over width bits,
// most significant bit first.
func (c Cube) Pattern(width int) string {
	buf := make([]byte, width)
	for i := 0; i < width; i++ {
		pos := uint(width - 1 - i)
		switch {
		case bits.TestBit(c.mask, pos):
			buf[i] = '-'
		case bits.TestBit(c.base, pos):
			buf[i] = '1'
		default:
			buf[i] = '0'
		}
	}
	return string(buf)
}

// GoString is used by %#v.
func (c Cube) GoString() string {
	return fmt.Sprintf("cube.New(%#b, %#b, %t)", c.Base(), c.mask, c.dontCare)
}

// Dedup removes cubes covering the same terms as an earlier cube of the list,
// keeping the first occurrence. The order of the remaining cubes is preserved.
func Dedup(cubes []Cube) []Cube {
	return lo.UniqBy(cubes, func(c Cube) Key {
		return c.Key()
	})
}
