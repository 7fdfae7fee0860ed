// Package bits holds the word-level helpers used by cube adjacency tests.
package bits

import (
	"fmt"
	"math/bits"
)

// WordSize is the number of bits in a term index.
const WordSize = 32

// PopCount returns the number of set bits in num.
func PopCount(num uint32) int {
	return bits.OnesCount32(num)
}

// TestBit reports whether bit n of num is set.
// It panics if n is not a valid bit position of a 32-bit word.
func TestBit(num uint32, n uint) bool {
	if n >= WordSize {
		panic(fmt.Sprintf("bits: bit %d out of range", n))
	}
	return (num>>n)&1 == 1
}

// Len returns the minimum number of bits required to represent num.
func Len(num uint32) int {
	return bits.Len32(num)
}
