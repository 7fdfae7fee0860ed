// Package verify checks a selected cover against the function it was built
// from using binary decision diagrams.
package verify

import (
	"errors"
	"fmt"

	"github.com/dalzilio/rudd"

	"github.com/gnoswap-labs/minlog/internal/cube"
	"github.com/gnoswap-labs/minlog/internal/types"
)

var (
	ErrNotEquivalent = errors.New("cover is not equivalent to the function")
	ErrOutOfRange    = errors.New("bits outside the variable count")
)

const (
	nodeSize  = 10000
	cacheSize = 3000
)

// checker builds BDDs over variableCount variables. BDD variable i is bit i of
// a term.
type checker struct {
	bdd           *rudd.BDD
	variableCount int
}

func newChecker(variableCount int) (*checker, error) {
	if variableCount < 1 || variableCount > 32 {
		return nil, fmt.Errorf("%w: %d variables", ErrOutOfRange, variableCount)
	}
	bdd, err := rudd.New(variableCount, rudd.Nodesize(nodeSize), rudd.Cachesize(cacheSize))
	if err != nil {
		return nil, err
	}
	return &checker{bdd: bdd, variableCount: variableCount}, nil
}

func (c *checker) inRange(v uint32) bool {
	if c.variableCount == 32 {
		return true
	}
	return v>>uint(c.variableCount) == 0
}

// cube returns the conjunction of the fixed bits of base under mask.
func (c *checker) cube(base, mask uint32) rudd.Node {
	literals := make([]rudd.Node, 0, c.variableCount)
	for i := 0; i < c.variableCount; i++ {
		bit := uint32(1) << uint(i)
		switch {
		case mask&bit != 0:
		case base&bit != 0:
			literals = append(literals, c.bdd.Ithvar(i))
		default:
			literals = append(literals, c.bdd.NIthvar(i))
		}
	}
	return c.bdd.And(literals...)
}

func (c *checker) terms(terms []types.Term) (rudd.Node, error) {
	nodes := make([]rudd.Node, 0, len(terms))
	for _, t := range terms {
		if !c.inRange(t.Value()) {
			return nil, fmt.Errorf("%w: term %d", ErrOutOfRange, t)
		}
		nodes = append(nodes, c.cube(t.Value(), 0))
	}
	return c.bdd.Or(nodes...), nil
}

func (c *checker) cubes(cubes []cube.Cube) (rudd.Node, error) {
	nodes := make([]rudd.Node, 0, len(cubes))
	for _, cb := range cubes {
		if !c.inRange(cb.Base() | cb.Mask()) {
			return nil, fmt.Errorf("%w: cube %s", ErrOutOfRange, cb)
		}
		nodes = append(nodes, c.cube(cb.Base(), cb.Mask()))
	}
	return c.bdd.Or(nodes...), nil
}

// Equivalent reports whether selected covers every required term and nothing
// outside the required and don't-care terms. For maxterm equations the same
// check applies to the zero set.
func Equivalent(selected []cube.Cube, required, dontCares []types.Term, variableCount int) error {
	c, err := newChecker(variableCount)
	if err != nil {
		return err
	}

	on, err := c.terms(required)
	if err != nil {
		return err
	}
	dc, err := c.terms(dontCares)
	if err != nil {
		return err
	}
	cover, err := c.cubes(selected)
	if err != nil {
		return err
	}

	upper := c.bdd.Or(on, dc)
	missing := c.bdd.And(on, c.bdd.Not(cover))
	extra := c.bdd.And(cover, c.bdd.Not(upper))
	if c.bdd.Errored() {
		return fmt.Errorf("building decision diagram: %s", c.bdd.Error())
	}

	if !c.bdd.Equal(missing, c.bdd.False()) {
		return fmt.Errorf("%w: %s required terms not covered", ErrNotEquivalent, c.bdd.Satcount(missing))
	}
	if !c.bdd.Equal(extra, c.bdd.False()) {
		return fmt.Errorf("%w: %s terms covered outside the function", ErrNotEquivalent, c.bdd.Satcount(extra))
	}
	return nil
}
