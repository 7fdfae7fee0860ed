// Package primes finds all prime implicants of a Boolean function with the
// Quine-McCluskey tabulation method.
package primes

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/gnoswap-labs/minlog/internal/cube"
	"github.com/gnoswap-labs/minlog/internal/types"
)

var (
	ErrNoRequiredTerms = errors.New("prime implicant search needs at least one required term")
	ErrTooManyCubes    = errors.New("tabulation exceeds the cube limit")
)

// Levels holds the cube groups of a tabulation indexed by merge order. Every
// group is kept, since prime implicants are drawn from all of them.
type Levels [][]cube.Cube

// PrimeImplicants returns every cube of every level that was never absorbed,
// in level order. Cubes reached through different merge paths appear once per
// path; see cube.Dedup.
func (l Levels) PrimeImplicants() []cube.Cube {
	var result []cube.Cube
	for _, group := range l {
		for _, c := range group {
			if c.IsPrimeImplicant() {
				result = append(result, c)
			}
		}
	}
	return result
}

// Size returns the total number of cubes over all levels.
func (l Levels) Size() int {
	n := 0
	for _, group := range l {
		n += len(group)
	}
	return n
}

// Finder runs the tabulation.
type Finder struct {
	logger   *zap.Logger
	maxCubes int
}

// NewFinder creates a Finder. A nil logger disables logging.
func NewFinder(logger *zap.Logger) *Finder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Finder{logger: logger}
}

// WithMaxCubes bounds the number of cubes in any single level, the input
// level included. Duplicates from different merge paths count, so dense
// functions reach the bound long before they run out of variables. Zero
// removes the bound.
func (f *Finder) WithMaxCubes(n int) *Finder {
	f.maxCubes = n
	return f
}

func (f *Finder) checkSize(order, n int) error {
	if f.maxCubes > 0 && n > f.maxCubes {
		return fmt.Errorf("%w: more than %d cubes at order %d", ErrTooManyCubes, f.maxCubes, order)
	}
	return nil
}

// FindPrimeImplicants returns every prime implicant of the function whose
// required terms and don't-care terms are given.
func (f *Finder) FindPrimeImplicants(required, dontCares []types.Term) ([]cube.Cube, error) {
	levels, err := f.Tabulate(required, dontCares)
	if err != nil {
		return nil, err
	}
	return levels.PrimeImplicants(), nil
}

// Tabulate builds the cube levels. Level 0 holds one cube per required term
// followed by one cube per don't-care term. Each pass tries every pair of the
// newest level, appends the merged cubes as the next level and marks both
// parents absorbed.
//
// The search continues only while a pass produces more than one merge. A
// single merge leaves one cube at the next order, which has no partner.
func (f *Finder) Tabulate(required, dontCares []types.Term) (Levels, error) {
	return f.TabulateContext(context.Background(), required, dontCares)
}

// TabulateContext is Tabulate with cancellation. ctx is checked once per cube
// of the level being merged.
func (f *Finder) TabulateContext(ctx context.Context, required, dontCares []types.Term) (Levels, error) {
	if len(required) == 0 {
		return nil, ErrNoRequiredTerms
	}

	group := make([]cube.Cube, 0, len(required)+len(dontCares))
	for _, t := range required {
		group = append(group, cube.FromTerm(t, false))
	}
	for _, t := range dontCares {
		group = append(group, cube.FromTerm(t, true))
	}
	if err := f.checkSize(0, len(group)); err != nil {
		return nil, err
	}

	levels := Levels{group}
	for {
		prev := levels[len(levels)-1]
		current := make([]cube.Cube, 0, len(prev)/4)

		merges := 0
		for i := 0; i < len(prev)-1; i++ {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("tabulating order %d: %w", len(levels), err)
			}
			for j := i + 1; j < len(prev); j++ {
				merged, ok := prev[i].Merge(prev[j])
				if !ok {
					continue
				}
				current = append(current, merged)
				prev[i].MarkAbsorbed()
				prev[j].MarkAbsorbed()
				merges++
			}
			if err := f.checkSize(len(levels), len(current)); err != nil {
				return nil, err
			}
		}

		levels = append(levels, current)
		f.logger.Debug("tabulated order",
			zap.Int("order", len(levels)-1),
			zap.Int("cubes", len(current)),
			zap.Int("merges", merges))

		if merges <= 1 {
			break
		}
	}

	return levels, nil
}
