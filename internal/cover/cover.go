// Package cover selects a subset of prime implicants covering every required
// term of a function.
//
// Essential prime implicants, the only implicants covering some required term,
// are always selected. The terms they leave uncovered are covered either with
// the fewest possible implicants (StrategyExact, solved as a cardinality
// constrained SAT problem) or by repeatedly taking the implicant covering the
// most uncovered terms (StrategyGreedy).
package cover

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	"github.com/samber/lo"

	"github.com/gnoswap-labs/minlog/internal/cube"
	"github.com/gnoswap-labs/minlog/internal/types"
)

var (
	ErrUncovered       = errors.New("required term is not covered by any prime implicant")
	ErrUnknownStrategy = errors.New("unknown cover strategy")
)

// Strategy selects how terms left uncovered by the essentials are covered.
type Strategy string

const (
	StrategyExact  Strategy = "exact"
	StrategyGreedy Strategy = "greedy"
)

// ParseStrategy converts a configuration value into a Strategy. The empty
// string selects StrategyExact.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyExact:
		return StrategyExact, nil
	case StrategyGreedy:
		return StrategyGreedy, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Cover is the result of a selection.
type Cover struct {
	// Candidates are the distinct prime implicants covering at least one
	// required term.
	Candidates []cube.Cube
	Essential  []cube.Cube
	// Selected holds the essentials and the implicants chosen for the
	// remaining terms, in candidate order.
	Selected []cube.Cube
}

// problem is the covering relation between candidates and distinct required
// terms, both referred to by index.
type problem struct {
	candidates []cube.Cube
	terms      []types.Term
	coverers   [][]int // term index -> candidate indices
	covers     [][]int // candidate index -> term indices
}

func newProblem(primes []cube.Cube, required []types.Term) (*problem, error) {
	terms := lo.Uniq(required)
	candidates := lo.Filter(cube.Dedup(primes), func(c cube.Cube, _ int) bool {
		return lo.SomeBy(terms, c.Covers)
	})

	p := &problem{
		candidates: candidates,
		terms:      terms,
		coverers:   make([][]int, len(terms)),
		covers:     make([][]int, len(candidates)),
	}
	for ti, t := range terms {
		for ci, c := range candidates {
			if c.Covers(t) {
				p.coverers[ti] = append(p.coverers[ti], ci)
				p.covers[ci] = append(p.covers[ci], ti)
			}
		}
		if len(p.coverers[ti]) == 0 {
			return nil, fmt.Errorf("%w: %d", ErrUncovered, t)
		}
	}
	return p, nil
}

// solvePoll is how often a running SAT search is checked for cancellation.
const solvePoll = 250 * time.Microsecond

// Select picks the essential prime implicants and covers the rest of the
// required terms with the given strategy. Cubes built only from don't-care
// terms cover no required term and are never selected.
func Select(primes []cube.Cube, required []types.Term, strategy Strategy) (Cover, error) {
	return SelectContext(context.Background(), primes, required, strategy)
}

// SelectContext is Select with cancellation of the exact search.
func SelectContext(ctx context.Context, primes []cube.Cube, required []types.Term, strategy Strategy) (Cover, error) {
	p, err := newProblem(primes, required)
	if err != nil {
		return Cover{}, err
	}

	chosen := make([]bool, len(p.candidates))
	for _, cs := range p.coverers {
		if len(cs) == 1 {
			chosen[cs[0]] = true
		}
	}
	essential := append([]bool(nil), chosen...)

	remaining := p.uncovered(chosen)
	if len(remaining) > 0 {
		switch strategy {
		case StrategyExact:
			err = p.exact(ctx, remaining, chosen)
		case StrategyGreedy:
			p.greedy(remaining, chosen)
		default:
			err = fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
		}
		if err != nil {
			return Cover{}, err
		}
	}

	return Cover{
		Candidates: p.candidates,
		Essential:  pick(p.candidates, essential),
		Selected:   pick(p.candidates, chosen),
	}, nil
}

func pick(candidates []cube.Cube, mask []bool) []cube.Cube {
	return lo.Filter(candidates, func(_ cube.Cube, i int) bool {
		return mask[i]
	})
}

// uncovered returns the indices of the terms no chosen candidate covers.
func (p *problem) uncovered(chosen []bool) []int {
	var result []int
	for ti, cs := range p.coverers {
		if !lo.SomeBy(cs, func(ci int) bool { return chosen[ci] }) {
			result = append(result, ti)
		}
	}
	return result
}

// exact chooses the fewest candidates covering the remaining terms. Every
// remaining term becomes a clause over the candidates covering it, and a
// sorting network bounds the number of true candidate literals; the bound is
// raised until the problem is satisfiable.
func (p *problem) exact(ctx context.Context, remaining []int, chosen []bool) error {
	c := logic.NewC()
	lits := make(map[int]z.Lit)
	var vars []int
	for _, ti := range remaining {
		for _, ci := range p.coverers[ti] {
			if _, ok := lits[ci]; !ok {
				lits[ci] = c.Lit()
				vars = append(vars, ci)
			}
		}
	}

	ms := make([]z.Lit, len(vars))
	for i, ci := range vars {
		ms[i] = lits[ci]
	}
	card := c.CardSort(ms)

	g := gini.New()
	c.ToCnf(g)
	for _, ti := range remaining {
		for _, ci := range p.coverers[ti] {
			g.Add(lits[ci])
		}
		g.Add(z.LitNull)
	}

	for k := 1; k <= len(ms); k++ {
		g.Assume(card.Leq(k))
		r, err := solve(ctx, g)
		if err != nil {
			return err
		}
		if r != 1 {
			continue
		}
		for i, ci := range vars {
			if g.Value(ms[i]) {
				chosen[ci] = true
			}
		}
		return nil
	}
	// unreachable: all candidates together cover every remaining term
	return fmt.Errorf("%w: no cover of %d terms", ErrUncovered, len(remaining))
}

// greedy repeatedly chooses the candidate covering the most remaining terms.
// Ties go to the higher order cube, then to the earlier candidate.
func (p *problem) greedy(remaining []int, chosen []bool) {
	open := make(map[int]bool, len(remaining))
	for _, ti := range remaining {
		open[ti] = true
	}

	for len(open) > 0 {
		best, bestGain := -1, 0
		for ci, c := range p.candidates {
			if chosen[ci] {
				continue
			}
			gain := lo.CountBy(p.covers[ci], func(ti int) bool { return open[ti] })
			if gain == 0 {
				continue
			}
			if gain > bestGain || (gain == bestGain && c.Order() > p.candidates[best].Order()) {
				best, bestGain = ci, gain
			}
		}

		chosen[best] = true
		for _, ti := range p.covers[best] {
			delete(open, ti)
		}
	}
}

// solve runs the search in the background and stops it when ctx is done.
func solve(ctx context.Context, g *gini.Gini) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("searching minimum cover: %w", err)
	}
	s := g.GoSolve()
	ticker := time.NewTicker(solvePoll)
	defer ticker.Stop()
	for {
		if r, done := s.Test(); done {
			return r, nil
		}
		select {
		case <-ctx.Done():
			s.Stop()
			return 0, fmt.Errorf("searching minimum cover: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}
