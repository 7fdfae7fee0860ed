// Package minimize runs the whole minimization pipeline on equation texts and
// equation files.
package minimize

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/gnoswap-labs/minlog/internal/bits"
	"github.com/gnoswap-labs/minlog/internal/cover"
	"github.com/gnoswap-labs/minlog/internal/cube"
	"github.com/gnoswap-labs/minlog/internal/parser"
	"github.com/gnoswap-labs/minlog/internal/primes"
	"github.com/gnoswap-labs/minlog/internal/printer"
	"github.com/gnoswap-labs/minlog/internal/types"
	"github.com/gnoswap-labs/minlog/internal/verify"
)

var (
	ErrTooManyVariables = errors.New("function has too many variables")
	ErrVariableCount    = errors.New("terms do not fit in the configured variable count")
)

// Result is the outcome of minimizing one equation.
type Result struct {
	Source          string         `json:"source,omitempty"`
	Equation        types.Equation `json:"-"`
	Canonical       string         `json:"equation"`
	Form            string         `json:"form"`
	VariableCount   int            `json:"variable_count"`
	PrimeImplicants []cube.Cube    `json:"-"`
	Essential       []cube.Cube    `json:"-"`
	Selected        []cube.Cube    `json:"-"`
	Expression      string         `json:"expression"`
	Verified        bool           `json:"verified"`
	// Error is set instead of the other fields when batch processing fails
	// for this equation.
	Error string `json:"error,omitempty"`
}

func (r *Result) Failed() bool { return r.Error != "" }

// Engine minimizes equations with a fixed configuration.
type Engine struct {
	config   Config
	strategy cover.Strategy
	logger   *zap.Logger
}

// New creates an engine from the configuration file at configurationPath.
func New(configurationPath string) (*Engine, error) {
	config, err := LoadConfig(configurationPath)
	if err != nil {
		return nil, fmt.Errorf("error loading configuration %s: %w", configurationPath, err)
	}
	return NewWithConfig(config, nil)
}

// NewWithConfig creates an engine from config. A nil logger disables logging.
func NewWithConfig(config Config, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	strategy, err := cover.ParseStrategy(config.Cover)
	if err != nil {
		return nil, err
	}
	if config.VariableCount < 0 || config.VariableCount > bits.WordSize {
		return nil, fmt.Errorf("%w: %d", ErrVariableCount, config.VariableCount)
	}
	return &Engine{
		config:   config,
		strategy: strategy,
		logger:   logger,
	}, nil
}

func (e *Engine) Config() Config { return e.config }

func (e *Engine) Logger() *zap.Logger { return e.logger }

// Parse parses text with the engine's logger.
func (e *Engine) Parse(text string) (types.Equation, error) {
	return parser.Parse(e.logger, text)
}

// VariableCount returns the width of the function: the configured count, or
// the bit length of the largest term with a minimum of one.
func (e *Engine) VariableCount(eq types.Equation) (int, error) {
	needed := bits.Len(eq.MaxTerm())
	if needed == 0 {
		needed = 1
	}

	count := needed
	if e.config.VariableCount > 0 {
		if e.config.VariableCount < needed {
			return 0, fmt.Errorf("%w: %d variables configured, %d needed", ErrVariableCount, e.config.VariableCount, needed)
		}
		count = e.config.VariableCount
	}

	if e.config.MaxVariables > 0 && count > e.config.MaxVariables {
		return 0, fmt.Errorf("%w: %d > %d", ErrTooManyVariables, count, e.config.MaxVariables)
	}
	return count, nil
}

// PrimeImplicants parses text and returns the distinct prime implicants of
// the function.
func (e *Engine) PrimeImplicants(text string) (types.Equation, []cube.Cube, error) {
	eq, err := e.Parse(text)
	if err != nil {
		return eq, nil, err
	}
	if _, err := e.VariableCount(eq); err != nil {
		return eq, nil, err
	}
	pis, err := e.finder().FindPrimeImplicants(eq.Terms, eq.DontCares)
	if err != nil {
		return eq, nil, err
	}
	return eq, cube.Dedup(pis), nil
}

func (e *Engine) finder() *primes.Finder {
	return primes.NewFinder(e.logger).WithMaxCubes(e.config.MaxCubes)
}

// Run minimizes the equation in text.
func (e *Engine) Run(text string) (*Result, error) {
	return e.RunContext(context.Background(), text)
}

// RunContext minimizes the equation in text and gives up with ctx's error
// once ctx is done, also in the middle of tabulation or cover search.
func (e *Engine) RunContext(ctx context.Context, text string) (*Result, error) {
	eq, err := e.Parse(text)
	if err != nil {
		return nil, err
	}
	return e.RunEquationContext(ctx, eq)
}

// RunEquation minimizes an already parsed equation.
func (e *Engine) RunEquation(eq types.Equation) (*Result, error) {
	return e.RunEquationContext(context.Background(), eq)
}

func (e *Engine) RunEquationContext(ctx context.Context, eq types.Equation) (*Result, error) {
	count, err := e.VariableCount(eq)
	if err != nil {
		return nil, err
	}

	levels, err := e.finder().TabulateContext(ctx, eq.Terms, eq.DontCares)
	if err != nil {
		return nil, err
	}
	pis := levels.PrimeImplicants()
	unique := cube.Dedup(pis)
	e.logger.Debug("found prime implicants",
		zap.Int("cubes", levels.Size()),
		zap.Int("total", len(pis)),
		zap.Int("distinct", len(unique)))

	selection, err := cover.SelectContext(ctx, unique, eq.Terms, e.strategy)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("selected cover",
		zap.String("strategy", string(e.strategy)),
		zap.Int("essential", len(selection.Essential)),
		zap.Int("selected", len(selection.Selected)))

	result := &Result{
		Equation:        eq,
		Canonical:       eq.String(),
		Form:            eq.Mode.Form().String(),
		VariableCount:   count,
		PrimeImplicants: unique,
		Essential:       selection.Essential,
		Selected:        selection.Selected,
		Expression:      printer.Render(selection.Selected, eq.Mode.Form(), count, e.config.Variables),
	}

	if e.config.Verify {
		if err := verify.Equivalent(selection.Selected, eq.Terms, eq.DontCares, count); err != nil {
			return nil, fmt.Errorf("verifying %s: %w", result.Expression, err)
		}
		result.Verified = true
	}

	return result, nil
}
