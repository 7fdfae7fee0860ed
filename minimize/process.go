package minimize

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gnoswap-labs/minlog/scanner"
)

const commentPrefix = "#"

type Minimizer interface {
	RunContext(ctx context.Context, text string) (*Result, error)
}

// Processor minimizes the equations of one file.
type Processor func(ctx context.Context, engine Minimizer, filePath string) ([]*Result, error)

// maxLineSize is the longest equation line ProcessFile accepts.
const maxLineSize = 16 << 20

// ProcessEquations minimizes each equation text in order. A failing equation
// is reported in its Result and does not stop the others. Once ctx is done
// the results so far are returned with ctx's error.
func ProcessEquations(
	ctx context.Context,
	logger *zap.Logger,
	engine Minimizer,
	equations []string,
) ([]*Result, error) {
	results := make([]*Result, 0, len(equations))
	for i, text := range equations {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, run(ctx, logger, engine, fmt.Sprintf("arg:%d", i+1), text))
	}
	return results, ctx.Err()
}

func run(ctx context.Context, logger *zap.Logger, engine Minimizer, source, text string) *Result {
	result, err := engine.RunContext(ctx, text)
	if err != nil {
		if logger != nil {
			logger.Debug("Error minimizing equation", zap.String("source", source), zap.Error(err))
		}
		return &Result{Source: source, Canonical: text, Error: err.Error()}
	}
	result.Source = source
	return result
}

// ProcessFile minimizes every equation in the file at filePath, one per line.
// Blank lines and lines starting with '#' are skipped. Lines may be up to
// maxLineSize bytes long.
func ProcessFile(ctx context.Context, engine Minimizer, filePath string) ([]*Result, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var results []*Result
	s := bufio.NewScanner(f)
	s.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for line := 1; s.Scan(); line++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		results = append(results, run(ctx, nil, engine, fmt.Sprintf("%s:%d", filePath, line), text))
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filePath, err)
	}
	return results, nil
}

func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine Minimizer,
	paths []string,
	processor Processor,
) ([]*Result, error) {
	var allResults []*Result
	for _, path := range paths {
		results, err := ProcessPath(ctx, logger, engine, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		allResults = append(allResults, results...)
	}

	return allResults, nil
}

// ProcessPath processes a single file, or every equation file below a
// directory with a bounded number of workers. Results keep the file order.
// Files that cannot be read are logged and skipped.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine Minimizer,
	path string,
	processor Processor,
) ([]*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		return processor(ctx, engine, path)
	}

	files, err := scanner.New(path).Scan()
	if err != nil {
		return nil, fmt.Errorf("error scanning %s: %w", path, err)
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	perFile := make([][]*Result, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, file := range files {
		i, fp := i, file.Path
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fileResults, err := processor(gctx, engine, fp)
			if err != nil {
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
				}
			} else {
				perFile[i] = fileResults
			}
			_ = bar.Add(1)
			return nil
		})
	}

	waitErr := g.Wait()
	_ = bar.Finish()

	results := []*Result{}
	for _, fileResults := range perFile {
		results = append(results, fileResults...)
	}
	if waitErr != nil {
		return results, waitErr
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}
