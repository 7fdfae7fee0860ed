package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/minlog/formatter"
	"github.com/gnoswap-labs/minlog/minimize"
)

var (
	minimizeJsonOutput bool
	outPath            string
	coverStrategy      string
	verifyCover        bool
	variableNames      string
)

var minimizeCmd = &cobra.Command{
	Use:   "minimize [equations...]",
	Short: "Minimize boolean equations such as \"F = m(1,3,5) + d(7)\"",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide at least one equation")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine := newEngine(flagOverrides(cmd))

		if verbose {
			printParsedListings(os.Stdout, engine, args)
		}

		failed := runMinimize(ctx, logger, engine, args, minimizeJsonOutput, outPath)
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	minimizeCmd.Flags().BoolVar(&minimizeJsonOutput, "json", false, "Output results in JSON format")
	minimizeCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
	minimizeCmd.Flags().StringVar(&coverStrategy, "cover", "", "Cover strategy: exact or greedy")
	minimizeCmd.Flags().BoolVar(&verifyCover, "verify", true, "Check the reduced equation against the input")
	minimizeCmd.Flags().StringVar(&variableNames, "names", "", "Comma-separated variable names, most significant first")
}

// flagOverrides applies the flags the user set on top of the configuration
// file.
func flagOverrides(cmd *cobra.Command) func(*minimize.Config) {
	return func(config *minimize.Config) {
		if cmd.Flags().Changed("cover") {
			config.Cover = coverStrategy
		}
		if cmd.Flags().Changed("verify") {
			config.Verify = verifyCover
		}
		if cmd.Flags().Changed("names") {
			config.Variables = splitNames(variableNames)
		}
	}
}

func splitNames(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		names = append(names, strings.TrimSpace(name))
	}
	return names
}

func printParsedListings(w io.Writer, engine *minimize.Engine, equations []string) {
	for _, text := range equations {
		eq, err := engine.Parse(text)
		if err != nil {
			continue
		}
		fmt.Fprint(w, formatter.GenerateParsedListing(eq))
	}
}

// runMinimize minimizes every equation and prints the results. It reports
// whether any equation failed.
func runMinimize(ctx context.Context, logger *zap.Logger, engine minimize.Minimizer, equations []string, isJson bool, jsonOutput string) bool {
	results, err := minimize.ProcessEquations(ctx, logger, engine, equations)
	if err != nil {
		logger.Error("Error processing equations", zap.Error(err))
		return true
	}

	printResults(logger, results, isJson, jsonOutput)
	return anyFailed(results)
}

func anyFailed(results []*minimize.Result) bool {
	for _, result := range results {
		if result.Failed() {
			return true
		}
	}
	return false
}

func printResults(logger *zap.Logger, results []*minimize.Result, isJson bool, jsonOutput string) {
	if !isJson {
		// text output
		fmt.Print(formatter.GenerateFormattedResult(results, verbose))
		for _, result := range results {
			if result.Failed() {
				fmt.Fprintf(os.Stderr, "minlog: %s: %s\n", result.Source, result.Error)
			}
		}
		return
	}

	// JSON output
	d, err := formatter.GenerateJSON(results)
	if err != nil {
		logger.Error("Error marshalling results to JSON", zap.Error(err))
		return
	}
	if err := writeOutput(jsonOutput, d); err != nil {
		logger.Error("Error writing JSON output", zap.String("path", jsonOutput), zap.Error(err))
	}
}
