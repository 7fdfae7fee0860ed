package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/minlog/formatter"
	"github.com/gnoswap-labs/minlog/minimize"
)

var primesCmd = &cobra.Command{
	Use:   "primes [equations...]",
	Short: "List the prime implicants of boolean equations",
	Long: `Lists every distinct prime implicant with the terms it covers, before any
cover is selected.
Example) minlog primes "F = m(4,8,10,11,12,15) + d(9,14)"`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide at least one equation")
			os.Exit(1)
		}
		engine := newEngine(flagOverrides(cmd))
		if err := runPrimes(os.Stdout, logger, engine, args); err != nil {
			os.Exit(1)
		}
	},
}

func init() {
	primesCmd.Flags().StringVar(&variableNames, "names", "", "Comma-separated variable names, most significant first")
}

func runPrimes(w io.Writer, logger *zap.Logger, engine *minimize.Engine, equations []string) error {
	var firstErr error
	for _, text := range equations {
		eq, pis, err := engine.PrimeImplicants(text)
		if err != nil {
			logger.Error("Failed to find prime implicants", zap.String("equation", text), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		count, err := engine.VariableCount(eq)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, eq.String())
		fmt.Fprint(w, formatter.GeneratePrimeImplicantTable(eq, pis, count, engine.Config().Variables))
	}
	return firstErr
}
