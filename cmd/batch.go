package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/minlog/minimize"
)

var (
	batchJsonOutput bool
	batchOutPath    string
)

var batchCmd = &cobra.Command{
	Use:   "batch [paths...]",
	Short: "Minimize every equation in files or directories",
	Long: `Reads equation files, one equation per line. Blank lines and lines starting
with '#' are skipped. Directories are searched for .eqn files.
Example) minlog batch ./circuits --json -o out.json`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine := newEngine(flagOverrides(cmd))
		if failed := runBatch(ctx, logger, engine, args, batchJsonOutput, batchOutPath); failed {
			os.Exit(1)
		}
	},
}

func init() {
	batchCmd.Flags().BoolVar(&batchJsonOutput, "json", false, "Output results in JSON format")
	batchCmd.Flags().StringVarP(&batchOutPath, "output", "o", "", "Output path (when using JSON)")
	batchCmd.Flags().StringVar(&coverStrategy, "cover", "", "Cover strategy: exact or greedy")
	batchCmd.Flags().BoolVar(&verifyCover, "verify", true, "Check each reduced equation against its input")
}

func runBatch(ctx context.Context, logger *zap.Logger, engine minimize.Minimizer, paths []string, isJson bool, jsonOutput string) bool {
	results, err := minimize.ProcessFiles(ctx, logger, engine, paths, minimize.ProcessFile)
	if err != nil {
		logger.Error("Error processing files", zap.Error(err))
		return true
	}

	printResults(logger, results, isJson, jsonOutput)
	return anyFailed(results)
}
