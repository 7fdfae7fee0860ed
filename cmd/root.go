package cmd

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/minlog/minimize"
)

const (
	defaultConfigFile = ".minlog.yaml"
	defaultTimeout    = 5 * time.Minute
)

var (
	cfgFile string
	timeout time.Duration
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:              "minlog [equations...]",
	Short:            "minlog - a Quine-McCluskey boolean function minimizer",
	TraverseChildren: true, // Prioritize subcommands
	SilenceUsage:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = newLogger(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		// no subcommand
		if len(args) == 0 {
			// display help when only 'minlog' is entered
			_ = cmd.Help()
			return
		}
		// Format: minlog [eqn1 eqn2 ...] => behaves like the minimize subcommand
		minimizeCmd.Run(minimizeCmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", defaultConfigFile, "Configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Timeout for the whole run")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging and print the parsed terms")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(minimizeCmd)
	rootCmd.AddCommand(primesCmd)
	rootCmd.AddCommand(batchCmd)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.DisableStacktrace = true
	if verbose {
		config = zap.NewDevelopmentConfig()
	}
	return config.Build()
}

// loadConfig reads the configuration file. The default file is optional.
func loadConfig() (minimize.Config, error) {
	config, err := minimize.LoadConfig(cfgFile)
	if errors.Is(err, fs.ErrNotExist) && cfgFile == defaultConfigFile {
		return minimize.DefaultConfig(), nil
	}
	return config, err
}

// newEngine builds the engine from the configuration file, applying overrides
// to it first.
func newEngine(overrides ...func(*minimize.Config)) *minimize.Engine {
	config, err := loadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.String("path", cfgFile), zap.Error(err))
	}
	for _, override := range overrides {
		override(&config)
	}

	engine, err := minimize.NewWithConfig(config, logger)
	if err != nil {
		logger.Fatal("Failed to initialize minimize engine", zap.Error(err))
	}
	return engine
}

func writeOutput(path string, d []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(append(d, '\n'))
		return err
	}
	return os.WriteFile(path, d, 0o644)
}
