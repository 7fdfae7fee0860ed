package minimize

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigName   = "minlog"
	DefaultMaxVariables = 24
	DefaultMaxCubes     = 16384
)

// Config represents the minimizer configuration file.
type Config struct {
	Name string `yaml:"name"`
	// Variables renames the variables, most significant first.
	Variables []string `yaml:"variables,omitempty"`
	// VariableCount fixes the width of the function. Zero infers it from the
	// largest term.
	VariableCount int    `yaml:"variable_count,omitempty"`
	Cover         string `yaml:"cover"`
	Verify        bool   `yaml:"verify"`
	// MaxVariables rejects wider functions. Zero disables the limit.
	MaxVariables int `yaml:"max_variables"`
	// MaxCubes bounds every tabulation level. Zero disables the limit.
	MaxCubes int `yaml:"max_cubes"`
}

func DefaultConfig() Config {
	return Config{
		Name:         DefaultConfigName,
		Cover:        "exact",
		Verify:       true,
		MaxVariables: DefaultMaxVariables,
		MaxCubes:     DefaultMaxCubes,
	}
}

// LoadConfig reads the configuration file at path on top of the defaults. An
// empty path returns the defaults.
func LoadConfig(configurationPath string) (Config, error) {
	config := DefaultConfig()
	if configurationPath == "" {
		return config, nil
	}

	f, err := os.Open(configurationPath)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, err
	}

	return config, nil
}

// WriteConfig writes config as YAML to path.
func WriteConfig(configurationPath string, config Config) error {
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(configurationPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}
