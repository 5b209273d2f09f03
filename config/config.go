// Package config holds the run configuration of the knapsack command:
// where results go, solver budgets, logging and metrics export.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knapsack/bnb"
)

// DefaultOutputPath is the result file written next to the console output.
const DefaultOutputPath = "knapsack_output.txt"

// Environment variables consulted by Load after the file is parsed.
const (
	EnvOutput    = "KNAPSACK_OUTPUT"
	EnvLogLevel  = "KNAPSACK_LOG_LEVEL"
	EnvTimeLimit = "KNAPSACK_TIME_LIMIT"
)

// ErrInvalid wraps every validation failure reported by Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full run configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Solver  SolverConfig  `yaml:"solver"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// OutputConfig configures the persisted result file.
type OutputConfig struct {
	Path string `yaml:"path" validate:"required"`
}

// SolverConfig configures search budgets. TimeLimit is a Go duration string
// ("250ms", "2m"); empty or "0" means unlimited.
type SolverConfig struct {
	TimeLimit string `yaml:"time_limit" validate:"omitempty,duration"`
	NodeLimit int    `yaml:"node_limit" validate:"gte=0"`
}

// LoggingConfig configures the zap logger built by the command.
type LoggingConfig struct {
	Level    string `yaml:"level" validate:"oneof=debug info warn error"`
	Encoding string `yaml:"encoding" validate:"oneof=json console"`
}

// MetricsConfig configures the optional Prometheus textfile export.
// An empty File disables the export.
type MetricsConfig struct {
	File string `yaml:"file"`
}

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// duration: a parseable, non-negative time.Duration string.
	_ = v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		d, err := time.ParseDuration(fl.Field().String())

		return err == nil && d >= 0
	})

	return v
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Path: DefaultOutputPath},
		Solver: SolverConfig{TimeLimit: "", NodeLimit: 0},
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "json",
		},
	}
}

// Load reads a YAML file on top of Default, then applies environment
// overrides. The result is not validated; call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.ApplyEnv()

	return cfg, nil
}

// ApplyEnv overrides fields from KNAPSACK_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output.Path = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvTimeLimit); v != "" {
		c.Solver.TimeLimit = v
	}
}

// Validate checks struct tags and returns an error wrapping ErrInvalid that
// names every offending field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// SolverOptions converts the solver section into bnb.Options.
func (c *Config) SolverOptions() (bnb.Options, error) {
	opts := bnb.DefaultOptions()
	opts.NodeLimit = c.Solver.NodeLimit
	if c.Solver.TimeLimit != "" {
		d, err := time.ParseDuration(c.Solver.TimeLimit)
		if err != nil {
			return bnb.Options{}, fmt.Errorf("%w: solver.time_limit: %v", ErrInvalid, err)
		}
		opts.TimeLimit = d
	}
	if err := bnb.ValidateOptions(opts); err != nil {
		return bnb.Options{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return opts, nil
}
