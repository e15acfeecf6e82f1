// Package config loads the salesman CLI settings from a YAML/TOML/JSON file
// and the environment. Environment variables override file values; flags are
// applied by the caller on top.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/katalvlaran/salesman/tsp"
)

// ErrInvalid indicates a loaded value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Environments.
const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Config is the CLI configuration.
type Config struct {
	Env     string `yaml:"env" toml:"env" json:"env" env:"SALESMAN_ENV" env-default:"local"`
	DataDir string `yaml:"data_dir" toml:"data_dir" json:"data_dir" env:"SALESMAN_DATA_DIR" env-default:"data"`

	Algorithm     string        `yaml:"algorithm" toml:"algorithm" json:"algorithm" env:"SALESMAN_ALGORITHM" env-default:"branch-and-bound"`
	TimeLimit     time.Duration `yaml:"time_limit" toml:"time_limit" json:"time_limit" env:"SALESMAN_TIME_LIMIT" env-default:"30s"`
	Seed          int64         `yaml:"seed" toml:"seed" json:"seed" env:"SALESMAN_SEED" env-default:"0"`
	MaxIterations int           `yaml:"max_iterations" toml:"max_iterations" json:"max_iterations" env:"SALESMAN_MAX_ITERATIONS" env-default:"0"`

	Log Log `yaml:"log" toml:"log" json:"log"`
}

// Log configures the CLI logger. An empty File logs to stderr.
type Log struct {
	File       string `yaml:"file" toml:"file" json:"file" env:"SALESMAN_LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" env:"SALESMAN_LOG_MAX_SIZE" env-default:"100"`
	MaxAgeDays int    `yaml:"max_age_days" toml:"max_age_days" json:"max_age_days" env:"SALESMAN_LOG_MAX_AGE" env-default:"7"`
	Level      string `yaml:"level" toml:"level" json:"level" env:"SALESMAN_LOG_LEVEL" env-default:"info"`
}

// Default returns the built-in settings, ignoring files and environment.
func Default() Config {
	return Config{
		Env:       EnvLocal,
		DataDir:   "data",
		Algorithm: tsp.AlgoBranchAndBound.String(),
		TimeLimit: tsp.DefaultTimeLimit,
		Log:       Log{MaxSizeMB: 100, MaxAgeDays: 7, Level: "info"},
	}
}

// Load reads path (when non-empty) and the environment, then validates.
func Load(path string) (Config, error) {
	var cfg Config
	var err error
	if path == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(path, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// MustLoad is Load that panics on error.
func MustLoad(path string) Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Validate checks every field against its domain.
func (c Config) Validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("%w: env %q", ErrInvalid, c.Env)
	}
	if _, err := tsp.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.TimeLimit < 0 {
		return fmt.Errorf("%w: time_limit %v", ErrInvalid, c.TimeLimit)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("%w: max_iterations %d", ErrInvalid, c.MaxIterations)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}

	return nil
}

// SolverOptions converts the solver fields into tsp.Options.
func (c Config) SolverOptions() tsp.Options {
	return tsp.NewOptions(
		tsp.WithTimeLimit(c.TimeLimit),
		tsp.WithSeed(c.Seed),
		tsp.WithMaxIterations(c.MaxIterations),
	)
}

// SolverAlgorithm parses Algorithm; Validate guarantees it succeeds.
func (c Config) SolverAlgorithm() tsp.Algorithm {
	a, _ := tsp.ParseAlgorithm(c.Algorithm)

	return a
}
