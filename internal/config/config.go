// Package config loads seedmap settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pborges/seedmap/internal/solve"
)

// Config is the on-disk configuration.
//
//	format: json
//	verbose: true
//	strict: true
//	verify:
//	  enabled: true
//	  workers: 8
//	  batch_size: 100000
//	  max_seeds: 5000000
type Config struct {
	Format  string `yaml:"format"`
	Verbose bool   `yaml:"verbose"`
	Strict  bool   `yaml:"strict"`
	Verify  Verify `yaml:"verify"`
}

// Verify configures the brute force cross-check.
type Verify struct {
	Enabled   bool  `yaml:"enabled"`
	Workers   int   `yaml:"workers"`
	BatchSize int64 `yaml:"batch_size"`
	MaxSeeds  int64 `yaml:"max_seeds"`
}

// Options converts the verify settings for the solver.
func (v Verify) Options() solve.Options {
	return solve.Options{
		Workers:   v.Workers,
		BatchSize: v.BatchSize,
		MaxSeeds:  v.MaxSeeds,
	}
}

// Formats lists the accepted output formats.
var Formats = []string{"text", "json"}

// Default returns the built-in settings.
func Default() Config {
	opts := solve.DefaultOptions()
	return Config{
		Format: "text",
		Verify: Verify{
			Workers:   opts.Workers,
			BatchSize: opts.BatchSize,
			MaxSeeds:  opts.MaxSeeds,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the settings.
func Validate(cfg Config) error {
	if !validFormat(cfg.Format) {
		return fmt.Errorf("config: invalid format %q: must be one of %v", cfg.Format, Formats)
	}
	if cfg.Verify.Workers < 1 {
		return errors.New("config: verify.workers must be >= 1")
	}
	if cfg.Verify.BatchSize < 1 {
		return errors.New("config: verify.batch_size must be >= 1")
	}
	if cfg.Verify.MaxSeeds < 0 {
		return errors.New("config: verify.max_seeds must be >= 0")
	}
	return nil
}

func validFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}
