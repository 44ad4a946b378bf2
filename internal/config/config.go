// Package config loads and validates the runtime knobs for a training run.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config captures the runtime knobs for a training run.
//
// DataDir is optional: when empty the CLI falls back to a synthetic demo
// dataset instead of MNIST.
type Config struct {
	DataDir      string  `yaml:"data_dir"`
	HiddenSize   int     `yaml:"hidden_size"`
	LearningRate float64 `yaml:"learning_rate"`
	Iterations   int     `yaml:"iterations"`
	LogEvery     int     `yaml:"log_every"`
	Seed         int64   `yaml:"seed"`
}

// Overrides captures CLI supplied values.
type Overrides struct {
	DataDir      string
	HiddenSize   int
	LearningRate float64
	Iterations   int
	LogEvery     int
	Seed         int64
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		HiddenSize:   64,
		LearningRate: 0.5,
		Iterations:   1000,
		LogEvery:     100,
		Seed:         1,
	}
}

// Load reads and validates a Config from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: open: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates cfg using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.DataDir != "" {
		c.DataDir = o.DataDir
	}
	if o.HiddenSize > 0 {
		c.HiddenSize = o.HiddenSize
	}
	if o.LearningRate > 0 {
		c.LearningRate = o.LearningRate
	}
	if o.Iterations > 0 {
		c.Iterations = o.Iterations
	}
	if o.LogEvery > 0 {
		c.LogEvery = o.LogEvery
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
}

// Validate verifies the config describes a runnable training job.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config: nil config")
	}
	if c.HiddenSize <= 0 {
		return fmt.Errorf("config: hidden_size must be > 0 (got %d)", c.HiddenSize)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("config: learning_rate must be > 0 (got %v)", c.LearningRate)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("config: iterations must be >= 0 (got %d)", c.Iterations)
	}
	if c.LogEvery <= 0 {
		c.LogEvery = 100
	}
	return nil
}
