// Package config loads the training run configuration from YAML and CLI
// overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/mlp/internal/nn"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	DataDir          string  `yaml:"data_dir"`
	Synthetic        bool    `yaml:"synthetic"`
	Layers           []int   `yaml:"layers"`
	Activation       string  `yaml:"activation"`
	OutputActivation string  `yaml:"output_activation"`
	Loss             string  `yaml:"loss"`
	BatchSize        int     `yaml:"batch_size"`
	LearningRate     float64 `yaml:"learning_rate"`
	Epochs           int     `yaml:"epochs"`
	Seed             uint64  `yaml:"seed"`
	LogEvery         int     `yaml:"log_every"`
	TrainLimit       int     `yaml:"train_limit"`
	TestLimit        int     `yaml:"test_limit"`
}

// Overrides captures CLI supplied values. Zero values leave the config as is.
type Overrides struct {
	DataDir      string
	Synthetic    bool
	BatchSize    int
	LearningRate float64
	Epochs       int
	Seed         uint64
	LogEvery     int
	TrainLimit   int
	TestLimit    int
}

// Default returns the configuration of the reference MNIST run: a
// 784-16-16-10 sigmoid network trained with MSE, batch 100, learning rate 5.
func Default() *Config {
	return &Config{
		DataDir:      "./mnist",
		Layers:       []int{784, 16, 16, 10},
		Activation:   nn.Sigmoid.String(),
		Loss:         nn.MSE.String(),
		BatchSize:    100,
		LearningRate: 5,
		Epochs:       1,
		LogEvery:     1,
	}
}

// SyntheticDefault returns a configuration for the built-in XOR problem: a
// 2-4-1 sigmoid network trained with full-batch gradient descent.
func SyntheticDefault() *Config {
	return &Config{
		Synthetic:    true,
		Layers:       []int{2, 4, 1},
		Activation:   nn.Sigmoid.String(),
		Loss:         nn.MSE.String(),
		BatchSize:    4,
		LearningRate: 2,
		Epochs:       2000,
		LogEvery:     1,
	}
}

// Load reads and validates a Config from a YAML file. Keys absent from the
// file keep their Default values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes YAML from r on top of Default. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates cfg using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.DataDir != "" {
		c.DataDir = o.DataDir
	}
	if o.Synthetic {
		c.Synthetic = true
	}
	if o.BatchSize > 0 {
		c.BatchSize = o.BatchSize
	}
	if o.LearningRate > 0 {
		c.LearningRate = o.LearningRate
	}
	if o.Epochs > 0 {
		c.Epochs = o.Epochs
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.LogEvery > 0 {
		c.LogEvery = o.LogEvery
	}
	if o.TrainLimit > 0 {
		c.TrainLimit = o.TrainLimit
	}
	if o.TestLimit > 0 {
		c.TestLimit = o.TestLimit
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if len(c.Layers) < 2 {
		return fmt.Errorf("layers must list at least an input and an output width (got %v)", c.Layers)
	}
	for i, n := range c.Layers {
		if n <= 0 {
			return fmt.Errorf("layers[%d] must be > 0 (got %d)", i, n)
		}
	}
	if _, err := nn.ParseActivation(c.Activation); err != nil {
		return fmt.Errorf("activation: %w", err)
	}
	if c.OutputActivation != "" {
		if _, err := nn.ParseActivation(c.OutputActivation); err != nil {
			return fmt.Errorf("output_activation: %w", err)
		}
	}
	if _, err := nn.ParseLoss(c.Loss); err != nil {
		return fmt.Errorf("loss: %w", err)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", c.BatchSize)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("learning_rate must be > 0 (got %g)", c.LearningRate)
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be > 0 (got %d)", c.Epochs)
	}
	if !c.Synthetic && c.DataDir == "" {
		return errors.New("data_dir must be set unless synthetic is enabled")
	}
	if c.LogEvery < 0 {
		return fmt.Errorf("log_every must be >= 0 (got %d)", c.LogEvery)
	}
	return nil
}
