package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []int{784, 16, 16, 10}, cfg.Layers)
	assert.Equal(t, "sigmoid", cfg.Activation)
	assert.Equal(t, "mse", cfg.Loss)
	assert.Equal(t, 100, cfg.BatchSize)
	assert.Equal(t, 5.0, cfg.LearningRate)
}

func TestParse_OverlaysDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
layers: [2, 2, 1]
loss: softmax_ce
learning_rate: 0.5
seed: 7
`))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1}, cfg.Layers)
	assert.Equal(t, "softmax_ce", cfg.Loss)
	assert.Equal(t, 0.5, cfg.LearningRate)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 100, cfg.BatchSize, "unset keys keep defaults")
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse(strings.NewReader("num_workers: 4\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("epochs: 3\nbatch_size: 10\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Epochs)
	assert.Equal(t, 10, cfg.BatchSize)

	require.NoError(t, os.WriteFile(path, []byte("epochs: 0\n"), 0o600))
	_, err = Load(path)
	assert.ErrorContains(t, err, "epochs must be > 0")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	cfg.ApplyOverrides(Overrides{
		DataDir:      "/data",
		Synthetic:    true,
		BatchSize:    4,
		LearningRate: 0.1,
		Epochs:       9,
		Seed:         3,
		LogEvery:     2,
		TrainLimit:   50,
		TestLimit:    20,
	})
	assert.Equal(t, "/data", cfg.DataDir)
	assert.True(t, cfg.Synthetic)
	assert.Equal(t, 4, cfg.BatchSize)
	assert.Equal(t, 0.1, cfg.LearningRate)
	assert.Equal(t, 9, cfg.Epochs)
	assert.Equal(t, uint64(3), cfg.Seed)
	assert.Equal(t, 2, cfg.LogEvery)
	assert.Equal(t, 50, cfg.TrainLimit)
	assert.Equal(t, 20, cfg.TestLimit)

	before := *cfg
	cfg.ApplyOverrides(Overrides{})
	assert.Equal(t, before, *cfg)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"layers too short":  func(c *Config) { c.Layers = []int{3} },
		"non-positive size": func(c *Config) { c.Layers = []int{3, 0, 1} },
		"activation":        func(c *Config) { c.Activation = "swish" },
		"output activation": func(c *Config) { c.OutputActivation = "softplus" },
		"loss":              func(c *Config) { c.Loss = "hinge" },
		"batch size":        func(c *Config) { c.BatchSize = 0 },
		"learning rate":     func(c *Config) { c.LearningRate = -1 },
		"data dir":          func(c *Config) { c.DataDir = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())

	cfg := Default()
	cfg.LogEvery = 0
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0, cfg.LogEvery, "Validate must not modify the config")

	cfg.LogEvery = -1
	assert.Error(t, cfg.Validate())
}

func TestSyntheticDefaultIsValid(t *testing.T) {
	cfg := SyntheticDefault()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Synthetic)
	assert.Empty(t, cfg.DataDir)
}
