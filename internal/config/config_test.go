package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
data_dir: /data/mnist
hidden_size: 32
learning_rate: 0.1
iterations: 500
log_every: 50
seed: 9
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/mnist", cfg.DataDir)
	assert.Equal(t, 32, cfg.HiddenSize)
	assert.Equal(t, 0.1, cfg.LearningRate)
	assert.Equal(t, 500, cfg.Iterations)
	assert.Equal(t, 50, cfg.LogEvery)
	assert.Equal(t, int64(9), cfg.Seed)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "hidden_size: 16\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.HiddenSize)
	assert.Equal(t, Default().LearningRate, cfg.LearningRate)
	assert.Equal(t, Default().Iterations, cfg.Iterations)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, "hidden_size: -3\n")
	_, err := Load(path)
	assert.Error(t, err)

	path = writeConfig(t, "learning_rate: 0\n")
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "hidden_size: [not an int\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	cfg.ApplyOverrides(Overrides{
		DataDir:      "/tmp/mnist",
		HiddenSize:   8,
		LearningRate: 0.25,
		Seed:         42,
	})

	assert.Equal(t, "/tmp/mnist", cfg.DataDir)
	assert.Equal(t, 8, cfg.HiddenSize)
	assert.Equal(t, 0.25, cfg.LearningRate)
	assert.Equal(t, int64(42), cfg.Seed)
	// Untouched knobs keep their defaults.
	assert.Equal(t, Default().Iterations, cfg.Iterations)
}

func TestValidate_ZeroIterationsAllowed(t *testing.T) {
	cfg := Default()
	cfg.Iterations = 0
	assert.NoError(t, cfg.Validate())
}
