package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeterConfigDefaults(t *testing.T) {
	cfg, err := NewMeterConfig(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "benches/PERFORMANCE.json", cfg.ResultPath)
	assert.Equal(t, "air/Cargo.toml", cfg.ManifestPath)
	assert.Empty(t, cfg.HostID)
	assert.Empty(t, cfg.Benchmarks)
}

func TestNewMeterConfigFromViper(t *testing.T) {
	v := viper.New()
	v.Set("resultpath", "out/results.json")
	v.Set("benchmarks", []map[string]interface{}{
		{"name": "parse", "command": "cargo", "args": []string{"bench", "parse"}},
		{"name": "execute", "command": "cargo", "runs": 5},
	})

	cfg, err := NewMeterConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "out/results.json", cfg.ResultPath)
	require.Len(t, cfg.Benchmarks, 2)

	// Unset run counts default to a single run.
	assert.Equal(t, 1, cfg.Benchmarks[0].Runs)
	assert.Equal(t, 5, cfg.Benchmarks[1].Runs)
}

func TestValidateMeterConfig(t *testing.T) {
	assert.Error(t, ValidateMeterConfig(nil))

	assert.Error(t, ValidateMeterConfig(&MeterConfig{}))

	assert.Error(t, ValidateMeterConfig(&MeterConfig{
		Benchmarks: []BenchmarkConfig{{Command: "cargo", Runs: 1}},
	}))

	assert.Error(t, ValidateMeterConfig(&MeterConfig{
		Benchmarks: []BenchmarkConfig{{Name: "parse", Runs: 1}},
	}))

	assert.Error(t, ValidateMeterConfig(&MeterConfig{
		Benchmarks: []BenchmarkConfig{{Name: "parse", Command: "cargo", Runs: 0}},
	}))

	assert.NoError(t, ValidateMeterConfig(&MeterConfig{
		Benchmarks: []BenchmarkConfig{{Name: "parse", Command: "cargo", Runs: 1}},
	}))
}
