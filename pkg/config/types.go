package config

import (
	"github.com/spf13/viper"

	"github.com/fluencelabs/perfmeter/pkg/db"
	"github.com/fluencelabs/perfmeter/pkg/manifest"
)

// BenchmarkConfig describes one benchmark command to run.
type BenchmarkConfig struct {
	// Human readable benchmark name, used as the stats key.
	Name string

	// Command and its arguments, executed from the working directory.
	Command string
	Args    []string

	// Number of repetitions aggregated into one stats entry.
	Runs int
}

// MeterConfig represents the configuration structure for
// performance metering.
type MeterConfig struct {
	// ResultPath is the benchmark history file.
	ResultPath string

	// ManifestPath points at the project manifest the version
	// is resolved from.
	ManifestPath string

	// HostID overrides the derived machine identity.
	HostID string

	// Benchmarks to run on `perfmeter run`.
	Benchmarks []BenchmarkConfig
}

func NewMeterConfig(v *viper.Viper) (*MeterConfig, error) {
	var cfg MeterConfig

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.ResultPath == "" {
		cfg.ResultPath = db.DefaultPath
	}

	if cfg.ManifestPath == "" {
		cfg.ManifestPath = manifest.DefaultPath
	}

	for i := range cfg.Benchmarks {
		if cfg.Benchmarks[i].Runs == 0 {
			cfg.Benchmarks[i].Runs = 1
		}
	}

	return &cfg, nil
}
