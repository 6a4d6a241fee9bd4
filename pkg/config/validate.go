package config

import (
	"errors"
	"fmt"
)

// ValidateMeterConfig validates the metering config.
func ValidateMeterConfig(cfg *MeterConfig) error {
	if cfg == nil {
		return errors.New("missing metering config")
	}

	if len(cfg.Benchmarks) == 0 {
		return errors.New("no benchmarks configured")
	}

	for _, b := range cfg.Benchmarks {
		if b.Name == "" {
			return fmt.Errorf("benchmark with command '%s' has no name", b.Command)
		}

		if b.Command == "" {
			return fmt.Errorf("benchmark '%s' has no command", b.Name)
		}

		if b.Runs < 1 {
			return fmt.Errorf("benchmark '%s' has invalid run count %d", b.Name, b.Runs)
		}
	}

	return nil
}
