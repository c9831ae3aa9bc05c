package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// RunConfig describes one CSV-to-CSV allocation run for the one-shot
// command: where the roster sheets live, where the route sheet goes,
// and how long the run may wait for the lock.
type RunConfig struct {
	DriversCSV    string `yaml:"drivers_csv"`
	DeliveriesCSV string `yaml:"deliveries_csv"`
	RoutesCSV     string `yaml:"routes_csv"`
	LockWaitMS    int    `yaml:"lock_wait_ms"`
}

// LoadRunConfig reads and validates a YAML run config, applying
// defaults for anything omitted.
func LoadRunConfig(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("run config: read %q: %w", path, err)
	}

	cfg := RunConfig{
		DriversCSV:    "data/seeds/drivers.csv",
		DeliveriesCSV: "data/seeds/deliveries.csv",
		RoutesCSV:     "routes.csv",
		LockWaitMS:    2000,
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("run config: parse %q: %w", path, err)
	}

	cfg.DriversCSV = strings.TrimSpace(cfg.DriversCSV)
	cfg.DeliveriesCSV = strings.TrimSpace(cfg.DeliveriesCSV)
	cfg.RoutesCSV = strings.TrimSpace(cfg.RoutesCSV)

	if cfg.DriversCSV == "" {
		return RunConfig{}, fmt.Errorf("run config: %q: drivers_csv must not be empty", path)
	}
	if cfg.DeliveriesCSV == "" {
		return RunConfig{}, fmt.Errorf("run config: %q: deliveries_csv must not be empty", path)
	}
	if cfg.RoutesCSV == "" {
		return RunConfig{}, fmt.Errorf("run config: %q: routes_csv must not be empty", path)
	}
	if cfg.LockWaitMS < 0 {
		return RunConfig{}, fmt.Errorf("run config: %q: lock_wait_ms must not be negative", path)
	}

	return cfg, nil
}
