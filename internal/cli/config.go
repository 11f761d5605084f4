package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// config holds the optional TOML defaults for the label command.
// Flags set explicitly on the command line always win over config values.
//
// Example file:
//
//	connectivity = 8
//	threshold = 200
type config struct {
	Connectivity int `toml:"connectivity"`
	Threshold    int `toml:"threshold"`
}

// defaultConfig mirrors the built-in flag defaults: 4-connectivity and a
// threshold treating only pure white as background.
func defaultConfig() config {
	return config{
		Connectivity: 4,
		Threshold:    255,
	}
}

// loadConfig reads a TOML config from path on top of the built-in
// defaults. An empty path returns the defaults untouched.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Threshold < 0 || cfg.Threshold > 255 {
		return cfg, fmt.Errorf("config %s: threshold %d out of range 0..255", path, cfg.Threshold)
	}
	if cfg.Connectivity != 4 && cfg.Connectivity != 8 {
		return cfg, fmt.Errorf("config %s: connectivity %d must be 4 or 8", path, cfg.Connectivity)
	}

	return cfg, nil
}
