// Package config handles the optional soroscan-cli configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top level structure of a soroscan-cli configuration file.
// Every field can be overridden by the corresponding command line flag.
type Config struct {
	// Endpoint is the SoroScan API base URL.
	Endpoint string `yaml:"Endpoint"`
	// APIKey is the bearer credential used for authenticated calls.
	APIKey string `yaml:"APIKey"`
	// Timeout bounds every API request.
	Timeout time.Duration `yaml:"Timeout"`
}

// Load reads and parses a configuration file from the given path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unable to parse config: %w", err)
	}
	return cfg, nil
}
