// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"market-equilibrium/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Solver contains numerical solver settings
	Solver SolverConfig `json:"solver"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// SolverConfig contains settings for the fitter and root finder
type SolverConfig struct {
	// Tolerance is the convergence tolerance for fitting and root finding
	Tolerance float64 `json:"tolerance"`

	// MaxIterations bounds both the fit and the root search
	MaxIterations int `json:"max_iterations"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// ChartPath is where the chart image is written; empty disables the chart
	ChartPath string `json:"chart_path"`

	// ChartWidthInches and ChartHeightInches size the rendered chart
	ChartWidthInches  float64 `json:"chart_width_inches"`
	ChartHeightInches float64 `json:"chart_height_inches"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Solver: SolverConfig{
			Tolerance:     1e-10,
			MaxIterations: 500,
		},
		Output: OutputConfig{
			DefaultFormat:     "cli",
			ChartPath:         "market.png",
			ChartWidthInches:  10,
			ChartHeightInches: 6,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
