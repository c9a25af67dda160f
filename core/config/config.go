// Package config loads environment-driven defaults for the CLI.
// Every value can be overridden by a flag.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the MDECK_* environment defaults.
type Config struct {
	// Index is the path to the page-reference index file.
	Index string `envconfig:"INDEX" default:"index.yaml"`
	// OutputDir is the base directory for relative output paths.
	OutputDir string `envconfig:"OUTPUT_DIR" default:"."`
}

// Load reads the environment.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("mdeck", &c); err != nil {
		return nil, fmt.Errorf("reading environment config: %w", err)
	}
	return &c, nil
}
