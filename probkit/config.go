// Package probkit provides configuration types for probgen suites.
package probkit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFilename is the name of the project-level configuration file.
const ConfigFilename = "probgen.toml"

// Config represents the project-level probgen.toml configuration.
type Config struct {
	// DefaultSize is the problem size used when a problem entry does
	// not specify one. Zero means the built-in default of 10.
	DefaultSize int `toml:"default_size"`

	// OutputDir is the directory suite problems are written to.
	// Relative paths resolve against the config file's directory.
	OutputDir string `toml:"output_dir"`

	// Problems defines the problems generated by `probgen suite`.
	Problems []ProblemConfig `toml:"problems"`
}

// ProblemConfig defines a single problem in a suite.
type ProblemConfig struct {
	// Name is the problem name; the output file is <name>.pl.
	Name string `toml:"name"`

	// Tool is the generator tool name (e.g., "induction").
	// Empty defaults to "induction".
	Tool string `toml:"tool"`

	// Size is the problem size. Zero falls back to DefaultSize.
	Size int `toml:"size"`
}

// LoadConfig loads the probgen.toml configuration from the given directory.
// It searches for probgen.toml in the directory and its parents up to the root.
// A missing config file yields an empty Config, not an error.
func LoadConfig(dir string) (*Config, error) {
	configPath, err := FindConfig(dir)
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		return &Config{}, nil
	}
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	// Resolve relative output dir based on config file location
	configDir := filepath.Dir(path)
	if cfg.OutputDir != "" && !filepath.IsAbs(cfg.OutputDir) {
		cfg.OutputDir = filepath.Join(configDir, cfg.OutputDir)
	}

	return &cfg, nil
}

// FindConfig searches for probgen.toml starting from dir and going up to root.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		configPath := filepath.Join(dir, ConfigFilename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return "", nil
		}
		dir = parent
	}
}

// Size returns the effective size for a problem entry.
func (c *Config) Size(p ProblemConfig) int {
	if p.Size != 0 {
		return p.Size
	}
	if c.DefaultSize != 0 {
		return c.DefaultSize
	}
	return DefaultSize
}

// DefaultSize is the problem size used when neither the CLI nor the
// configuration specifies one.
const DefaultSize = 10
