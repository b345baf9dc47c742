package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for scanalign. Nil
// fields are unset so CLI flags and the other config layer can fill them.
type FileConfig struct {
	MinOverlap *int    `yaml:"min_overlap"`
	Threads    *int    `yaml:"threads"`
	Strict     *bool   `yaml:"strict"`
	NoCache    *bool   `yaml:"no_cache"`
	NoColor    *bool   `yaml:"no_color"`
	Format     *string `yaml:"format"`
	// Input is the default comma-separated list of files or globs.
	Input *string `yaml:"input,omitempty"`
}

// ErrNoConfig is returned when no config file exists at the searched
// locations.
var ErrNoConfig = errors.New("no config file")

// LocalNames are the repo-local config file names, in search order.
var LocalNames = []string{".scanalign.yml", ".scanalign.yaml", "scanalign.yml", "scanalign.yaml"}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadLocal searches for a config file in the given root.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range LocalNames {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, ErrNoConfig
}

// GlobalPath returns $XDG_CONFIG_HOME/scanalign/config.yml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func GlobalPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return "", ErrNoConfig
	}
	return filepath.Join(base, "scanalign", "config.yml"), nil
}

// LoadGlobal loads the per-user config file.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	p, err := GlobalPath()
	if err != nil {
		return cfg, err
	}
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, ErrNoConfig
}

// Validate rejects values no command could use.
func (fc FileConfig) Validate() error {
	if fc.MinOverlap != nil && *fc.MinOverlap < 1 {
		return fmt.Errorf("min_overlap must be at least 1, got %d", *fc.MinOverlap)
	}
	if fc.Threads != nil && *fc.Threads < 0 {
		return fmt.Errorf("threads must not be negative, got %d", *fc.Threads)
	}
	if fc.Format != nil {
		switch *fc.Format {
		case "", "table", "json":
		default:
			return fmt.Errorf("unknown format %q (want table or json)", *fc.Format)
		}
	}
	return nil
}

// Template is the starter file written by `scanalign config init`.
const Template = `# scanalign configuration
# Values here are overridden by command-line flags.

# Minimum number of shared beacons for two scans to be registered.
min_overlap: 12

# Worker goroutines used to try candidate scans (0 = GOMAXPROCS).
threads: 0

# Exit non-zero when some scans cannot be registered.
strict: false

no_cache: false
no_color: false

# table or json
format: table

# Default input files or globs, comma separated.
# input: "scans/**/*.txt"
`
