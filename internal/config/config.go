// Package config loads and saves the meshtool YAML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmesh/weld"
)

// Config is the in-memory representation of ~/.lvmesh/meshtool.yaml.
type Config struct {
	// Tolerance is the weld distance; 0 means weld.DefaultTolerance.
	Tolerance float64 `yaml:"tolerance,omitempty"`
	// Physical restricts Gmsh reads to one physical group.
	Physical string `yaml:"physical,omitempty"`
	// DropJunctionPair drops one pair per junction in `pairs`.
	DropJunctionPair bool `yaml:"drop_junction_pair,omitempty"`
	// QuadratureDegree is the rule degree used for areas and integrals.
	QuadratureDegree int `yaml:"quadrature_degree,omitempty"`
	// Verbose enables progress logging.
	Verbose bool `yaml:"verbose,omitempty"`
}

// Dir returns the absolute path to ~/.lvmesh/.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".lvmesh"), nil
}

// DefaultPath returns the absolute path to ~/.lvmesh/meshtool.yaml.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "meshtool.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Tolerance:        weld.DefaultTolerance,
		QuadratureDegree: 2,
	}
}

// Load reads path, or the default path when path is empty. A missing file
// at the default path yields Default(); a missing explicit path is an error.
// Zero fields fall back to their defaults.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	if cfg.Tolerance == 0 {
		cfg.Tolerance = weld.DefaultTolerance
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the libraries would panic on.
func (c *Config) Validate() error {
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance %v must be positive", c.Tolerance)
	}
	if c.QuadratureDegree < 0 || c.QuadratureDegree > 5 {
		return fmt.Errorf("quadrature_degree %d outside [0,5]", c.QuadratureDegree)
	}
	return nil
}

// Save marshals cfg and writes it to path, creating parent directories.
func Save(path string, cfg *Config) error {
	path, err := ExpandPath(path)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
