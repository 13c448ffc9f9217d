package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config file names searched during discovery, in preference order.
var discoveryNames = []string{"artifactor.yml", "artifactor.yaml"}

// Discover walks from startDir up through its ancestors looking for a config
// file. The .yml extension is preferred when both exist in the same
// directory. Returns an empty string when nothing is found (not an error).
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory: %w", err)
	}

	for {
		for _, name := range discoveryNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Load resolves the effective configuration. When path is empty, the config
// file is discovered from the current directory; a missing discovered file is
// fine and yields the defaults. An explicitly named file that does not exist
// is an error. File values are merged field by field over the defaults, and
// the result is validated before being returned.
func Load(path string) (Config, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("failed to get working directory: %w", err)
		}
		discovered, err := Discover(cwd)
		if err != nil {
			return Config{}, err
		}
		if discovered == "" {
			return Default(), nil
		}
		path = discovered
	} else if _, err := os.Stat(path); err != nil {
		return Config{}, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse merges YAML config data over the defaults and validates the result.
// Fields absent from the document keep their default values, which gives the
// field-by-field merge semantics rather than whole-section replacement.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid YAML in config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ToYAML renders the configuration in deterministic key order. The order
// follows the struct field order, so repeated calls are byte-identical.
func (c Config) ToYAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to render config: %w", err)
	}
	return string(data), nil
}
