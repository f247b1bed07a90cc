package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/user/mitrenav/pkg/mapping"
)

// Config holds everything the generator reads from its YAML config file:
// the default input path, the expected workbook layout, and the layer
// metadata and palette.
type Config struct {
	DefaultInput string          `yaml:"default_input"`
	Sheet        string          `yaml:"sheet"`
	Columns      mapping.Columns `yaml:"columns"`
	Layer        mapping.Meta    `yaml:"layer"`
	Palette      mapping.Palette `yaml:"palette"`
}

// DefaultConfig returns the built-in configuration used when no config
// file exists.
func DefaultConfig() *Config {
	return &Config{
		DefaultInput: "mitre-mapping.xlsx",
		Sheet:        "Coverage",
		Columns:      mapping.DefaultColumns(),
		Layer:        mapping.DefaultMeta(),
		Palette:      mapping.DefaultPalette(),
	}
}

func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(home, ".mitrenav")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// LoadConfig reads the config from the default location, falling back to
// built-in defaults when no file exists yet.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return LoadConfigFile(path)
}

// LoadConfigFile reads an explicit config file. Unlike LoadConfig, a
// missing file is an error. Fields left empty in the file keep their
// built-in defaults.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v", path, err)
	}
	return cfg, nil
}

// SaveConfig writes the config to the default location.
func SaveConfig(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	return SaveConfigFile(cfg, path)
}

// SaveConfigFile writes the config to an explicit path.
func SaveConfigFile(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadOptions builds the loader options from the configured workbook
// layout, with sheetOverride taking precedence when non-empty.
func (c *Config) LoadOptions(sheetOverride string) mapping.LoadOptions {
	sheet := c.Sheet
	if sheetOverride != "" {
		sheet = sheetOverride
	}
	return mapping.LoadOptions{Sheet: sheet, Columns: c.Columns}
}
