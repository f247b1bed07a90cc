package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DefaultInput != "mitre-mapping.xlsx" {
		t.Errorf("default input = %q", cfg.DefaultInput)
	}
	if cfg.Sheet != "Coverage" {
		t.Errorf("default sheet = %q", cfg.Sheet)
	}
	if cfg.Layer.Domain != "enterprise-attack" {
		t.Errorf("default domain = %q", cfg.Layer.Domain)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
default_input: coverage.xlsx
layer:
  name: SOC Coverage
  domain: enterprise-attack
palette:
  detection: "#00ff00"
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg.DefaultInput != "coverage.xlsx" {
		t.Errorf("default_input = %q", cfg.DefaultInput)
	}
	if cfg.Layer.Name != "SOC Coverage" {
		t.Errorf("layer name = %q", cfg.Layer.Name)
	}
	if cfg.Palette.Detection != "#00ff00" {
		t.Errorf("detection color = %q", cfg.Palette.Detection)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Sheet != "Coverage" {
		t.Errorf("sheet = %q, want default Coverage", cfg.Sheet)
	}
	if cfg.Palette.DataSource == "" {
		t.Error("data source color lost its default")
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestSaveConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	cfg.Layer.Name = "Blue Team"

	if err := SaveConfigFile(cfg, path); err != nil {
		t.Fatalf("SaveConfigFile: %v", err)
	}
	loaded, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if loaded.Layer.Name != "Blue Team" {
		t.Errorf("layer name = %q, want Blue Team", loaded.Layer.Name)
	}
}

func TestLoadOptionsSheetOverride(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.LoadOptions("").Sheet; got != "Coverage" {
		t.Errorf("sheet = %q, want Coverage", got)
	}
	if got := cfg.LoadOptions("Other").Sheet; got != "Other" {
		t.Errorf("sheet = %q, want Other", got)
	}
}
