package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "treescan.yaml")

	configContent := `symlinks: skip
workers: 4
indent: 6
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Symlinks != "skip" {
		t.Errorf("Expected symlinks %q, got %q", "skip", cfg.Symlinks)
	}
	if cfg.Workers != 4 {
		t.Errorf("Expected workers 4, got %d", cfg.Workers)
	}
	if cfg.Indent != 6 {
		t.Errorf("Expected indent 6, got %d", cfg.Indent)
	}
}

func TestLoadConfig_NonExistentFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/treescan.yaml")
	if err != nil {
		t.Fatalf("LoadConfig should return default config for nonexistent file, got error: %v", err)
	}

	if cfg.Symlinks != "reject" {
		t.Errorf("Expected default symlinks policy %q, got %q", "reject", cfg.Symlinks)
	}
	if cfg.Workers != 0 {
		t.Errorf("Expected default workers 0, got %d", cfg.Workers)
	}
	if cfg.Indent != 2 {
		t.Errorf("Expected default indent 2, got %d", cfg.Indent)
	}
}

func TestLoadConfig_PartialConfigKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "treescan.yaml")

	if err := os.WriteFile(configPath, []byte("workers: 8\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Workers != 8 {
		t.Errorf("Expected workers 8, got %d", cfg.Workers)
	}
	if cfg.Symlinks != "reject" {
		t.Errorf("Unset keys should keep defaults, got symlinks %q", cfg.Symlinks)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `symlinks: [unbalanced
workers: "not a number
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("LoadConfig should return error for invalid YAML")
	}
}

func TestLoadConfig_InvalidSymlinkPolicy(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "treescan.yaml")

	if err := os.WriteFile(configPath, []byte("symlinks: follow\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("LoadConfig should reject an unknown symlinks policy")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Symlinks != "reject" {
		t.Errorf("Default symlinks policy should be %q, got %q", "reject", cfg.Symlinks)
	}
	if cfg.Indent != 2 {
		t.Errorf("Default indent should be 2, got %d", cfg.Indent)
	}
}
