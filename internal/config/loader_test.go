package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte("tick_rate: 30\nsound: false\ndebug: true\nssh:\n  address: \":2222\"\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.TickRate)
	}
	if cfg.Sound {
		t.Error("Sound = true, expected false")
	}
	if !cfg.Debug {
		t.Error("Debug = false, expected true")
	}
	if cfg.SSH.Address != ":2222" {
		t.Errorf("SSH.Address = %q, expected \":2222\"", cfg.SSH.Address)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for an explicitly named missing file")
	}
}

func TestLoadCustomPathMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("tick_rate: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestEmbeddedDefaultParses(t *testing.T) {
	// The embedded YAML must agree with the hardcoded fallback on the
	// essentials.
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg.TickRate <= 0 {
		t.Errorf("TickRate = %d, expected a positive default", cfg.TickRate)
	}
	if cfg.DBPath == "" {
		t.Error("DBPath empty in defaults")
	}
	if cfg.SSH.Address == "" {
		t.Error("SSH.Address empty in defaults")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.TickRate != 60 || !cfg.Sound {
		t.Errorf("Default() = %+v", cfg)
	}
	if cfg.SSH.IdleTimeoutMinutes != 30 {
		t.Errorf("IdleTimeoutMinutes = %d, expected 30", cfg.SSH.IdleTimeoutMinutes)
	}
}
