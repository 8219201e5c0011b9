package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kittens.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[window]
scale = 1.5

[session]
seed = 42

[logging]
level = "debug"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Scale != 1.5 || cfg.Session.Seed != 42 || cfg.Logging.Level != "debug" {
		t.Fatalf("overrides not applied: %+v", *cfg)
	}
	// Untouched keys keep their defaults.
	if cfg.Window.Title != "Kitten Dodge" || cfg.Logging.Format != "console" || !cfg.Audio.Enabled {
		t.Fatalf("defaults lost: %+v", *cfg)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected an error for an explicit missing file")
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"bad toml":     "[window\nscale = 1",
		"zero scale":   "[window]\nscale = 0",
		"loud volume":  "[audio]\nvolume = 1.5",
		"bad format":   "[logging]\nformat = \"xml\"",
		"empty output": "[logging]\noutput = \"\"",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, body)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestShippedConfigLoads(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", DefaultPath))
	if err != nil {
		t.Fatalf("shipped config: %v", err)
	}
	if cfg.Session.Seed != 0 {
		t.Fatalf("shipped seed should be time based, got %d", cfg.Session.Seed)
	}
}

func TestNewLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kittens.log")
	log, err := NewLogger(LoggingConfig{Level: "debug", Format: "json", Output: path})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	log.Debug("player moved")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"msg":"player moved"`) {
		t.Fatalf("unexpected log output %q", data)
	}
}

func TestNewLogger_UnknownLevelFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kittens.log")
	log, err := NewLogger(LoggingConfig{Level: "chatty", Format: "console", Output: path})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	log.Debug("hidden")
	log.Info("shown")
	_ = log.Sync()
	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") || !strings.Contains(string(data), "shown") {
		t.Fatalf("unexpected log output %q", data)
	}
}
