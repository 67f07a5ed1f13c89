package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/snake/engine"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.GridSize != 20 {
		t.Errorf("Expected grid 20, got %d", cfg.GridSize)
	}
	if cfg.CellSize != 20 {
		t.Errorf("Expected cell 20, got %d", cfg.CellSize)
	}
	if cfg.CanvasPixels() != 400 {
		t.Errorf("Expected 400px canvas, got %d", cfg.CanvasPixels())
	}
	if cfg.Speed != engine.SpeedMedium {
		t.Errorf("Expected medium, got %s", cfg.Speed)
	}
	if !cfg.Audio {
		t.Error("Expected audio on by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
grid_size = 30
speed = "extreme"
audio = false
seed = 99
score_file = "/tmp/s.toml"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GridSize != 30 {
		t.Errorf("Expected grid 30, got %d", cfg.GridSize)
	}
	if cfg.Speed != engine.SpeedExtreme {
		t.Errorf("Expected extreme, got %s", cfg.Speed)
	}
	if cfg.Audio {
		t.Error("Expected audio off")
	}
	if cfg.Seed != 99 {
		t.Errorf("Expected seed 99, got %d", cfg.Seed)
	}
	if cfg.ScoreFile != "/tmp/s.toml" {
		t.Errorf("Expected score file override, got %q", cfg.ScoreFile)
	}
	if cfg.CellSize != 20 {
		t.Errorf("Expected untouched cell size 20, got %d", cfg.CellSize)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "grid_size = 20\ngird_size = 10\n")

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "gird_size") {
		t.Errorf("Expected unknown key error naming gird_size, got %v", err)
	}
}

func TestLoadRejectsBadSpeed(t *testing.T) {
	path := writeConfig(t, `speed = "warp"`)

	if _, err := Load(path); err == nil {
		t.Error("Expected error for unknown speed")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestValidateRanges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"grid too small", func(c *Config) { c.GridSize = 2 }, "grid_size"},
		{"grid too large", func(c *Config) { c.GridSize = 1000 }, "grid_size"},
		{"cell too small", func(c *Config) { c.CellSize = 1 }, "cell_size"},
		{"bad speed", func(c *Config) { c.Speed = engine.Speed(12) }, "speed"},
	}

	for _, tt := range tests {
		cfg := Default()
		tt.mutate(&cfg)
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), tt.field) {
			t.Errorf("%s: expected error naming %s, got %v", tt.name, tt.field, err)
		}
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "grid_size = 30\nspeed = \"slow\"\naudio = true\n")

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse([]string{"-config", path, "-speed", "fast", "-no-audio", "-seed", "7"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := f.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.GridSize != 30 {
		t.Errorf("Expected grid from file 30, got %d", cfg.GridSize)
	}
	if cfg.Speed != engine.SpeedFast {
		t.Errorf("Expected flag speed fast, got %s", cfg.Speed)
	}
	if cfg.Audio {
		t.Error("Expected -no-audio to disable audio")
	}
	if cfg.Seed != 7 {
		t.Errorf("Expected seed 7, got %d", cfg.Seed)
	}
}

func TestFlagsUnsetKeepDefaults(t *testing.T) {
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	f := RegisterFlags(fs)
	fs.Parse(nil)

	cfg, err := f.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestFlagsRejectInvalid(t *testing.T) {
	tests := [][]string{
		{"-speed", "warp"},
		{"-grid", "3"},
	}
	for _, args := range tests {
		fs := flag.NewFlagSet("snake", flag.ContinueOnError)
		f := RegisterFlags(fs)
		fs.Parse(args)
		if _, err := f.Resolve(); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}
