package tilery

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "tilery.yaml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	def := DefaultConfig()
	if cfg.Window != def.Window {
		t.Errorf("Window = %+v, want defaults %+v", cfg.Window, def.Window)
	}
	if cfg.TilesDir != def.TilesDir || cfg.UIDir != def.UIDir {
		t.Errorf("dirs = %q/%q, want defaults", cfg.TilesDir, cfg.UIDir)
	}
	if len(cfg.Bindings) == 0 {
		t.Error("default bindings missing")
	}
}

func TestLoadConfigOverridesAndFills(t *testing.T) {
	p := writeConfig(t, `
window:
  width: 1280
tiles_dir: assets/tiles
show_fps: true
bindings:
  - {input: up, action: pan-up}
`)

	cfg, err := LoadConfig(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Window.Width != 1280 {
		t.Errorf("Width = %d, want 1280", cfg.Window.Width)
	}
	// Unset fields fall back to defaults.
	if cfg.Window.Height != 480 {
		t.Errorf("Height = %d, want default 480", cfg.Window.Height)
	}
	if cfg.Window.Title != "tilery" {
		t.Errorf("Title = %q, want default", cfg.Window.Title)
	}
	if cfg.TilesDir != "assets/tiles" {
		t.Errorf("TilesDir = %q", cfg.TilesDir)
	}
	if !cfg.ShowFPS {
		t.Error("ShowFPS should be set")
	}
	if len(cfg.Bindings) != 1 || cfg.Bindings[0].Action != "pan-up" {
		t.Errorf("Bindings = %+v, want the single configured binding", cfg.Bindings)
	}
}

func TestLoadConfigMalformedFails(t *testing.T) {
	p := writeConfig(t, "window: [not, a, mapping")

	if _, err := LoadConfig(p); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestNewInputStateParsesDefaults(t *testing.T) {
	s, err := NewInputState(DefaultConfig().Bindings)
	if err != nil {
		t.Fatalf("default bindings should parse: %v", err)
	}
	if len(s.bindings) != len(DefaultConfig().Bindings) {
		t.Errorf("compiled %d bindings, want %d", len(s.bindings), len(DefaultConfig().Bindings))
	}
}

func TestNewInputStateRejectsUnknownNames(t *testing.T) {
	if _, err := NewInputState([]BindingConfig{{Input: "hyperspace", Action: "paint"}}); err == nil {
		t.Error("unknown input name should fail")
	}
	if _, err := NewInputState([]BindingConfig{{Input: "w", Action: "teleport"}}); err == nil {
		t.Error("unknown action name should fail")
	}
}
