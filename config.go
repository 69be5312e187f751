package tilery

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WindowConfig sizes and titles the editor window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// BindingConfig ties a named input ("w", "space", "mouse-left", ...)
// to a named action ("pan-up", "paint", ...).
type BindingConfig struct {
	Input  string `yaml:"input"`
	Action string `yaml:"action"`
}

// Config is the editor configuration, loadable from YAML. Zero or
// missing fields fall back to [DefaultConfig] values.
type Config struct {
	Window   WindowConfig    `yaml:"window"`
	TilesDir string          `yaml:"tiles_dir"`
	UIDir    string          `yaml:"ui_dir"`
	ShowFPS  bool            `yaml:"show_fps"`
	Bindings []BindingConfig `yaml:"bindings"`
}

// DefaultConfig returns the built-in configuration: a 640×480 window,
// tiles/ and ui/ asset directories, and the stock key bindings.
func DefaultConfig() Config {
	return Config{
		Window:   WindowConfig{Width: 640, Height: 480, Title: "tilery"},
		TilesDir: "tiles",
		UIDir:    "ui",
		Bindings: []BindingConfig{
			{Input: "w", Action: "pan-up"},
			{Input: "s", Action: "pan-down"},
			{Input: "a", Action: "pan-left"},
			{Input: "d", Action: "pan-right"},
			{Input: "space", Action: "zoom-out"},
			{Input: "left-ctrl", Action: "zoom-in"},
			{Input: "mouse-left", Action: "paint"},
			{Input: "z", Action: "paint"},
			{Input: "mouse-right", Action: "erase"},
			{Input: "x", Action: "erase"},
		},
	}
}

// LoadConfig reads a YAML config file, layered over the defaults. A
// missing file is not an error — the defaults apply as-is. A file that
// exists but does not parse is an error; silently ignoring a broken
// config hides exactly the mistakes it would contain.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("tilery: failed to read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("tilery: failed to parse config %q: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills fields the file left zero.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
	}
	if c.Window.Title == "" {
		c.Window.Title = def.Window.Title
	}
	if c.TilesDir == "" {
		c.TilesDir = def.TilesDir
	}
	if c.UIDir == "" {
		c.UIDir = def.UIDir
	}
	if len(c.Bindings) == 0 {
		c.Bindings = def.Bindings
	}
}
