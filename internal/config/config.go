// Package config loads and saves the mindweaver TOML configuration.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/phanxgames/mindweaver"
)

// Config holds mindweaver configuration.
type Config struct {
	Storage  StorageConfig  `toml:"storage"`
	Window   WindowConfig   `toml:"window"`
	Viewport ViewportConfig `toml:"viewport"`
	Bubble   BubbleConfig   `toml:"bubble"`
	Debug    DebugConfig    `toml:"debug"`
}

// StorageConfig controls where the map is kept.
type StorageConfig struct {
	DataFile string `toml:"data_file"`
}

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Title   string `toml:"title"`
	ShowFPS bool   `toml:"show_fps"`
}

// ViewportConfig bounds the zoom. Zero disables a bound.
type ViewportConfig struct {
	MinScale float64 `toml:"min_scale"`
	MaxScale float64 `toml:"max_scale"`
}

// BubbleConfig holds new-bubble defaults.
type BubbleConfig struct {
	Title   string   `toml:"title"`
	Icon    string   `toml:"icon"`
	Palette []string `toml:"palette"`
}

// DebugConfig controls debug output.
type DebugConfig struct {
	Enabled       bool   `toml:"enabled"`
	ScreenshotDir string `toml:"screenshot_dir"`
}

// Default returns the default configuration.
func Default() *Config {
	d := mindweaver.DefaultBubbleDefaults()
	return &Config{
		Storage: StorageConfig{DataFile: "~/.local/share/mindweaver/map.json"},
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
			Title:  "mindweaver",
		},
		Viewport: ViewportConfig{MinScale: 0.05, MaxScale: 20},
		Bubble: BubbleConfig{
			Title:   d.Title,
			Icon:    d.Icon,
			Palette: append([]string(nil), d.Palette...),
		},
		Debug: DebugConfig{ScreenshotDir: "screenshots"},
	}
}

// ConfigDir returns the mindweaver config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "mindweaver")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file. A missing or unparsable file yields defaults.
func Load() *Config {
	cfg := Default()
	data, err := os.ReadFile(Path())
	if err != nil {
		return cfg
	}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return Default()
	}
	cfg.fill()
	return cfg
}

// fill restores defaults for values a partial file left empty.
func (c *Config) fill() {
	d := Default()
	if c.Storage.DataFile == "" {
		c.Storage.DataFile = d.Storage.DataFile
	}
	if c.Window.Width <= 0 {
		c.Window.Width = d.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = d.Window.Height
	}
	if c.Window.Title == "" {
		c.Window.Title = d.Window.Title
	}
	if len(c.Bubble.Palette) == 0 {
		c.Bubble.Palette = d.Bubble.Palette
	}
	if c.Debug.ScreenshotDir == "" {
		c.Debug.ScreenshotDir = d.Debug.ScreenshotDir
	}
}

// Save writes the config to disk.
func Save(cfg *Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// DataFile returns the map file path with a leading ~ expanded.
func (c *Config) DataFile() string {
	return ExpandHome(c.Storage.DataFile)
}

// BubbleDefaults converts the bubble section for a session.
func (c *Config) BubbleDefaults() mindweaver.BubbleDefaults {
	return mindweaver.BubbleDefaults{
		Title:   c.Bubble.Title,
		Icon:    c.Bubble.Icon,
		Palette: c.Bubble.Palette,
	}
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
