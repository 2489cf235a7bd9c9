// Package config loads cellterm settings from TOML, CELLTERM_* environment
// variables and built-in defaults, and resolves them into terminal values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/lixenwraith/cellterm/input"
	"github.com/lixenwraith/cellterm/terminal"
	"github.com/lixenwraith/cellterm/terminal/tui"
)

// EnvPrefix prefixes every environment override, e.g. CELLTERM_TICK_MS
const EnvPrefix = "CELLTERM"

// Config holds application configuration
type Config struct {
	TickMs int          `mapstructure:"tick_ms" toml:"tick_ms" comment:"frame interval in milliseconds"`
	Mouse  bool         `mapstructure:"mouse" toml:"mouse" comment:"enable mouse reporting"`
	Border BorderConfig `mapstructure:"border" toml:"border"`
	Theme  ThemeConfig  `mapstructure:"theme" toml:"theme"`
	Log    LogConfig    `mapstructure:"log" toml:"log"`

	// Keys overrides default bindings: chord = action, e.g. "ctrl+x" = "quit".
	// Keys are lowercased on load, so uppercase letters cannot be bound here.
	Keys map[string]string `mapstructure:"keys" toml:"keys,omitempty"`
}

// BorderConfig holds frame border settings
type BorderConfig struct {
	Style string `mapstructure:"style" toml:"style" comment:"single, double, rounded, heavy or none"`
	Color string `mapstructure:"color" toml:"color"`
}

// ThemeConfig holds widget colors: "default", "#rrggbb" or a color name
type ThemeConfig struct {
	Fg     string `mapstructure:"fg" toml:"fg"`
	Bg     string `mapstructure:"bg" toml:"bg"`
	Accent string `mapstructure:"accent" toml:"accent"`
}

// LogConfig holds log output settings; an empty file disables logging
type LogConfig struct {
	File  string `mapstructure:"file" toml:"file"`
	Level string `mapstructure:"level" toml:"level" comment:"debug, info, warn or error"`
}

// Resolved is a validated Config converted to engine types
type Resolved struct {
	Tick     time.Duration
	Mouse    bool
	Line     tui.LineType
	BorderFg terminal.Color
	Fg       terminal.Color
	Bg       terminal.Color
	Accent   terminal.Color
	LogFile  string
	LogLevel log.Level
	Keys     *input.KeyTable
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		TickMs: 50,
		Mouse:  true,
		Border: BorderConfig{
			Style: "rounded",
			Color: "gray",
		},
		Theme: ThemeConfig{
			Fg:     "default",
			Bg:     "default",
			Accent: "#e5c07b",
		},
		Log: LogConfig{
			File:  "",
			Level: "info",
		},
	}
}

// setDefaults registers every key so env overrides apply without a config file
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("tick_ms", d.TickMs)
	v.SetDefault("mouse", d.Mouse)
	v.SetDefault("border.style", d.Border.Style)
	v.SetDefault("border.color", d.Border.Color)
	v.SetDefault("theme.fg", d.Theme.Fg)
	v.SetDefault("theme.bg", d.Theme.Bg)
	v.SetDefault("theme.accent", d.Theme.Accent)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
}

// DefaultPath returns the config file searched when no path is given
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "cellterm", "config.toml")
}

// Load reads configuration from path, or from CELLTERM_CONFIG, or from DefaultPath.
// A missing file at the default location is not an error; an explicit path must exist.
// Env var overrides use prefix CELLTERM_ with dots replaced by underscores.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvPrefix + "_CONFIG")
		explicit = path != ""
	}
	if !explicit {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if _, err := c.Resolve(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Resolve validates the configuration and converts it to engine values
func (c Config) Resolve() (Resolved, error) {
	var r Resolved
	var err error

	if c.TickMs <= 0 {
		return r, fmt.Errorf("config: tick_ms must be positive, got %d", c.TickMs)
	}
	r.Tick = time.Duration(c.TickMs) * time.Millisecond
	r.Mouse = c.Mouse

	line, ok := tui.ParseLineType(strings.ToLower(c.Border.Style))
	if !ok {
		return r, fmt.Errorf("config: border.style: unknown line style %q", c.Border.Style)
	}
	r.Line = line

	colors := []struct {
		key string
		src string
		dst *terminal.Color
	}{
		{"border.color", c.Border.Color, &r.BorderFg},
		{"theme.fg", c.Theme.Fg, &r.Fg},
		{"theme.bg", c.Theme.Bg, &r.Bg},
		{"theme.accent", c.Theme.Accent, &r.Accent},
	}
	for _, col := range colors {
		if *col.dst, err = ParseColor(col.src); err != nil {
			return r, fmt.Errorf("config: %s: %w", col.key, err)
		}
	}

	r.LogFile = c.Log.File
	if r.LogLevel, err = log.ParseLevel(c.Log.Level); err != nil {
		return r, fmt.Errorf("config: log.level: %w", err)
	}

	if r.Keys, err = input.LoadKeyTable(c.Keys); err != nil {
		return r, fmt.Errorf("config: %w", err)
	}
	return r, nil
}

// ParseColor accepts "default" (or empty), "#rrggbb" and W3C/xterm color names
func ParseColor(s string) (terminal.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" || name == "default" {
		return terminal.ColorDefault, nil
	}

	if strings.HasPrefix(name, "#") {
		c, err := colorful.Hex(name)
		if err != nil {
			return terminal.ColorDefault, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return terminal.FromColorful(c), nil
	}

	r, g, b := tcell.GetColor(name).RGB()
	if r < 0 || g < 0 || b < 0 {
		return terminal.ColorDefault, fmt.Errorf("unknown color %q", s)
	}
	return terminal.RGB(uint8(r), uint8(g), uint8(b)), nil
}

// Encode renders c as a commented TOML document
func (c Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
