package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/cellterm/input"
	"github.com/lixenwraith/cellterm/terminal"
	"github.com/lixenwraith/cellterm/terminal/tui"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// TestLoadDefaults verifies a missing default file falls back to built-ins
func TestLoadDefaults(t *testing.T) {
	t.Setenv("CELLTERM_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(c, Default()) {
		t.Errorf("Expected defaults, got %+v", c)
	}
}

// TestLoadFile verifies file values override defaults
func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
tick_ms = 20
mouse = false

[border]
style = "double"
color = "#336699"

[theme]
accent = "gold"
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.TickMs != 20 || c.Mouse {
		t.Errorf("Unexpected top-level values: %+v", c)
	}
	if c.Border.Style != "double" || c.Border.Color != "#336699" {
		t.Errorf("Unexpected border: %+v", c.Border)
	}
	// Unset keys keep defaults
	if c.Theme.Fg != "default" || c.Log.Level != "info" {
		t.Errorf("Defaults lost: %+v", c)
	}

	r, err := c.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if r.Tick != 20*time.Millisecond || r.Line != tui.LineDouble {
		t.Errorf("Unexpected resolved values: %+v", r)
	}
	if r.BorderFg != terminal.RGB(0x33, 0x66, 0x99) {
		t.Errorf("Unexpected border color %v", r.BorderFg)
	}
}

// TestLoadEnvOverride verifies CELLTERM_* variables take precedence over the file
func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "tick_ms = 20\n[log]\nlevel = \"warn\"\n")
	t.Setenv("CELLTERM_TICK_MS", "75")
	t.Setenv("CELLTERM_LOG_LEVEL", "debug")
	t.Setenv("CELLTERM_MOUSE", "false")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.TickMs != 75 {
		t.Errorf("Expected tick_ms 75, got %d", c.TickMs)
	}
	if c.Log.Level != "debug" {
		t.Errorf("Expected log level debug, got %q", c.Log.Level)
	}
	if c.Mouse {
		t.Error("Expected mouse disabled by env")
	}
}

// TestLoadConfigEnvPath verifies CELLTERM_CONFIG selects the file
func TestLoadConfigEnvPath(t *testing.T) {
	path := writeConfig(t, "tick_ms = 33\n")
	t.Setenv("CELLTERM_CONFIG", path)

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.TickMs != 33 {
		t.Errorf("Expected tick_ms 33, got %d", c.TickMs)
	}
}

// TestLoadErrors verifies invalid input is reported
func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad toml", "tick_ms = = 1", "config: read"},
		{"bad tick", "tick_ms = 0", "tick_ms"},
		{"bad style", "[border]\nstyle = \"dotted\"", "border.style"},
		{"bad color", "[theme]\nfg = \"notacolor\"", "theme.fg"},
		{"bad hex", "[theme]\nbg = \"#12\"", "theme.bg"},
		{"bad level", "[log]\nlevel = \"loud\"", "log.level"},
		{"bad action", "[keys]\nx = \"explode\"", "unknown action"},
		{"bad chord", "[keys]\n\"meta+x\" = \"quit\"", "unknown modifier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for missing explicit path")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    terminal.Color
		wantErr bool
	}{
		{"", terminal.ColorDefault, false},
		{"default", terminal.ColorDefault, false},
		{"#ff8000", terminal.RGB(255, 128, 0), false},
		{"#FF8000", terminal.RGB(255, 128, 0), false},
		{"#000000", terminal.RGB(0, 0, 0), false},
		{"red", terminal.RGB(255, 0, 0), false},
		{"White", terminal.RGB(255, 255, 255), false},
		{"xyzzy", terminal.ColorDefault, true},
		{"#zzzzzz", terminal.ColorDefault, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestResolveDefaults verifies the built-in configuration is valid
func TestResolveDefaults(t *testing.T) {
	r, err := Default().Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if r.Line != tui.LineRounded || r.LogLevel != log.InfoLevel || !r.Mouse {
		t.Errorf("Unexpected resolved defaults: %+v", r)
	}
	if r.Fg != terminal.ColorDefault || !r.Accent.IsSet() {
		t.Errorf("Unexpected theme colors: %+v", r)
	}
}

// TestLoadKeys verifies [keys] overrides reach the resolved key table
func TestLoadKeys(t *testing.T) {
	path := writeConfig(t, `
[keys]
"ctrl+x" = "quit"
q = "none"
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	r, err := c.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	ctrlX := terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'x', Modifiers: terminal.ModCtrl}
	if got := r.Keys.Lookup(ctrlX); got != input.ActionQuit {
		t.Errorf("ctrl+x = %v, want quit", got)
	}
	q := terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'q'}
	if got := r.Keys.Lookup(q); got != input.ActionNone {
		t.Errorf("q = %v, want unbound", got)
	}
}

// TestEncodeRoundTrip verifies the rendered defaults load back unchanged
func TestEncodeRoundTrip(t *testing.T) {
	data, err := Default().Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !strings.Contains(string(data), "[border]") {
		t.Errorf("Expected border table in output:\n%s", data)
	}

	c, err := Load(writeConfig(t, string(data)))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(c, Default()) {
		t.Errorf("Round trip mismatch: %+v", c)
	}
}
