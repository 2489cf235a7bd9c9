package input

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/cellterm/terminal"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"plus":      '+',
}

// ParseBinding parses a chord such as "q", "space", "ctrl+q", "alt+x" or "ctrl+up".
// Modifier prefixes and key names are case-insensitive; a single character is
// taken literally unless ctrl is held.
func ParseBinding(chord string) (Binding, error) {
	var b Binding
	rest := strings.TrimSpace(chord)
	if rest == "" {
		return b, fmt.Errorf("empty key")
	}

	// A lone "+" is a character, not a separator
	for len(rest) > 1 {
		prefix, tail, found := strings.Cut(rest, "+")
		if !found {
			break
		}
		switch strings.ToLower(prefix) {
		case "ctrl":
			b.Mods |= terminal.ModCtrl
		case "alt":
			b.Mods |= terminal.ModAlt
		default:
			return b, fmt.Errorf("unknown modifier %q in %q", prefix, chord)
		}
		rest = tail
	}

	if k, ok := terminal.KeyByName(strings.ToLower(rest)); ok {
		b.Key = k
		return b, nil
	}

	r, err := resolveRune(rest)
	if err != nil {
		return b, err
	}
	b.Key = terminal.KeyRune
	b.Rune = r
	if b.Mods.Has(terminal.ModCtrl) {
		if r >= 'A' && r <= 'Z' {
			b.Rune = r + ('a' - 'A')
		}
		if b.Rune < 'a' || b.Rune > 'z' {
			return b, fmt.Errorf("ctrl only combines with letters: %q", chord)
		}
	}
	return b, nil
}

// resolveRune converts a key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid key: %q (expected key name, single character or alias)", s)
}

// resolveAction converts an action name string to an Action
func resolveAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	a, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}

// LoadKeyTable applies chord → action overrides on top of the defaults.
// The action "none" removes a default binding.
// Returns error on unknown action names or invalid chords.
func LoadKeyTable(overrides map[string]string) (*KeyTable, error) {
	kt := DefaultKeyTable()
	for chord, name := range overrides {
		b, err := ParseBinding(chord)
		if err != nil {
			return nil, fmt.Errorf("keys: %w", err)
		}
		a, err := resolveAction(name)
		if err != nil {
			return nil, fmt.Errorf("keys: key %q: %w", chord, err)
		}
		kt.Bind(b, a)
	}
	return kt, nil
}
