package input

import (
	"maps"

	"github.com/lixenwraith/cellterm/terminal"
)

// Binding identifies a key chord. Rune is set only for character keys and is
// stored lowercase when Ctrl is held, matching how terminals report ctrl+letter.
type Binding struct {
	Key  terminal.Key
	Rune rune
	Mods terminal.Modifier
}

// bindingMods are the modifiers that take part in matching; shift is already
// folded into the rune for character keys and is not reported reliably otherwise
const bindingMods = terminal.ModCtrl | terminal.ModAlt

// BindingOf returns the binding an event would match
func BindingOf(ev terminal.Event) Binding {
	b := Binding{Key: ev.Key, Mods: ev.Modifiers & bindingMods}
	if ev.Key == terminal.KeyRune {
		b.Rune = ev.Rune
		if b.Mods.Has(terminal.ModCtrl) && b.Rune >= 'A' && b.Rune <= 'Z' {
			b.Rune += 'a' - 'A'
		}
	}
	return b
}

// KeyTable maps key chords to actions
type KeyTable struct {
	bindings map[Binding]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	ctrl := func(r rune) Binding { return Binding{Key: terminal.KeyRune, Rune: r, Mods: terminal.ModCtrl} }
	char := func(r rune) Binding { return Binding{Key: terminal.KeyRune, Rune: r} }
	key := func(k terminal.Key) Binding { return Binding{Key: k} }

	return &KeyTable{bindings: map[Binding]Action{
		ctrl('c'): ActionQuit,
		ctrl('q'): ActionQuit,
		char('q'): ActionQuit,

		key(terminal.KeyEscape): ActionMenu,

		char('c'): ActionClear,
		char(' '): ActionPaint,
		char('b'): ActionCycleBorder,

		key(terminal.KeyUp):    ActionCursorUp,
		key(terminal.KeyDown):  ActionCursorDown,
		key(terminal.KeyLeft):  ActionCursorLeft,
		key(terminal.KeyRight): ActionCursorRight,
		char('k'):              ActionCursorUp,
		char('j'):              ActionCursorDown,
		char('h'):              ActionCursorLeft,
		char('l'):              ActionCursorRight,
	}}
}

// Lookup returns the action bound to the event, ActionNone when unbound or not a key event
func (kt *KeyTable) Lookup(ev terminal.Event) Action {
	if ev.Type != terminal.EventKey {
		return ActionNone
	}
	return kt.bindings[BindingOf(ev)]
}

// Bind sets or, for ActionNone, removes a binding
func (kt *KeyTable) Bind(b Binding, a Action) {
	if a == ActionNone {
		delete(kt.bindings, b)
		return
	}
	kt.bindings[b] = a
}

// Len returns the number of bindings
func (kt *KeyTable) Len() int {
	return len(kt.bindings)
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{bindings: maps.Clone(kt.bindings)}
}
