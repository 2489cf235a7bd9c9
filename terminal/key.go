package terminal

import (
	"fmt"
	"strings"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventMouse
)

// Key represents a parsed input key
type Key uint16

// Key constants
const (
	KeyNone Key = iota
	KeyRune     // Character key, check Event.Rune

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// KeyF returns the function key F1..F12, or KeyNone when n is out of range
func KeyF(n int) Key {
	if n < 1 || n > 12 {
		return KeyNone
	}
	return KeyF1 + Key(n-1)
}

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// Has reports whether all bits of other are set
func (m Modifier) Has(other Modifier) bool {
	return m&other == other
}

// String renders modifiers as "ctrl+alt+shift+" prefix
func (m Modifier) String() string {
	var sb strings.Builder
	if m&ModCtrl != 0 {
		sb.WriteString("ctrl+")
	}
	if m&ModAlt != 0 {
		sb.WriteString("alt+")
	}
	if m&ModShift != 0 {
		sb.WriteString("shift+")
	}
	return sb.String()
}

// Event represents a decoded terminal input event.
// Key fields are valid for EventKey, Mouse fields for EventMouse; Modifiers for both.
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier

	// Mouse event fields, 0-based cell coordinates
	MouseX      int
	MouseY      int
	MouseBtn    MouseButton
	MouseAction MouseAction
}

// keyEvent builds a key event
func keyEvent(k Key, mod Modifier) Event {
	return Event{Type: EventKey, Key: k, Modifiers: mod}
}

// runeEvent builds a character key event
func runeEvent(r rune, mod Modifier) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r, Modifiers: mod}
}

// IsRune reports a character key event for r with no ctrl/alt held
func (e Event) IsRune(r rune) bool {
	return e.Type == EventKey && e.Key == KeyRune && e.Rune == r &&
		e.Modifiers&(ModCtrl|ModAlt) == 0
}

// IsCtrl reports a ctrl+letter key event, letter compared case-insensitively
func (e Event) IsCtrl(r rune) bool {
	return e.Type == EventKey && e.Key == KeyRune && e.Modifiers&ModCtrl != 0 &&
		toLower(e.Rune) == toLower(r)
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// String renders the event for logs and monitors, e.g. "key ctrl+up", "mouse left press 9,4"
func (e Event) String() string {
	switch e.Type {
	case EventKey:
		if e.Key == KeyRune {
			name := string(e.Rune)
			if e.Rune == ' ' {
				name = "space"
			}
			return "key " + e.Modifiers.String() + name
		}
		return "key " + e.Modifiers.String() + KeyName(e.Key)
	case EventMouse:
		return fmt.Sprintf("mouse %s%s %s %d,%d",
			e.Modifiers.String(), e.MouseBtn, e.MouseAction, e.MouseX, e.MouseY)
	default:
		return "none"
	}
}
