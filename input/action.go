// Package input maps decoded key events to demo actions through a
// configurable key table.
package input

// Action is a command a key can be bound to
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionMenu
	ActionClear
	ActionPaint
	ActionCursorUp
	ActionCursorDown
	ActionCursorLeft
	ActionCursorRight
	ActionCycleBorder
)

// actionRegistry maps canonical action names used in config files to actions
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"quit":         ActionQuit,
	"menu":         ActionMenu,
	"clear":        ActionClear,
	"paint":        ActionPaint,
	"cursor_up":    ActionCursorUp,
	"cursor_down":  ActionCursorDown,
	"cursor_left":  ActionCursorLeft,
	"cursor_right": ActionCursorRight,
	"cycle_border": ActionCycleBorder,
}

// actionNames is the reverse of actionRegistry
var actionNames map[Action]string

func init() {
	actionNames = make(map[Action]string, len(actionRegistry))
	for name, a := range actionRegistry {
		actionNames[a] = name
	}
}

// ActionByName resolves a canonical action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}
