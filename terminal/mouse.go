package terminal

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
)

// MouseAction represents the type of mouse event
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
	MouseActionDrag
)

// String returns human-readable button name
func (b MouseButton) String() string {
	switch b {
	case MouseBtnLeft:
		return "left"
	case MouseBtnMiddle:
		return "middle"
	case MouseBtnRight:
		return "right"
	case MouseBtnWheelUp:
		return "wheel_up"
	case MouseBtnWheelDown:
		return "wheel_down"
	default:
		return "none"
	}
}

// String returns human-readable action name
func (a MouseAction) String() string {
	switch a {
	case MouseActionPress:
		return "press"
	case MouseActionRelease:
		return "release"
	case MouseActionMove:
		return "move"
	case MouseActionDrag:
		return "drag"
	default:
		return "none"
	}
}

// SGR mouse button byte layout
const (
	sgrButtonMask = 0x03
	sgrShift      = 4
	sgrAlt        = 8
	sgrCtrl       = 16
	sgrMotion     = 32
	sgrScroll     = 64
)

// decodeSGRButton maps the SGR button field and terminator to button, action and modifiers
func decodeSGRButton(b int, release bool) (MouseButton, MouseAction, Modifier) {
	var mod Modifier
	if b&sgrShift != 0 {
		mod |= ModShift
	}
	if b&sgrAlt != 0 {
		mod |= ModAlt
	}
	if b&sgrCtrl != 0 {
		mod |= ModCtrl
	}

	id := b & sgrButtonMask

	if b&sgrScroll != 0 {
		// Scroll is instantaneous, reported as press
		if id == 0 {
			return MouseBtnWheelUp, MouseActionPress, mod
		}
		return MouseBtnWheelDown, MouseActionPress, mod
	}

	btn := MouseBtnNone
	switch id {
	case 0:
		btn = MouseBtnLeft
	case 1:
		btn = MouseBtnMiddle
	case 2:
		btn = MouseBtnRight
	}

	if b&sgrMotion != 0 {
		if btn == MouseBtnNone {
			return btn, MouseActionMove, mod
		}
		return btn, MouseActionDrag, mod
	}
	if release {
		return btn, MouseActionRelease, mod
	}
	return btn, MouseActionPress, mod
}
