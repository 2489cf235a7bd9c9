package terminal

// csiFinalKeys maps CSI final bytes to keys (ESC [ 1 ; mod X form carries modifiers)
var csiFinalKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,

	// xterm modified F1-F4: ESC [ 1 ; mod P..S
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
}

// csiTildeKeys maps the first parameter of ESC [ N ~ to keys
var csiTildeKeys = map[int]Key{
	1: KeyHome,
	2: KeyInsert,
	3: KeyDelete,
	4: KeyEnd,
	5: KeyPageUp,
	6: KeyPageDown,
	7: KeyHome, // rxvt
	8: KeyEnd,  // rxvt

	11: KeyF1,
	12: KeyF2,
	13: KeyF3,
	14: KeyF4,
	15: KeyF5,
	17: KeyF6,
	18: KeyF7,
	19: KeyF8,
	20: KeyF9,
	21: KeyF10,
	23: KeyF11,
	24: KeyF12,
}

// ss3Keys maps ESC O X to keys
var ss3Keys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
	'M': KeyEnter, // keypad enter in application mode
}

// lookupCSI resolves a complete CSI key sequence.
// ok is false for unmapped finals/codes, which are consumed without an event.
func lookupCSI(final byte, params []int) (Key, Modifier, bool) {
	mod := csiModifier(params)

	switch final {
	case '~':
		if len(params) == 0 {
			return KeyNone, ModNone, false
		}
		k, ok := csiTildeKeys[params[0]]
		return k, mod, ok
	case 'Z':
		// Backtab
		return KeyTab, mod | ModShift, true
	}

	k, ok := csiFinalKeys[final]
	if !ok {
		return KeyNone, ModNone, false
	}
	// Bare ESC [ P..S are not function keys on any xterm-like terminal
	if k >= KeyF1 && k <= KeyF4 && len(params) < 2 {
		return KeyNone, ModNone, false
	}
	return k, mod, true
}

// csiModifier decodes the xterm modifier parameter: value-1 holds shift/alt/ctrl bits
func csiModifier(params []int) Modifier {
	if len(params) < 2 || params[1] <= 1 {
		return ModNone
	}
	m := params[1] - 1
	var mod Modifier
	if m&1 != 0 {
		mod |= ModShift
	}
	if m&2 != 0 {
		mod |= ModAlt
	}
	if m&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}

// lookupSS3 resolves ESC O X
func lookupSS3(b byte) (Key, bool) {
	k, ok := ss3Keys[b]
	return k, ok
}
