package terminal

import "strconv"

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csi      = []byte("\x1b[")
	csiSGR0  = []byte("\x1b[0m")
	csiClear = []byte("\x1b[2J\x1b[H")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Screen modes
	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")

	// Auto-wrap off keeps a write to the bottom-right cell from scrolling
	csiAutoWrapOff = []byte("\x1b[?7l")
	csiAutoWrapOn  = []byte("\x1b[?7h")

	// Mouse: any-event tracking (1003) with SGR extended coordinates (1006)
	csiMouseOn  = []byte("\x1b[?1003h\x1b[?1006h")
	csiMouseOff = []byte("\x1b[?1003l\x1b[?1006l")

	// Color prefixes
	csiFgRGB     = []byte("\x1b[38;2;") // followed by R;G;Bm
	csiBgRGB     = []byte("\x1b[48;2;") // followed by R;G;Bm
	csiDefaultFg = []byte("\x1b[39m")
	csiDefaultBg = []byte("\x1b[49m")
)

// appendInt appends a non-negative decimal integer
func appendInt(buf []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(buf, byte(n)+'0')
	}
	return strconv.AppendInt(buf, int64(n), 10)
}

// appendCursorPos appends a cursor positioning sequence (0-indexed input)
func appendCursorPos(buf []byte, x, y int) []byte {
	buf = append(buf, csi...)
	buf = appendInt(buf, y+1)
	buf = append(buf, ';')
	buf = appendInt(buf, x+1)
	return append(buf, 'H')
}

// appendRGB appends "R;G;Bm" after a color prefix
func appendRGB(buf []byte, prefix []byte, c Color) []byte {
	buf = append(buf, prefix...)
	buf = appendInt(buf, int(c.R()))
	buf = append(buf, ';')
	buf = appendInt(buf, int(c.G()))
	buf = append(buf, ';')
	buf = appendInt(buf, int(c.B()))
	return append(buf, 'm')
}

// appendFg appends a foreground change, default color resets with SGR 39
func appendFg(buf []byte, c Color) []byte {
	if !c.IsSet() {
		return append(buf, csiDefaultFg...)
	}
	return appendRGB(buf, csiFgRGB, c)
}

// appendBg appends a background change, default color resets with SGR 49
func appendBg(buf []byte, c Color) []byte {
	if !c.IsSet() {
		return append(buf, csiDefaultBg...)
	}
	return appendRGB(buf, csiBgRGB, c)
}

// appendAttrs appends "ESC[0;...m"; the leading reset also restores default colors
func appendAttrs(buf []byte, a Attr) []byte {
	buf = append(buf, csi...)
	buf = append(buf, '0')
	for _, e := range attrSGR {
		if a&e.attr != 0 {
			buf = append(buf, ';', e.code)
		}
	}
	return append(buf, 'm')
}
