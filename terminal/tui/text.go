package tui

import "github.com/mattn/go-runewidth"

// wideFallback stands in for double-width runes, a cell holds one narrow glyph
const wideFallback = '?'

// cellRune maps r to the glyph drawn in a single cell.
// ok is false for control and zero-width runes, which occupy no cell.
func cellRune(r rune) (rune, bool) {
	if r < 0x20 || r == 0x7f {
		return 0, false
	}
	switch runewidth.RuneWidth(r) {
	case 0:
		return 0, false
	case 1:
		return r, true
	default:
		return wideFallback, true
	}
}

// Width returns the number of cells s occupies when drawn
func Width(s string) int {
	n := 0
	for _, r := range s {
		if _, ok := cellRune(r); ok {
			n++
		}
	}
	return n
}

// Truncate truncates string with … suffix if it exceeds maxLen cells
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if Width(s) <= maxLen {
		return s
	}
	if maxLen == 1 {
		return "…"
	}

	out := make([]rune, 0, maxLen)
	n := 0
	for _, r := range s {
		if _, ok := cellRune(r); !ok {
			continue
		}
		if n == maxLen-1 {
			break
		}
		out = append(out, r)
		n++
	}
	return string(append(out, '…'))
}

// TruncateLeft truncates with … prefix, keeps end of string
func TruncateLeft(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if Width(s) <= maxLen {
		return s
	}
	if maxLen == 1 {
		return "…"
	}

	var runes []rune
	for _, r := range s {
		if _, ok := cellRune(r); ok {
			runes = append(runes, r)
		}
	}
	return "…" + string(runes[len(runes)-maxLen+1:])
}

// PadRight pads string with spaces to width cells
func PadRight(s string, width int) string {
	n := Width(s)
	if n >= width {
		return s
	}
	return s + spaces(width-n)
}

// PadCenter centers string within width cells
func PadCenter(s string, width int) string {
	n := Width(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return spaces(left) + s + spaces(width-n-left)
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
