package tui

import "github.com/lixenwraith/cellterm/terminal"

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// Arms of a box-drawing glyph, a glyph is the union of the directions it reaches
const (
	armUp uint8 = 1 << iota
	armDown
	armLeft
	armRight

	armsAll = armUp | armDown | armLeft | armRight
)

// lineGlyphs maps an arm mask to its glyph, per line type.
// Single-arm masks fall back to the full straight line.
var lineGlyphs = [...][16]rune{
	LineSingle: {
		' ', '│', '│', '│', '─', '┘', '┐', '┤',
		'─', '└', '┌', '├', '─', '┴', '┬', '┼',
	},
	LineDouble: {
		' ', '║', '║', '║', '═', '╝', '╗', '╣',
		'═', '╚', '╔', '╠', '═', '╩', '╦', '╬',
	},
	LineRounded: {
		' ', '│', '│', '│', '─', '╯', '╮', '┤',
		'─', '╰', '╭', '├', '─', '┴', '┬', '┼',
	},
	LineHeavy: {
		' ', '┃', '┃', '┃', '━', '┛', '┓', '┫',
		'━', '┗', '┏', '┣', '━', '┻', '┳', '╋',
	},
	LineNone: {
		' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ',
		' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ',
	},
}

// glyphArms is the reverse of lineGlyphs across all styles
var glyphArms = func() map[rune]uint8 {
	m := make(map[rune]uint8, 64)
	for _, glyphs := range lineGlyphs {
		for mask := uint8(1); mask < 16; mask++ {
			g := glyphs[mask]
			if g == ' ' {
				continue
			}
			// Keep the full mask for straight lines that single arms reuse
			if prev, ok := m[g]; !ok || bitCount(mask) > bitCount(prev) {
				m[g] = mask
			}
		}
	}
	return m
}()

func bitCount(m uint8) int {
	n := 0
	for ; m != 0; m &= m - 1 {
		n++
	}
	return n
}

// valid returns l, or LineSingle for out-of-range values
func (l LineType) valid() LineType {
	if l >= LineType(len(lineGlyphs)) {
		return LineSingle
	}
	return l
}

// glyph returns the character with the given arms in this style
func (l LineType) glyph(arms uint8) rune {
	return lineGlyphs[l.valid()][arms&armsAll]
}

// String returns the config name of the line type
func (l LineType) String() string {
	switch l {
	case LineSingle:
		return "single"
	case LineDouble:
		return "double"
	case LineRounded:
		return "rounded"
	case LineHeavy:
		return "heavy"
	case LineNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseLineType resolves a config name to a line type
func ParseLineType(name string) (LineType, bool) {
	switch name {
	case "single":
		return LineSingle, true
	case "double":
		return LineDouble, true
	case "rounded":
		return LineRounded, true
	case "heavy":
		return LineHeavy, true
	case "none":
		return LineNone, true
	}
	return LineSingle, false
}

// putLine writes a border glyph with its color
func putLine(c Canvas, x, y int, r rune, fg terminal.Color) {
	c.PutChar(x, y, r)
	c.SetForeground(x, y, fg)
}

// putJoint merges arms into whatever border glyph already occupies (x, y).
// Two tees meeting on a shared seam become a cross.
func putJoint(c Canvas, x, y int, arms uint8, line LineType, fg terminal.Color) {
	if cell, ok := c.Cell(x, y); ok {
		arms |= glyphArms[cell.Rune]
	}
	putLine(c, x, y, line.glyph(arms), fg)
}

// drawBorder outlines a rectangle, degrading for boxes narrower or shorter than two cells
func drawBorder(c Canvas, b BBox, line LineType, fg terminal.Color) {
	x, y, w, h := b.X, b.Y, b.W, b.H
	if w <= 0 || h <= 0 {
		return
	}

	hLine := line.glyph(armLeft | armRight)
	vLine := line.glyph(armUp | armDown)

	// Top edge
	putLine(c, x, y, line.glyph(armDown|armRight), fg)
	for i := 1; i < w-1; i++ {
		putLine(c, x+i, y, hLine, fg)
	}
	if w > 1 {
		putLine(c, x+w-1, y, line.glyph(armDown|armLeft), fg)
	}

	// Sides
	for i := 1; i < h-1; i++ {
		putLine(c, x, y+i, vLine, fg)
		if w > 1 {
			putLine(c, x+w-1, y+i, vLine, fg)
		}
	}

	// Bottom edge
	if h > 1 {
		putLine(c, x, y+h-1, line.glyph(armUp|armRight), fg)
		for i := 1; i < w-1; i++ {
			putLine(c, x+i, y+h-1, hLine, fg)
		}
		if w > 1 {
			putLine(c, x+w-1, y+h-1, line.glyph(armUp|armLeft), fg)
		}
	}
}
