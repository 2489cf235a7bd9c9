package terminal

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// Screen is a double-buffered cell grid.
// Drawing mutates the back buffer; front mirrors what the terminal currently shows.
// Flush emits only the bytes needed to turn front into back.
type Screen struct {
	back   []Cell
	front  []Cell
	width  int
	height int
	out    io.Writer

	// scratch is reused across flushes to keep the hot path allocation-free
	scratch  []byte
	forceAll bool
}

// NewScreen allocates both buffers filled with default cells.
// Dimensions are fixed for the lifetime of the screen; negative values are treated as zero.
func NewScreen(out io.Writer, width, height int) *Screen {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	s := &Screen{
		back:    make([]Cell, size),
		front:   make([]Cell, size),
		width:   width,
		height:  height,
		out:     out,
		scratch: make([]byte, 0, 64*1024),
	}
	for i := range s.back {
		s.back[i] = DefaultCell
		s.front[i] = DefaultCell
	}
	return s
}

// Width returns grid width in cells
func (s *Screen) Width() int { return s.width }

// Height returns grid height in cells
func (s *Screen) Height() int { return s.height }

// Size returns grid dimensions
func (s *Screen) Size() (width, height int) { return s.width, s.height }

// index returns the buffer offset for (x, y), or -1 when out of range
func (s *Screen) index(x, y int) int {
	if uint(x) >= uint(s.width) || uint(y) >= uint(s.height) {
		return -1
	}
	return y*s.width + x
}

// Clear resets the back buffer to default cells.
// The front buffer is left alone so the next flush diffs against the real screen.
func (s *Screen) Clear() {
	for i := range s.back {
		s.back[i] = DefaultCell
	}
}

// PutChar sets the glyph of a back-buffer cell
func (s *Screen) PutChar(x, y int, r rune) {
	if i := s.index(x, y); i >= 0 {
		s.back[i].Rune = r
	}
}

// SetForeground sets the foreground color of a back-buffer cell
func (s *Screen) SetForeground(x, y int, c Color) {
	if i := s.index(x, y); i >= 0 {
		s.back[i].Fg = c
	}
}

// SetBackground sets the background color of a back-buffer cell
func (s *Screen) SetBackground(x, y int, c Color) {
	if i := s.index(x, y); i >= 0 {
		s.back[i].Bg = c
	}
}

// SetAttr replaces the attributes of a back-buffer cell
func (s *Screen) SetAttr(x, y int, a Attr) {
	if i := s.index(x, y); i >= 0 {
		s.back[i].Attrs = a
	}
}

// SetCell replaces a whole back-buffer cell
func (s *Screen) SetCell(x, y int, c Cell) {
	if i := s.index(x, y); i >= 0 {
		s.back[i] = c
	}
}

// Cell returns the back-buffer cell at (x, y); ok is false when out of range
func (s *Screen) Cell(x, y int) (c Cell, ok bool) {
	i := s.index(x, y)
	if i < 0 {
		return Cell{}, false
	}
	return s.back[i], true
}

// PutStr writes a string starting at (x, y), one code point per cell.
// '\n' returns to column x on the next row; other control characters are skipped.
// Returns the number of cells written.
func (s *Screen) PutStr(x, y int, str string) int {
	cx, cy := x, y
	n := 0
	for _, r := range str {
		if cy >= s.height {
			break
		}
		if r == '\n' {
			cy++
			cx = x
			continue
		}
		if r < 0x20 || r == 0x7f {
			continue
		}
		if i := s.index(cx, cy); i >= 0 {
			s.back[i].Rune = r
			n++
		}
		cx++
	}
	return n
}

// Fill sets every back-buffer cell of a rectangle, clipped to the grid
func (s *Screen) Fill(x, y, w, h int, c Cell) {
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			s.SetCell(cx, cy, c)
		}
	}
}

// Invalidate forces the next flush to repaint every cell
func (s *Screen) Invalidate() {
	s.forceAll = true
}

// colorMemo tracks the last color emitted in a flush pass
type colorMemo struct {
	c     Color
	valid bool
}

// Flush writes the differences between back and front to the output in one write.
// Cursor moves are emitted only when the next dirty cell does not follow the
// previously written one; colors and attributes only when they change within the pass.
// After a successful flush front equals back and an immediate second flush writes nothing.
// On write failure front already mirrors back; call Invalidate before retrying.
func (s *Screen) Flush() error {
	buf := s.scratch[:0]

	lastX, lastY := -2, -2
	var fg, bg colorMemo
	var attr Attr
	attrValid := false

	for y := 0; y < s.height; y++ {
		row := y * s.width
		for x := 0; x < s.width; x++ {
			idx := row + x
			c := s.back[idx]

			if !s.forceAll && c == s.front[idx] {
				continue
			}

			if x != lastX+1 || y != lastY {
				buf = appendCursorPos(buf, x, y)
			}

			// SGR 0 also resets colors, so both memos are invalidated
			if !attrValid || c.Attrs != attr {
				buf = appendAttrs(buf, c.Attrs)
				attr = c.Attrs
				attrValid = true
				fg = colorMemo{c: ColorDefault, valid: true}
				bg = colorMemo{c: ColorDefault, valid: true}
			}

			if !fg.valid || c.Fg != fg.c {
				buf = appendFg(buf, c.Fg)
				fg = colorMemo{c: c.Fg, valid: true}
			}
			if !bg.valid || c.Bg != bg.c {
				buf = appendBg(buf, c.Bg)
				bg = colorMemo{c: c.Bg, valid: true}
			}

			r := c.Rune
			if r < 0x20 || r == 0x7f {
				r = ' '
			}
			if r < utf8.RuneSelf {
				buf = append(buf, byte(r))
			} else {
				buf = utf8.AppendRune(buf, r)
			}

			s.front[idx] = c
			lastX, lastY = x, y
		}
	}

	s.forceAll = false
	s.scratch = buf[:0]

	if len(buf) == 0 {
		return nil
	}
	if _, err := s.out.Write(buf); err != nil {
		return fmt.Errorf("terminal: flush: %w", err)
	}
	return nil
}
