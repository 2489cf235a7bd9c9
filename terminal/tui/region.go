package tui

import "github.com/lixenwraith/cellterm/terminal"

// Region represents a rectangular area of a canvas.
// All coordinates are relative to the region's origin and clipped to its bounds.
type Region struct {
	C    Canvas
	X, Y int // Absolute position on the canvas
	W, H int // Region dimensions
}

// NewRegion creates a region covering box on c
func NewRegion(c Canvas, box BBox) Region {
	return Region{
		C: c,
		X: box.X,
		Y: box.Y,
		W: max(box.W, 0),
		H: max(box.H, 0),
	}
}

// Sub returns a nested region at (x, y) relative to r, clipped to r
func (r Region) Sub(x, y, w, h int) Region {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, r.W), min(y+h, r.H)
	return Region{
		C: r.C,
		X: r.X + x0,
		Y: r.Y + y0,
		W: max(x1-x0, 0),
		H: max(y1-y0, 0),
	}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Box returns the absolute bounds of the region
func (r Region) Box() BBox {
	return BBox{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// Cell sets one cell; coordinates outside the region are ignored
func (r Region) Cell(x, y int, ch rune, fg, bg terminal.Color, attr terminal.Attr) {
	if uint(x) >= uint(r.W) || uint(y) >= uint(r.H) {
		return
	}
	x, y = r.X+x, r.Y+y
	r.C.PutChar(x, y, ch)
	r.C.SetForeground(x, y, fg)
	r.C.SetBackground(x, y, bg)
	r.C.SetAttr(x, y, attr)
}

// Fill fills entire region with background color
func (r Region) Fill(bg terminal.Color) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', terminal.ColorDefault, bg, terminal.AttrNone)
		}
	}
}

// Text writes s at (x, y) on a single row, clipped to the region.
// Returns the number of cells used.
func (r Region) Text(x, y int, s string, fg, bg terminal.Color, attr terminal.Attr) int {
	if y < 0 || y >= r.H {
		return 0
	}
	n := 0
	for _, ch := range s {
		ch, ok := cellRune(ch)
		if !ok {
			continue
		}
		if x+n >= r.W {
			break
		}
		r.Cell(x+n, y, ch, fg, bg, attr)
		n++
	}
	return n
}

// Border draws border around region edge
func (r Region) Border(line LineType, fg terminal.Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	drawBorder(r.C, r.Box(), line, fg)
}

// Card draws titled border and returns inner content region
func (r Region) Card(title string, line LineType, fg, bg terminal.Color) Region {
	r.Fill(bg)
	r.Border(line, fg)

	if title != "" && r.W > 4 {
		displayTitle := Truncate(title, r.W-4)
		titleX := (r.W - Width(displayTitle) - 2) / 2
		r.Text(titleX, 0, " "+displayTitle+" ", fg, bg, terminal.AttrBold)
	}

	return r.Inset(1)
}
