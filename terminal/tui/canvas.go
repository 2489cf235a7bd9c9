package tui

import "github.com/lixenwraith/cellterm/terminal"

// Canvas is the drawing surface handed to drawables.
// Out-of-range coordinates must be ignored.
type Canvas interface {
	PutChar(x, y int, r rune)
	SetForeground(x, y int, c terminal.Color)
	SetBackground(x, y int, c terminal.Color)
	SetAttr(x, y int, a terminal.Attr)
	Cell(x, y int) (terminal.Cell, bool)
}

var _ Canvas = (*terminal.Screen)(nil)

// Drawable renders itself into the box it is given
type Drawable interface {
	Draw(c Canvas, box BBox)
}

// DrawFunc adapts a function to Drawable
type DrawFunc func(c Canvas, box BBox)

// Draw calls f
func (f DrawFunc) Draw(c Canvas, box BBox) { f(c, box) }

// BBox is a rectangle in absolute canvas coordinates
type BBox struct {
	X, Y int
	W, H int
}

// Empty reports a box with no cells
func (b BBox) Empty() bool {
	return b.W <= 0 || b.H <= 0
}

// Contains reports whether (x, y) lies inside the box
func (b BBox) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Inset shrinks the box by n cells on every side, clamping size at zero
func (b BBox) Inset(n int) BBox {
	return BBox{
		X: b.X + n,
		Y: b.Y + n,
		W: max(b.W-2*n, 0),
		H: max(b.H-2*n, 0),
	}
}
