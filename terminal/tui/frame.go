package tui

import "github.com/lixenwraith/cellterm/terminal"

// Orientation selects the axis of a split
type Orientation uint8

const (
	// Vertical splits with a vertical seam into left and right children
	Vertical Orientation = iota
	// Horizontal splits with a horizontal seam into top and bottom children
	Horizontal
)

// Default frame border style
const (
	DefaultLine = LineRounded
)

// DefaultBorderFg is the default frame border color
var DefaultBorderFg = terminal.ColorGray

// Frame is a node of the layout tree: a rectangle that is either a leaf or
// split into exactly two children sharing one row or column.
// Any node may hold drawables; the tree owns them.
type Frame struct {
	x, y int
	w, h int

	orient Orientation
	first  *Frame
	second *Frame

	drawables []Drawable

	line     LineType
	borderFg terminal.Color
}

// NewFrame creates a leaf frame of size w×h at (x, y); negative sizes become zero
func NewFrame(w, h, x, y int) *Frame {
	return &Frame{
		x:        x,
		y:        y,
		w:        max(w, 0),
		h:        max(h, 0),
		line:     DefaultLine,
		borderFg: DefaultBorderFg,
	}
}

// SetBorder sets line style and color for this frame and every existing descendant.
// Children created later inherit the style.
func (f *Frame) SetBorder(line LineType, fg terminal.Color) {
	f.walk(func(n *Frame) {
		n.line = line.valid()
		n.borderFg = fg
	})
}

// Split divides the frame at coord along o and returns the two children.
// Vertical: left width coord, right width w-coord+1 starting at x+coord-1.
// Horizontal is the transpose. coord is clamped to [1, size]; re-splitting
// replaces the previous children.
func (f *Frame) Split(coord int, o Orientation) (*Frame, *Frame) {
	size := f.w
	if o == Horizontal {
		size = f.h
	}

	coord = min(max(coord, 1), max(size, 1))
	firstSize := coord
	secondSize := size - coord + 1
	if size < 1 {
		firstSize, secondSize = 0, 0
	}

	var a, b *Frame
	if o == Vertical {
		a = NewFrame(firstSize, f.h, f.x, f.y)
		b = NewFrame(secondSize, f.h, f.x+coord-1, f.y)
	} else {
		a = NewFrame(f.w, firstSize, f.x, f.y)
		b = NewFrame(f.w, secondSize, f.x, f.y+coord-1)
	}
	a.line, a.borderFg = f.line, f.borderFg
	b.line, b.borderFg = f.line, f.borderFg

	f.orient = o
	f.first, f.second = a, b
	return a, b
}

// Add attaches a drawable, drawn in insertion order
func (f *Frame) Add(d Drawable) {
	f.drawables = append(f.drawables, d)
}

// Bounds returns the frame rectangle
func (f *Frame) Bounds() BBox {
	return BBox{X: f.x, Y: f.y, W: f.w, H: f.h}
}

// BBox returns the interior handed to drawables: the rectangle inset by one, clamped at zero
func (f *Frame) BBox() BBox {
	return f.Bounds().Inset(1)
}

// Children returns both children, nil for a leaf
func (f *Frame) Children() (*Frame, *Frame) {
	return f.first, f.second
}

// IsLeaf reports whether the frame has not been split
func (f *Frame) IsLeaf() bool {
	return f.first == nil
}

// Draw renders the tree in three post-order passes: borders, joints, drawables.
// Each pass completes over the whole tree before the next starts, so joints see
// every border and drawables paint over both.
func (f *Frame) Draw(c Canvas) {
	f.walk(func(n *Frame) { n.drawBorder(c) })
	f.walk(func(n *Frame) { n.drawJoints(c) })
	f.walk(func(n *Frame) { n.drawDrawables(c) })
}

// walk visits children before their parent
func (f *Frame) walk(fn func(*Frame)) {
	if f.first != nil {
		f.first.walk(fn)
		f.second.walk(fn)
	}
	fn(f)
}

func (f *Frame) drawBorder(c Canvas) {
	drawBorder(c, f.Bounds(), f.line, f.borderFg)
}

// drawJoints places tees where the second child's leading edge meets this frame's border
func (f *Frame) drawJoints(c Canvas) {
	if f.second == nil || f.w <= 0 || f.h <= 0 {
		return
	}

	if f.orient == Vertical {
		sx := f.second.x
		putJoint(c, sx, f.y, armLeft|armRight|armDown, f.line, f.borderFg)
		if f.h > 1 {
			putJoint(c, sx, f.y+f.h-1, armLeft|armRight|armUp, f.line, f.borderFg)
		}
		return
	}

	sy := f.second.y
	putJoint(c, f.x, sy, armUp|armDown|armRight, f.line, f.borderFg)
	if f.w > 1 {
		putJoint(c, f.x+f.w-1, sy, armUp|armDown|armLeft, f.line, f.borderFg)
	}
}

func (f *Frame) drawDrawables(c Canvas) {
	box := f.BBox()
	for _, d := range f.drawables {
		d.Draw(c, box)
	}
}
