package main

import (
	"github.com/lixenwraith/cellterm/input"
	"github.com/lixenwraith/cellterm/terminal"
	"github.com/lixenwraith/cellterm/terminal/tui"
)

// paintCanvas is a gradient surface the user paints on with the mouse or keyboard
type paintCanvas struct {
	from, to terminal.Color
	ink      terminal.Color

	painted map[[2]int]struct{}
	cx, cy  int

	// box is the area of the last draw, used for mouse hit testing
	box tui.BBox
}

func newPaintCanvas(from, to, ink terminal.Color) *paintCanvas {
	return &paintCanvas{
		from:    from,
		to:      to,
		ink:     ink,
		painted: make(map[[2]int]struct{}),
	}
}

func (p *paintCanvas) Draw(c tui.Canvas, box tui.BBox) {
	p.box = box
	if box.Empty() {
		return
	}
	p.clampCursor()

	for y := 0; y < box.H; y++ {
		for x := 0; x < box.W; x++ {
			t := 0.0
			if box.W > 1 {
				t = float64(x) / float64(box.W-1)
			}
			ax, ay := box.X+x, box.Y+y
			c.SetBackground(ax, ay, terminal.Blend(p.from, p.to, t))
			if _, ok := p.painted[[2]int{x, y}]; ok {
				c.PutChar(ax, ay, '█')
				c.SetForeground(ax, ay, p.ink)
			}
		}
	}

	c.PutChar(box.X+p.cx, box.Y+p.cy, '@')
	c.SetForeground(box.X+p.cx, box.Y+p.cy, p.ink)
	c.SetAttr(box.X+p.cx, box.Y+p.cy, terminal.AttrBold)
}

// handle applies a mouse event and reports whether it was consumed
func (p *paintCanvas) handle(ev terminal.Event) bool {
	if ev.Type != terminal.EventMouse || !p.box.Contains(ev.MouseX, ev.MouseY) {
		return false
	}

	pos := [2]int{ev.MouseX - p.box.X, ev.MouseY - p.box.Y}
	held := ev.MouseAction == terminal.MouseActionPress || ev.MouseAction == terminal.MouseActionDrag
	switch {
	case held && ev.MouseBtn == terminal.MouseBtnLeft:
		p.painted[pos] = struct{}{}
	case held && ev.MouseBtn == terminal.MouseBtnRight:
		delete(p.painted, pos)
	case ev.MouseAction == terminal.MouseActionMove:
		p.cx, p.cy = pos[0], pos[1]
	default:
		return false
	}
	return true
}

// apply runs a keyboard action and reports whether it belongs to the canvas
func (p *paintCanvas) apply(a input.Action) bool {
	switch a {
	case input.ActionCursorUp:
		p.cy--
	case input.ActionCursorDown:
		p.cy++
	case input.ActionCursorLeft:
		p.cx--
	case input.ActionCursorRight:
		p.cx++
	case input.ActionPaint:
		pos := [2]int{p.cx, p.cy}
		if _, ok := p.painted[pos]; ok {
			delete(p.painted, pos)
		} else {
			p.painted[pos] = struct{}{}
		}
	case input.ActionClear:
		p.clear()
	default:
		return false
	}
	p.clampCursor()
	return true
}

// clampCursor keeps the keyboard cursor inside the last drawn box
func (p *paintCanvas) clampCursor() {
	p.cx = min(max(p.cx, 0), max(p.box.W-1, 0))
	p.cy = min(max(p.cy, 0), max(p.box.H-1, 0))
}

func (p *paintCanvas) clear() {
	clear(p.painted)
}

// eventLog shows the most recent lines, newest at the bottom
type eventLog struct {
	lines []string
	limit int
	fg    terminal.Color
}

func newEventLog(limit int, fg terminal.Color) *eventLog {
	return &eventLog{limit: limit, fg: fg}
}

func (l *eventLog) add(s string) {
	if len(l.lines) >= l.limit {
		copy(l.lines, l.lines[1:])
		l.lines = l.lines[:l.limit-1]
	}
	l.lines = append(l.lines, s)
}

func (l *eventLog) Draw(c tui.Canvas, box tui.BBox) {
	r := tui.NewRegion(c, box)
	start := max(len(l.lines)-r.H, 0)
	for i, line := range l.lines[start:] {
		r.Text(0, i, tui.Truncate(line, r.W), l.fg, terminal.ColorDefault, terminal.AttrNone)
	}
}

// palette is a row of color swatches; clicking one selects the canvas ink
type palette struct {
	grid     *tui.Grid
	colors   []terminal.Color
	selected int
	box      tui.BBox
	pick     func(terminal.Color)
}

func newPalette(colors []terminal.Color, pick func(terminal.Color)) *palette {
	p := &palette{
		grid:   tui.NewGrid(len(colors), 1),
		colors: colors,
		pick:   pick,
	}
	for i, col := range colors {
		p.grid.Set(i, 0, func(c tui.Canvas, x, y int) {
			for dx := -1; dx <= 1; dx++ {
				c.PutChar(x+dx, y, '█')
				c.SetForeground(x+dx, y, col)
			}
			if i == p.selected {
				c.PutChar(x-2, y, '[')
				c.PutChar(x+2, y, ']')
			}
		})
	}
	return p
}

func (p *palette) Draw(c tui.Canvas, box tui.BBox) {
	p.box = box
	p.grid.Draw(c, box)
}

// handle selects the swatch under a left click
func (p *palette) handle(ev terminal.Event) bool {
	if ev.Type != terminal.EventMouse || ev.MouseBtn != terminal.MouseBtnLeft ||
		ev.MouseAction != terminal.MouseActionPress {
		return false
	}
	col, _, ok := p.grid.CellAt(p.box, ev.MouseX, ev.MouseY)
	if !ok {
		return false
	}
	p.selected = col
	p.pick(p.colors[col])
	return true
}
