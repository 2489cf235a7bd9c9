package tui

import "github.com/lixenwraith/cellterm/terminal"

type menuEntry struct {
	name       string
	separator  bool
	selectable bool
	action     func()
}

// Menu is a vertical list of entries with a movable selection.
// Draw centers it in the box it is given as a bordered card.
type Menu struct {
	Title string

	entries  []menuEntry
	selected int

	Line       LineType
	Fg         terminal.Color
	DisabledFg terminal.Color
	MarkerFg   terminal.Color
	Bg         terminal.Color
}

// NewMenu creates an empty menu with no selection
func NewMenu(title string) *Menu {
	return &Menu{
		Title:      title,
		selected:   -1,
		Line:       LineRounded,
		Fg:         terminal.ColorWhite,
		DisabledFg: terminal.ColorGray,
		MarkerFg:   terminal.ColorYellow,
	}
}

// AddEntry appends an entry; the first selectable entry becomes selected
func (m *Menu) AddEntry(name string, selectable bool, action func()) {
	m.entries = append(m.entries, menuEntry{name: name, selectable: selectable, action: action})
	if selectable && m.selected < 0 {
		m.selected = len(m.entries) - 1
	}
}

// AddSeparator appends a blank, unselectable row
func (m *Menu) AddSeparator() {
	m.entries = append(m.entries, menuEntry{separator: true})
}

// Selected returns the selected entry index, -1 when none
func (m *Menu) Selected() int {
	return m.selected
}

// MoveUp selects the nearest selectable entry above the current one
func (m *Menu) MoveUp() {
	if m.selected < 0 {
		m.MoveDown()
		return
	}
	for i := m.selected - 1; i >= 0; i-- {
		if m.entries[i].selectable {
			m.selected = i
			return
		}
	}
}

// MoveDown selects the nearest selectable entry below the current one
func (m *Menu) MoveDown() {
	for i := m.selected + 1; i < len(m.entries); i++ {
		if m.entries[i].selectable {
			m.selected = i
			return
		}
	}
}

// Select runs the action of the selected entry
func (m *Menu) Select() {
	if m.selected < 0 || m.selected >= len(m.entries) {
		return
	}
	if action := m.entries[m.selected].action; action != nil {
		action()
	}
}

// HandleKey applies navigation keys and reports whether the event was consumed
func (m *Menu) HandleKey(ev terminal.Event) bool {
	if ev.Type != terminal.EventKey {
		return false
	}
	switch {
	case ev.Key == terminal.KeyUp, ev.IsRune('k'):
		m.MoveUp()
	case ev.Key == terminal.KeyDown, ev.IsRune('j'):
		m.MoveDown()
	case ev.Key == terminal.KeyEnter:
		m.Select()
	default:
		return false
	}
	return true
}

// size returns the card dimensions including border and marker column
func (m *Menu) size() (w, h int) {
	inner := 10
	for _, e := range m.entries {
		// Name, space, marker
		inner = max(inner, Width(e.name)+2)
	}
	inner = max(inner, Width(m.Title)+2)
	return inner + 4, len(m.entries) + 2
}

// Draw renders the menu card centered in box, clipped to it
func (m *Menu) Draw(c Canvas, box BBox) {
	w, h := m.size()
	w, h = min(w, box.W), min(h, box.H)
	if w <= 0 || h <= 0 {
		return
	}

	card := NewRegion(c, BBox{
		X: box.X + (box.W-w)/2,
		Y: box.Y + (box.H-h)/2,
		W: w,
		H: h,
	})
	content := card.Card(m.Title, m.Line, m.Fg, m.Bg).Sub(1, 0, w-4, h-2)

	for i, e := range m.entries {
		if e.separator {
			continue
		}
		fg := m.DisabledFg
		if e.selectable {
			fg = m.Fg
		}
		n := content.Text(0, i, e.name, fg, m.Bg, terminal.AttrNone)
		if i == m.selected {
			content.Text(n+1, i, "<", m.MarkerFg, m.Bg, terminal.AttrBold)
		}
	}
}
