package tui

import "github.com/lixenwraith/cellterm/terminal"

type panelItemKind uint8

const (
	panelEmpty panelItemKind = iota
	panelText
	panelValue
)

type panelItem struct {
	kind  panelItemKind
	text  string
	value func() string
}

// Panel is a drawable list of lines; value lines are re-evaluated on every draw
type Panel struct {
	items []panelItem

	Fg      terminal.Color
	LabelFg terminal.Color
	Bg      terminal.Color
}

// NewPanel creates an empty panel using default colors
func NewPanel() *Panel {
	return &Panel{}
}

// AddEmpty appends a blank line
func (p *Panel) AddEmpty() {
	p.items = append(p.items, panelItem{kind: panelEmpty})
}

// AddText appends a static line
func (p *Panel) AddText(text string) {
	p.items = append(p.items, panelItem{kind: panelText, text: text})
}

// AddValue appends a "label: value" line with value computed at draw time
func (p *Panel) AddValue(label string, value func() string) {
	p.items = append(p.items, panelItem{kind: panelValue, text: label, value: value})
}

// Len returns the number of lines
func (p *Panel) Len() int {
	return len(p.items)
}

// Draw renders one item per row from the top of box; rows beyond the box are dropped
func (p *Panel) Draw(c Canvas, box BBox) {
	r := NewRegion(c, box)
	for i, item := range p.items {
		if i >= r.H {
			break
		}
		switch item.kind {
		case panelText:
			r.Text(0, i, Truncate(item.text, r.W), p.Fg, p.Bg, terminal.AttrNone)
		case panelValue:
			label := item.text + ": "
			n := r.Text(0, i, Truncate(label, r.W), p.LabelFg, p.Bg, terminal.AttrNone)
			if item.value != nil && n < r.W {
				r.Text(n, i, Truncate(item.value(), r.W-n), p.Fg, p.Bg, terminal.AttrBold)
			}
		}
	}
}
