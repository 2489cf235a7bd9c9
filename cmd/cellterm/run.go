package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/cellterm/input"
	"github.com/lixenwraith/cellterm/terminal"
	"github.com/lixenwraith/cellterm/terminal/tui"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the split-pane demo (default)",
		Long: `Run the split-pane demo.

Left pane is a paint canvas: left mouse button paints, right button erases,
clicking a palette swatch below it changes the ink,
arrows or hjkl move the cursor and space toggles the cell under it.
c clears, b cycles the border style, Esc opens the menu, q or Ctrl+C quits.
Bindings other than Ctrl+C can be changed in the [keys] config table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), a)
		},
	}
}

// paletteHeight is the palette strip height including its borders
const paletteHeight = 3

// lineCycle is the order "Cycle border style" walks through
var lineCycle = []tui.LineType{tui.LineRounded, tui.LineSingle, tui.LineDouble, tui.LineHeavy}

// demo holds the widgets and counters of one demo run
type demo struct {
	app  *app
	root *tui.Frame

	keys    *input.KeyTable
	canvas  *paintCanvas
	palette *palette
	events  *eventLog
	menu    *tui.Menu

	menuOpen bool
	quit     bool
	line     tui.LineType

	frames    int
	eventsIn  int
	lastEvent string
}

func runDemo(ctx context.Context, a *app) error {
	a.logger.Info("starting demo", "tick", a.cfg.Tick, "mouse", a.cfg.Mouse)

	err := terminal.Run(func(sess *terminal.Session) error {
		w, h := sess.Size()
		a.logger.Debug("session open", "width", w, "height", h)

		d := newDemo(a, w, h)
		scr := sess.NewScreen()
		dec := sess.NewDecoder()
		return runLoop(ctx, a.cfg.Tick, dec, scr, d.handle, d.render)
	}, terminal.WithLogger(a.logger), terminal.WithMouse(a.cfg.Mouse))

	if err != nil {
		a.logger.Error("demo failed", "err", err)
		return err
	}
	a.logger.Info("demo finished")
	return nil
}

func newDemo(a *app, w, h int) *demo {
	cfg := a.cfg
	d := &demo{
		app:    a,
		line:   cfg.Line,
		keys:   cfg.Keys,
		canvas: newPaintCanvas(cfg.Bg, cfg.Accent, cfg.Fg),
		events: newEventLog(64, cfg.Fg),
	}
	if !cfg.Bg.IsSet() {
		d.canvas.from = terminal.ColorBlack
	}
	if !cfg.Fg.IsSet() {
		d.canvas.ink = terminal.ColorWhite
	}

	d.palette = newPalette([]terminal.Color{
		d.canvas.ink, cfg.Accent, terminal.ColorRed, terminal.ColorGreen,
		terminal.ColorBlue, terminal.ColorCyan, terminal.ColorMagenta,
	}, func(c terminal.Color) { d.canvas.ink = c })

	// Left two thirds paint canvas over palette strip, right column stats over event log
	d.root = tui.NewFrame(w, h, 0, 0)
	left, right := d.root.Split(w*2/3, tui.Vertical)
	canvas, strip := left.Split(h-paletteHeight+1, tui.Horizontal)
	stats, events := right.Split(h/2, tui.Horizontal)
	d.root.SetBorder(cfg.Line, cfg.BorderFg)

	canvas.Add(d.canvas)
	strip.Add(d.palette)
	stats.Add(d.statsPanel(w, h))
	events.Add(d.events)

	d.menu = tui.NewMenu("Menu")
	d.menu.AddEntry("Resume", true, func() { d.menuOpen = false })
	d.menu.AddEntry("Clear canvas", true, func() {
		d.canvas.clear()
		d.menuOpen = false
	})
	d.menu.AddEntry("Cycle border style", true, d.cycleBorder)
	d.menu.AddSeparator()
	d.menu.AddEntry("Quit", true, func() { d.quit = true })
	d.menu.MarkerFg = cfg.Accent
	return d
}

func (d *demo) statsPanel(w, h int) *tui.Panel {
	p := tui.NewPanel()
	p.Fg = d.app.cfg.Fg
	p.LabelFg = d.app.cfg.BorderFg
	p.AddText("cellterm")
	p.AddEmpty()
	p.AddValue("size", func() string { return fmt.Sprintf("%dx%d", w, h) })
	p.AddValue("frames", func() string { return fmt.Sprint(d.frames) })
	p.AddValue("events", func() string { return fmt.Sprint(d.eventsIn) })
	p.AddValue("last", func() string { return d.lastEvent })
	p.AddValue("border", func() string { return d.line.String() })
	p.AddValue("mouse", func() string {
		if d.app.cfg.Mouse {
			return "on"
		}
		return "off"
	})
	return p
}

func (d *demo) cycleBorder() {
	next := lineCycle[0]
	for i, l := range lineCycle {
		if l == d.line {
			next = lineCycle[(i+1)%len(lineCycle)]
			break
		}
	}
	d.line = next
	d.root.SetBorder(d.line, d.app.cfg.BorderFg)
	d.app.logger.Debug("border style", "line", d.line)
}

// handle routes one event and returns false when the demo should exit
func (d *demo) handle(ev terminal.Event) bool {
	d.eventsIn++
	d.lastEvent = ev.String()
	if ev.Type == terminal.EventKey {
		d.events.add(d.lastEvent)
	}

	// Ctrl+C always exits, whatever the key table says
	if ev.IsCtrl('c') {
		return false
	}

	act := d.keys.Lookup(ev)
	switch {
	case act == input.ActionMenu:
		d.menuOpen = !d.menuOpen
	case d.menuOpen:
		d.menu.HandleKey(ev)
	case act == input.ActionQuit:
		return false
	case act == input.ActionCycleBorder:
		d.cycleBorder()
	case act != input.ActionNone:
		d.canvas.apply(act)
	case d.palette.handle(ev):
	default:
		d.canvas.handle(ev)
	}
	return !d.quit
}

func (d *demo) render(scr *terminal.Screen) {
	d.frames++
	d.root.Draw(scr)
	if d.menuOpen {
		d.menu.Draw(scr, d.root.Bounds())
	}
}
