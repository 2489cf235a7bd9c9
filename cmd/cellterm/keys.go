package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/cellterm/input"
	"github.com/lixenwraith/cellterm/terminal"
	"github.com/lixenwraith/cellterm/terminal/tui"
)

func newKeysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Show decoded key and mouse events",
		Long: `Show decoded key and mouse events as the decoder reports them.
Useful for checking what a terminal sends for a given key chord and which
demo action it is bound to.
Ctrl+C or Ctrl+Q exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(cmd.Context(), a)
		},
	}
}

const keysLogSize = 200

func runKeys(ctx context.Context, a *app) error {
	return terminal.Run(func(sess *terminal.Session) error {
		w, h := sess.Size()
		scr := sess.NewScreen()
		dec := sess.NewDecoder()

		history := newEventLog(keysLogSize, a.cfg.Fg)
		var last terminal.Event
		count := 0

		handle := func(ev terminal.Event) bool {
			if ev.IsCtrl('c') || ev.IsCtrl('q') {
				return false
			}
			count++
			last = ev
			line := fmt.Sprintf("%5d  %-32s", count, ev)
			if act := a.cfg.Keys.Lookup(ev); act != input.ActionNone {
				line += " -> " + act.String()
			}
			history.add(line)
			a.logger.Debug("event", "n", count, "event", ev.String(),
				"key", terminal.KeyName(ev.Key), "rune", ev.Rune, "mods", ev.Modifiers)
			return true
		}

		render := func(s *terminal.Screen) {
			r := tui.NewRegion(s, tui.BBox{W: w, H: h})
			body := r.Card("Input monitor (Ctrl+C / Ctrl+Q to quit)", a.cfg.Line, a.cfg.BorderFg, a.cfg.Bg)
			if body.H < 3 {
				history.Draw(s, body.Box())
				return
			}

			body.Text(0, 0, "last: "+describe(last), a.cfg.Accent, a.cfg.Bg, terminal.AttrBold)
			history.Draw(s, body.Sub(0, 2, body.W, body.H-2).Box())
		}

		return runLoop(ctx, a.cfg.Tick, dec, scr, handle, render)
	}, terminal.WithLogger(a.logger), terminal.WithMouse(a.cfg.Mouse))
}

// describe expands an event into all its fields for the monitor header
func describe(ev terminal.Event) string {
	switch ev.Type {
	case terminal.EventKey:
		if ev.Key == terminal.KeyRune {
			return fmt.Sprintf("rune %q (U+%04X) mods=%q", ev.Rune, ev.Rune, ev.Modifiers.String())
		}
		return fmt.Sprintf("key %s mods=%q", terminal.KeyName(ev.Key), ev.Modifiers.String())
	case terminal.EventMouse:
		return fmt.Sprintf("mouse %s %s at %d,%d mods=%q",
			ev.MouseBtn, ev.MouseAction, ev.MouseX, ev.MouseY, ev.Modifiers.String())
	default:
		return "none"
	}
}
