package main

import (
	"context"
	"time"

	"github.com/lixenwraith/cellterm/terminal"
)

// maxEventsPerTick bounds input handling so a flood cannot starve rendering
const maxEventsPerTick = 256

// drainEvents hands every complete buffered event to fn until input runs dry.
// Returns false as soon as fn asks to stop.
func drainEvents(dec *terminal.Decoder, fn func(terminal.Event) bool) bool {
	for i := 0; i < maxEventsPerTick; i++ {
		before := dec.Buffered()
		ev, ok := dec.Poll()
		if ok {
			if !fn(ev) {
				return false
			}
			continue
		}
		// Nothing new arrived and what remains is an incomplete sequence
		if after := dec.Buffered(); after == 0 || after == before {
			return true
		}
	}
	return true
}

// runLoop polls input, renders and flushes once per tick until handle returns false
// or ctx is cancelled
func runLoop(ctx context.Context, tick time.Duration, dec *terminal.Decoder, scr *terminal.Screen,
	handle func(terminal.Event) bool, render func(*terminal.Screen)) error {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		if !drainEvents(dec, handle) {
			return nil
		}

		scr.Clear()
		render(scr)
		if err := scr.Flush(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
