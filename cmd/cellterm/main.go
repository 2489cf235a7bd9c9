// Command cellterm exercises the terminal engine: a split-pane demo, a decoded
// input monitor and a config dump.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Raw mode disables Ctrl+C signals; these arrive only from outside the terminal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
