// Package terminal provides direct ANSI terminal control for cell-grid applications.
//
// Features:
//   - Raw, non-blocking terminal session with guaranteed restoration
//   - Incremental input decoding (CSI, SS3, SGR mouse, Alt prefix, UTF-8)
//   - Double-buffered cell grid with minimal differential flush
//   - 24-bit foreground/background color, SGR attributes
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
//
// No goroutines are started and no locks are taken: a Session, Decoder and Screen
// each assume a single owner. Callers sharing them across goroutines must serialize.
package terminal
