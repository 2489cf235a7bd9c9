package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var (
	// ErrNotTerminal is returned by Open when stdin is not a terminal
	ErrNotTerminal = errors.New("terminal: not a terminal")

	// ErrUnsupported is returned on platforms without a termios backend
	ErrUnsupported = errors.New("terminal: platform not supported")
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// Session holds exclusive raw control of the terminal until Close.
// It implements io.Reader (non-blocking) and io.Writer so it can feed a Decoder
// and back a Screen directly.
type Session struct {
	backend Backend
	logger  *log.Logger
	mouse   bool

	width  int
	height int
	closed bool
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the session logger; nil keeps the session silent
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithMouse toggles any-motion SGR mouse reporting, enabled by default
func WithMouse(enabled bool) Option {
	return func(s *Session) { s.mouse = enabled }
}

// WithBackend replaces the platform backend
func WithBackend(b Backend) Option {
	return func(s *Session) { s.backend = b }
}

// Open enters raw mode, switches to the alternate screen, hides the cursor,
// enables mouse reporting and clears the screen.
// On failure the terminal is left in its original mode.
func Open(opts ...Option) (*Session, error) {
	s := &Session{mouse: true}
	for _, opt := range opts {
		opt(s)
	}
	if s.backend == nil {
		s.backend = newBackend()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	if err := s.backend.Init(); err != nil {
		_ = s.backend.Fini()
		return nil, fmt.Errorf("terminal: open: %w", err)
	}

	w, h, err := s.backend.Size()
	if err != nil || w <= 0 || h <= 0 {
		s.logger.Debug("terminal size unavailable, using fallback",
			"width", fallbackWidth, "height", fallbackHeight, "err", err)
		w, h = fallbackWidth, fallbackHeight
	}
	s.width, s.height = w, h

	buf := make([]byte, 0, 64)
	buf = append(buf, csiAltScreenEnter...)
	buf = append(buf, csiCursorHide...)
	buf = append(buf, csiAutoWrapOff...)
	if s.mouse {
		buf = append(buf, csiMouseOn...)
	}
	buf = append(buf, csiClear...)

	if err := s.backend.Write(buf); err != nil {
		// Raw mode is already active; undo whatever part of the setup reached the terminal
		_ = s.backend.Write(restoreSequence(s.mouse))
		_ = s.backend.Fini()
		return nil, fmt.Errorf("terminal: open: %w", err)
	}

	s.logger.Debug("terminal session opened", "width", w, "height", h, "mouse", s.mouse)
	return s, nil
}

// restoreSequence undoes the screen setup done by Open
func restoreSequence(mouse bool) []byte {
	buf := make([]byte, 0, 64)
	buf = append(buf, csiSGR0...)
	if mouse {
		buf = append(buf, csiMouseOff...)
	}
	buf = append(buf, csiCursorShow...)
	buf = append(buf, csiAutoWrapOn...)
	buf = append(buf, csiAltScreenExit...)
	return buf
}

// Close resets attributes, disables mouse reporting, shows the cursor, leaves the
// alternate screen and restores the saved terminal mode.
// Mode restoration runs even when the output write fails. Close is idempotent.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if err := s.backend.Write(restoreSequence(s.mouse)); err != nil {
		s.logger.Warn("terminal restore sequence failed", "err", err)
		errs = append(errs, fmt.Errorf("terminal: close: %w", err))
	}
	if err := s.backend.Fini(); err != nil {
		s.logger.Warn("terminal mode restore failed", "err", err)
		errs = append(errs, err)
	}
	s.logger.Debug("terminal session closed")
	return errors.Join(errs...)
}

// Size returns the grid dimensions established at Open
func (s *Session) Size() (width, height int) {
	return s.width, s.height
}

// Read returns immediately available input bytes, never blocking
func (s *Session) Read(p []byte) (int, error) {
	if s.closed {
		return 0, io.EOF
	}
	return s.backend.Read(p)
}

// Write sends raw bytes to the terminal
func (s *Session) Write(p []byte) (int, error) {
	if s.closed {
		return 0, os.ErrClosed
	}
	if err := s.backend.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// NewScreen creates a screen sized to the session that flushes to it
func (s *Session) NewScreen() *Screen {
	return NewScreen(s, s.width, s.height)
}

// NewDecoder creates a decoder polling the session input
func (s *Session) NewDecoder() *Decoder {
	return NewDecoder(s)
}

// Run opens a session, calls fn and closes the session on every exit path.
// A panic in fn restores the terminal first and is then propagated.
func Run(fn func(*Session) error, opts ...Option) error {
	s, err := Open(opts...)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			_ = s.Close()
			panic(r)
		}
	}()

	fnErr := fn(s)
	return errors.Join(fnErr, s.Close())
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Close cannot be called normally
func EmergencyReset(w io.Writer) {
	_, _ = w.Write(restoreSequence(true))
	_, _ = w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		_ = f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
