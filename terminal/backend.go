package terminal

// Backend abstracts the platform-specific side of a terminal session.
// The unix backend drives termios directly; other platforms report ErrUnsupported.
type Backend interface {
	// Init saves the current terminal mode and switches to raw, non-blocking input
	Init() error

	// Fini restores the mode saved by Init; safe to call when Init failed or never ran
	Fini() error

	// Size reports the terminal dimensions in cells
	Size() (width, height int, err error)

	// Read returns whatever input is immediately available, 0 bytes when none
	Read(p []byte) (int, error)

	// Write writes raw bytes to the terminal output
	Write(p []byte) error
}
