//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type unixBackend struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int
	saved *unix.Termios
}

func newBackend() Backend {
	return &unixBackend{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}
}

func (b *unixBackend) Init() error {
	if !term.IsTerminal(b.inFd) {
		return ErrNotTerminal
	}

	saved, err := unix.IoctlGetTermios(b.inFd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("terminal: get termios: %w", err)
	}

	raw := *saved
	raw.Iflag &^= unix.ICRNL | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cflag |= unix.CS8
	// Reads return immediately with whatever is available
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(b.inFd, ioctlSetTermios, &raw); err != nil {
		return fmt.Errorf("terminal: set raw mode: %w", err)
	}
	b.saved = saved
	return nil
}

func (b *unixBackend) Fini() error {
	if b.saved == nil {
		return nil
	}
	err := unix.IoctlSetTermios(b.inFd, ioctlSetTermios, b.saved)
	b.saved = nil
	if err != nil {
		return fmt.Errorf("terminal: restore termios: %w", err)
	}
	return nil
}

func (b *unixBackend) Size() (int, int, error) {
	return term.GetSize(b.outFd)
}

func (b *unixBackend) Read(p []byte) (int, error) {
	for {
		n, err := unix.Read(b.inFd, p)
		if err == unix.EINTR {
			continue
		}
		if err == unix.EAGAIN {
			return 0, nil
		}
		return max(n, 0), err
	}
}

func (b *unixBackend) Write(p []byte) error {
	for len(p) > 0 {
		n, err := b.out.Write(p)
		if err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}

// resetTerminalMode attempts to restore terminal to cooked mode
// Best-effort for crash recovery; errors ignored
func resetTerminalMode() {
	// Try to restore via /dev/tty (works even if stdin redirected)
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()
	fd := int(tty.Fd())
	if termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios); err == nil {
		termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
		termios.Iflag |= unix.ICRNL | unix.IXON
		termios.Oflag |= unix.OPOST
		_ = unix.IoctlSetTermios(fd, ioctlSetTermios, termios)
	}
}
