//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

type unsupportedBackend struct{}

func newBackend() Backend { return unsupportedBackend{} }

func (unsupportedBackend) Init() error                { return ErrUnsupported }
func (unsupportedBackend) Fini() error                { return nil }
func (unsupportedBackend) Size() (int, int, error)    { return 0, 0, ErrUnsupported }
func (unsupportedBackend) Read(p []byte) (int, error) { return 0, nil }
func (unsupportedBackend) Write(p []byte) error       { return ErrUnsupported }

func resetTerminalMode() {}
