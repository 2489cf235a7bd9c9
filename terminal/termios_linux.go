//go:build linux

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlGetTermios = unix.TCGETS
	// TCSETSF drains output and flushes pending input before applying
	ioctlSetTermios = unix.TCSETSF
)
