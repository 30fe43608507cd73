// ABOUTME: Linux ioctl request numbers for reading and applying termios settings.
// ABOUTME: TCSETSF matches tcsetattr(TCSAFLUSH): drain output, discard pending input.

//go:build linux

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlGetTermios = unix.TCGETS
	ioctlSetTermios = unix.TCSETSF
)
