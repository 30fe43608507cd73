// ABOUTME: BSD and darwin ioctl request numbers for reading and applying termios settings.
// ABOUTME: TIOCSETAF matches tcsetattr(TCSAFLUSH): drain output, discard pending input.

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlGetTermios = unix.TIOCGETA
	ioctlSetTermios = unix.TIOCSETAF
)
