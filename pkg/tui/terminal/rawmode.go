// ABOUTME: MakeRaw derives the raw-mode termios from a captured snapshot.
// ABOUTME: Byte-at-a-time input, no echo, no signals, no output processing, 100ms read timeout.

//go:build unix

package terminal

import "golang.org/x/sys/unix"

// ReadTimeoutDeciseconds is the VTIME value applied in raw mode (100ms).
const ReadTimeoutDeciseconds = 1

// MakeRaw returns a copy of orig with raw-mode flags applied. orig is not
// modified.
func MakeRaw(orig unix.Termios) unix.Termios {
	raw := orig

	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG

	// VMIN=0 with VTIME>0: read returns as soon as a byte arrives, or with
	// zero bytes once the timeout expires.
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = ReadTimeoutDeciseconds

	return raw
}
