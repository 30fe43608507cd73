// ABOUTME: Defines the Terminal interface for raw mode, size queries, input and output.
// ABOUTME: Abstracts the controlling TTY so the loop can target real or virtual terminals.

package terminal

import "errors"

// ErrNotCaptured is returned by EnterRawMode when CaptureSettings has not
// been called first.
var ErrNotCaptured = errors.New("terminal settings not captured")

// Terminal abstracts the low-level operations the editor needs from the
// controlling terminal.
//
// Read follows the raw-mode timeout policy: when no byte arrives within the
// read window it returns (0, nil) rather than blocking forever.
type Terminal interface {
	CaptureSettings() error
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
}
