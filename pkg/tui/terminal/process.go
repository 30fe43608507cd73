// ABOUTME: ProcessTerminal implements Terminal on top of a TTY file pair using termios ioctls.
// ABOUTME: Captures the line discipline once, applies raw mode, restores the snapshot exactly once.

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by a TTY (stdin/stdout by default).
type ProcessTerminal struct {
	mu    sync.Mutex
	in    *os.File
	out   *os.File
	inFd  int
	outFd int
	orig  *unix.Termios
	raw   bool
}

// NewProcessTerminal returns a ProcessTerminal reading os.Stdin and writing os.Stdout.
func NewProcessTerminal() *ProcessTerminal {
	return NewProcessTerminalFiles(os.Stdin, os.Stdout)
}

// NewProcessTerminalFiles returns a ProcessTerminal over an explicit input
// and output file, typically the two ends being the same TTY.
func NewProcessTerminalFiles(in, out *os.File) *ProcessTerminal {
	return &ProcessTerminal{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
	}
}

// IsTerminal reports whether the input side is an interactive terminal.
func (t *ProcessTerminal) IsTerminal() bool {
	return term.IsTerminal(t.inFd)
}

// CaptureSettings stores the current line-discipline configuration. Later
// calls keep the first snapshot.
func (t *ProcessTerminal) CaptureSettings() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.orig != nil {
		return nil
	}
	tio, err := unix.IoctlGetTermios(t.inFd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("tcgetattr: %w", err)
	}
	t.orig = tio
	return nil
}

// Settings returns a copy of the captured snapshot, or nil before capture.
func (t *ProcessTerminal) Settings() *unix.Termios {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.orig == nil {
		return nil
	}
	c := *t.orig
	return &c
}

// EnterRawMode applies MakeRaw to the captured snapshot.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.orig == nil {
		return fmt.Errorf("entering raw mode: %w", ErrNotCaptured)
	}
	raw := MakeRaw(*t.orig)
	if err := unix.IoctlSetTermios(t.inFd, ioctlSetTermios, &raw); err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}
	t.raw = true
	return nil
}

// ExitRawMode reapplies the captured snapshot. It is a no-op when raw mode
// is not active.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.raw || t.orig == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(t.inFd, ioctlSetTermios, t.orig); err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}
	t.raw = false
	return nil
}

// Size returns the terminal dimensions reported by the output device.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(t.outFd)
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Read reads input bytes. An expired raw-mode timeout, EAGAIN and EINTR all
// report (0, nil) so callers simply retry.
func (t *ProcessTerminal) Read(p []byte) (int, error) {
	n, err := unix.Read(t.inFd, p)
	if err != nil {
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
			return 0, nil
		}
		return 0, fmt.Errorf("read: %w", err)
	}
	if n < 0 {
		return 0, nil
	}
	return n, nil
}

// Write sends bytes to the output device.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("write: %w", err)
	}
	return n, nil
}
