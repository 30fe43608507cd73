// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Replays scripted input with explicit timeouts, captures output, tracks raw-mode calls.

package terminal

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

const positionQuery = "\x1b[6n"

// inputItem is either one input byte or a read timeout.
type inputItem struct {
	b       byte
	timeout bool
}

// VirtualTerminal is a fake Terminal for unit tests.
// Reads drain a scripted input queue; an exhausted queue reads as io.EOF.
type VirtualTerminal struct {
	mu       sync.Mutex
	buf      bytes.Buffer
	input    []inputItem
	width    int
	height   int
	sizeErr  error
	writeErr error

	captured     bool
	rawMode      bool
	captureCount int
	enterCount   int
	exitCount    int

	reportRow, reportCol int
	reportEnabled        bool
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{
		width:  width,
		height: height,
	}
}

// CaptureSettings records a settings capture.
func (v *VirtualTerminal) CaptureSettings() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.captured = true
	v.captureCount++
	return nil
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.captured {
		return fmt.Errorf("entering raw mode: %w", ErrNotCaptured)
	}
	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = false
	v.exitCount++
	return nil
}

// Size returns the configured terminal dimensions or the configured error.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.sizeErr != nil {
		return 0, 0, v.sizeErr
	}
	return v.width, v.height, nil
}

// Read returns queued input up to the next timeout marker. A pending
// timeout reads as (0, nil); an empty queue reads as io.EOF.
func (v *VirtualTerminal) Read(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(v.input) == 0 {
		return 0, io.EOF
	}
	if v.input[0].timeout {
		v.input = v.input[1:]
		return 0, nil
	}
	n := 0
	for n < len(p) && len(v.input) > 0 && !v.input[0].timeout {
		p[n] = v.input[0].b
		v.input = v.input[1:]
		n++
	}
	return n, nil
}

// Write appends data to the internal buffer. A cursor position query is
// answered by queueing a report when SetPositionReport was called.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.writeErr != nil {
		return 0, v.writeErr
	}
	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	if v.reportEnabled && bytes.Contains(p, []byte(positionQuery)) {
		v.pushLocked(fmt.Sprintf("\x1b[%d;%dR", v.reportRow, v.reportCol))
	}
	return n, nil
}

// --- Test helpers (not part of Terminal interface) ---

// Feed queues s as input bytes.
func (v *VirtualTerminal) Feed(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.pushLocked(s)
}

// FeedTimeout queues one expired read window.
func (v *VirtualTerminal) FeedTimeout() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.input = append(v.input, inputItem{timeout: true})
}

func (v *VirtualTerminal) pushLocked(s string) {
	for i := 0; i < len(s); i++ {
		v.input = append(v.input, inputItem{b: s[i]})
	}
}

// SetPositionReport makes the terminal answer ESC[6n with ESC[row;colR.
func (v *VirtualTerminal) SetPositionReport(row, col int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.reportRow, v.reportCol = row, col
	v.reportEnabled = true
}

// SetSizeError makes Size fail with err.
func (v *VirtualTerminal) SetSizeError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.sizeErr = err
}

// SetWriteError makes every Write fail with err.
func (v *VirtualTerminal) SetWriteError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writeErr = err
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// CaptureCount returns how many times CaptureSettings was called.
func (v *VirtualTerminal) CaptureCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.captureCount
}

// EnterCount returns how many times EnterRawMode was called.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// SetSize updates the reported terminal dimensions.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.width = width
	v.height = height
}
