// ABOUTME: GetWindowSize asks the device for its size, falling back to a cursor probe.
// ABOUTME: The probe parks the cursor bottom-right and reads back its reported position.

package terminal

import (
	"errors"
	"fmt"
	"io"

	"github.com/mauromedda/rawtty/internal/log"
	"github.com/mauromedda/rawtty/pkg/tui/key"
)

const probeBottomRight = "\x1b[999C\x1b[999B"

// ErrWindowSize is returned when neither the size query nor the cursor
// probe yields usable dimensions.
var ErrWindowSize = errors.New("getWindowSize")

// GetWindowSize returns the terminal extent in rows and columns.
func GetWindowSize(t Terminal) (rows, cols int, err error) {
	w, h, err := t.Size()
	if err == nil && w != 0 {
		return h, w, nil
	}
	log.Debug("size query unusable (cols=%d, err=%v); probing cursor", w, err)

	rows, cols, err = probeWindowSize(t)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrWindowSize, err)
	}
	return rows, cols, nil
}

func probeWindowSize(t Terminal) (rows, cols int, err error) {
	n, err := io.WriteString(t, probeBottomRight)
	if err != nil {
		return 0, 0, err
	}
	if n != len(probeBottomRight) {
		return 0, 0, io.ErrShortWrite
	}
	rows, cols, err = key.ReadCursorPosition(t)
	if err != nil {
		return 0, 0, err
	}
	if rows <= 0 || cols <= 0 {
		return 0, 0, fmt.Errorf("probe reported %dx%d", cols, rows)
	}
	return rows, cols, nil
}
