// ABOUTME: Cursor position report: request ESC[6n and parse the ESC[row;colR reply.
// ABOUTME: Replies are read into a 32-byte buffer; overflowing it is a decode failure.

package key

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// positionReportLimit bounds the reply buffer, terminator included.
const positionReportLimit = 32

const positionQuery = "\x1b[6n"

// ErrPositionReport is returned when a position reply cannot be decoded.
var ErrPositionReport = errors.New("malformed cursor position report")

// ReadCursorPosition asks the terminal for the cursor position and returns
// the 1-based row and column from its reply.
func ReadCursorPosition(rw io.ReadWriter) (row, col int, err error) {
	n, err := io.WriteString(rw, positionQuery)
	if err != nil {
		return 0, 0, fmt.Errorf("requesting cursor position: %w", err)
	}
	if n != len(positionQuery) {
		return 0, 0, fmt.Errorf("requesting cursor position: %w", io.ErrShortWrite)
	}

	var buf [positionReportLimit]byte
	i := 0
	for {
		if i == len(buf) {
			return 0, 0, fmt.Errorf("%w: reply exceeds %d bytes", ErrPositionReport, positionReportLimit)
		}
		n, err := rw.Read(buf[i : i+1])
		if err != nil {
			return 0, 0, fmt.Errorf("reading cursor position: %w", err)
		}
		if n == 0 || buf[i] == 'R' {
			break
		}
		i++
	}
	return ParsePositionReport(buf[:i])
}

// ParsePositionReport decodes ESC [ <row> ; <col> with the trailing R
// already stripped.
func ParsePositionReport(reply []byte) (row, col int, err error) {
	body, ok := bytes.CutPrefix(reply, []byte("\x1b["))
	if !ok {
		return 0, 0, fmt.Errorf("%w: missing ESC[ prefix in %q", ErrPositionReport, reply)
	}
	rs, cs, ok := bytes.Cut(body, []byte{';'})
	if !ok {
		return 0, 0, fmt.Errorf("%w: missing ';' in %q", ErrPositionReport, reply)
	}
	if row, err = strconv.Atoi(string(rs)); err != nil {
		return 0, 0, fmt.Errorf("%w: row: %w", ErrPositionReport, err)
	}
	if col, err = strconv.Atoi(string(cs)); err != nil {
		return 0, 0, fmt.Errorf("%w: col: %w", ErrPositionReport, err)
	}
	return row, col, nil
}
