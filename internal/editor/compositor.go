// ABOUTME: Compositor builds one full-screen frame in a RenderBuffer and writes it once
// ABOUTME: Frame = row labels, centered banner, tilde rows, reverse-video status, cursor placement

package editor

import (
	"fmt"
	"io"

	"github.com/mauromedda/rawtty/internal/log"
	"github.com/mauromedda/rawtty/pkg/tui"
	"github.com/mauromedda/rawtty/pkg/tui/width"
)

// Compositor renders frames for a State.
type Compositor struct {
	w           io.Writer
	welcome     string
	lineNumbers bool
}

// NewCompositor returns a Compositor writing frames to w.
func NewCompositor(w io.Writer, welcome string, lineNumbers bool) *Compositor {
	return &Compositor{w: w, welcome: welcome, lineNumbers: lineNumbers}
}

// Render composes the frame for s and flushes it in a single write. A
// failed write is logged and returned; callers treat it as a dropped frame.
func (c *Compositor) Render(s *State) error {
	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)

	c.compose(buf, s)

	if err := buf.Flush(c.w); err != nil {
		log.Warn("render: %v", err)
		return err
	}
	return nil
}

// Frame returns the bytes Render would write for s.
func (c *Compositor) Frame(s *State) []byte {
	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)

	c.compose(buf, s)
	return append([]byte(nil), buf.Bytes()...)
}

func (c *Compositor) compose(buf *tui.RenderBuffer, s *State) {
	buf.AppendString(tui.HideCursor)
	buf.AppendString(tui.CursorHome)

	c.drawRows(buf, s)
	c.drawStatus(buf, s)

	buf.AppendCursorPosition(s.CursorY+1, s.CursorX+1)
	buf.AppendString(tui.ShowCursor)
}

func (c *Compositor) drawRows(buf *tui.RenderBuffer, s *State) {
	for y := 0; y < s.Rows; y++ {
		if c.lineNumbers {
			buf.AppendInt(y + 1)
			buf.AppendByte(' ')
		}

		if y == 0 {
			c.drawWelcome(buf, s.Cols)
		} else {
			buf.AppendByte('~')
		}

		buf.AppendString(tui.ClearLineRight)
		if y < s.Rows-1 {
			buf.AppendString(tui.LineBreak)
		}
	}
}

// drawWelcome centers the banner. The padding is measured against the
// full screen width, and its first cell carries the row marker.
func (c *Compositor) drawWelcome(buf *tui.RenderBuffer, cols int) {
	welcome := width.Truncate(c.welcome, cols)
	padding := (cols - width.VisibleWidth(welcome)) / 2
	if padding > 0 {
		buf.AppendByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		buf.AppendByte(' ')
	}
	buf.AppendString(welcome)
}

func (c *Compositor) drawStatus(buf *tui.RenderBuffer, s *State) {
	status := fmt.Sprintf("[Cursor: %d,%d] [Size: %d×%d]", s.CursorY+1, s.CursorX+1, s.Cols, s.Rows)
	status = width.Truncate(status, s.Cols)

	buf.AppendString(tui.CursorFarRight)
	buf.AppendString(tui.CursorUpOne)
	buf.AppendString(tui.ReverseVideo)
	buf.AppendString(status)
	buf.AppendString(tui.ResetAttributes)
}
