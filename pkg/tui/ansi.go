// ABOUTME: VT100/ANSI control sequences used to compose frames
// ABOUTME: Fixed sequences are constants; parameterised ones append into a RenderBuffer

package tui

// Fixed control sequences.
const (
	HideCursor      = "\x1b[?25l"
	ShowCursor      = "\x1b[?25h"
	CursorHome      = "\x1b[H"
	ClearScreen     = "\x1b[2J"
	ClearLineRight  = "\x1b[K"
	ReverseVideo    = "\x1b[7m"
	ResetAttributes = "\x1b[m"
	CursorFarRight  = "\x1b[999C"
	CursorFarDown   = "\x1b[999B"
	CursorUpOne     = "\x1b[1A"
	LineBreak       = "\r\n"
)

// AppendCursorPosition appends ESC [ row ; col H. row and col are 1-based.
func (b *RenderBuffer) AppendCursorPosition(row, col int) {
	b.AppendString("\x1b[")
	b.AppendInt(row)
	b.AppendByte(';')
	b.AppendInt(col)
	b.AppendByte('H')
}
