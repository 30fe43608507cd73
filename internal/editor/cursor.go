// ABOUTME: Cursor movement for navigation keys with clamping to the screen edges
// ABOUTME: Arrows step one cell; Home/End jump columns; PageUp/PageDown jump rows

package editor

import "github.com/mauromedda/rawtty/pkg/tui/key"

// IsMovement reports whether k moves the cursor.
func IsMovement(k key.Key) bool {
	switch k.Type {
	case key.KeyUp, key.KeyDown, key.KeyLeft, key.KeyRight,
		key.KeyHome, key.KeyEnd, key.KeyPageUp, key.KeyPageDown:
		return true
	}
	return false
}

// MoveCursor applies k to the cursor in s. Keys that are not movement keys
// leave s unchanged.
func MoveCursor(s *State, k key.Key) {
	switch k.Type {
	case key.KeyUp:
		if s.CursorY > 0 {
			s.CursorY--
		}
	case key.KeyDown:
		if s.CursorY < s.Rows-1 {
			s.CursorY++
		}
	case key.KeyLeft:
		if s.CursorX > 0 {
			s.CursorX--
		}
	case key.KeyRight:
		if s.CursorX < s.Cols-1 {
			s.CursorX++
		}
	case key.KeyHome:
		s.CursorX = 0
	case key.KeyEnd:
		s.CursorX = s.Cols - 1
	case key.KeyPageUp:
		s.CursorY = 0
	case key.KeyPageDown:
		s.CursorY = s.Rows - 1
	}
}
