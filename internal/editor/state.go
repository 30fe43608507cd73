// ABOUTME: State is the screen extent and cursor position owned by the event loop
// ABOUTME: The cursor is 0-based and always inside [0,Cols-1] x [0,Rows-1]

package editor

import "fmt"

// State holds the screen dimensions and the cursor position.
type State struct {
	Rows    int
	Cols    int
	CursorX int
	CursorY int
}

// NewState returns a State for a rows x cols screen with the cursor at the
// top-left corner.
func NewState(rows, cols int) (*State, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid screen size %dx%d", cols, rows)
	}
	return &State{Rows: rows, Cols: cols}, nil
}

// InBounds reports whether the cursor lies on the screen.
func (s *State) InBounds() bool {
	return s.CursorX >= 0 && s.CursorX < s.Cols && s.CursorY >= 0 && s.CursorY < s.Rows
}
