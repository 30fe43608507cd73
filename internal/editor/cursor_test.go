// ABOUTME: Tests for cursor movement: step and jump keys, edge clamping, and non-movement keys
// ABOUTME: Includes an exhaustive bounds property over every position and key on small screens

package editor

import (
	"testing"

	"github.com/mauromedda/rawtty/pkg/tui/key"
)

var movementKeys = []key.KeyType{
	key.KeyUp, key.KeyDown, key.KeyLeft, key.KeyRight,
	key.KeyHome, key.KeyEnd, key.KeyPageUp, key.KeyPageDown,
}

func TestMoveCursor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		startX       int
		startY       int
		keys         []key.KeyType
		wantX, wantY int
	}{
		{name: "down then right from origin", keys: []key.KeyType{key.KeyDown, key.KeyRight}, wantX: 1, wantY: 1},
		{name: "down and right at bottom-right corner", startX: 79, startY: 23, keys: []key.KeyType{key.KeyDown, key.KeyRight}, wantX: 79, wantY: 23},
		{name: "up and left at origin", keys: []key.KeyType{key.KeyUp, key.KeyLeft}, wantX: 0, wantY: 0},
		{name: "home", startX: 40, startY: 5, keys: []key.KeyType{key.KeyHome}, wantX: 0, wantY: 5},
		{name: "end", startX: 3, startY: 5, keys: []key.KeyType{key.KeyEnd}, wantX: 79, wantY: 5},
		{name: "page up", startX: 3, startY: 17, keys: []key.KeyType{key.KeyPageUp}, wantX: 3, wantY: 0},
		{name: "page down", startX: 3, startY: 2, keys: []key.KeyType{key.KeyPageDown}, wantX: 3, wantY: 23},
		{name: "delete is not movement", startX: 3, startY: 2, keys: []key.KeyType{key.KeyDelete}, wantX: 3, wantY: 2},
		{name: "escape is not movement", startX: 3, startY: 2, keys: []key.KeyType{key.KeyEscape}, wantX: 3, wantY: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := &State{Rows: 24, Cols: 80, CursorX: tt.startX, CursorY: tt.startY}
			for _, kt := range tt.keys {
				MoveCursor(s, key.Key{Type: kt})
			}
			if s.CursorX != tt.wantX || s.CursorY != tt.wantY {
				t.Errorf("cursor = (%d,%d), want (%d,%d)", s.CursorY, s.CursorX, tt.wantY, tt.wantX)
			}
		})
	}
}

func TestMoveCursor_LiteralByteIgnored(t *testing.T) {
	t.Parallel()

	s := &State{Rows: 24, Cols: 80, CursorX: 10, CursorY: 10}
	for _, b := range []byte("hjklq\x1b") {
		MoveCursor(s, key.Byte(b))
	}
	if s.CursorX != 10 || s.CursorY != 10 {
		t.Errorf("literal bytes moved cursor to (%d,%d)", s.CursorY, s.CursorX)
	}
}

func TestMoveCursor_StaysInBounds(t *testing.T) {
	t.Parallel()

	sizes := []struct{ rows, cols int }{{1, 1}, {1, 5}, {4, 1}, {3, 7}, {24, 80}}

	for _, sz := range sizes {
		for y := 0; y < sz.rows; y++ {
			for x := 0; x < sz.cols; x++ {
				for _, kt := range movementKeys {
					s := &State{Rows: sz.rows, Cols: sz.cols, CursorX: x, CursorY: y}
					MoveCursor(s, key.Key{Type: kt})
					if !s.InBounds() {
						t.Fatalf("%dx%d from (%d,%d) key %v -> (%d,%d) out of bounds",
							sz.cols, sz.rows, y, x, key.Key{Type: kt}, s.CursorY, s.CursorX)
					}
				}
			}
		}
	}
}

func TestIsMovement(t *testing.T) {
	t.Parallel()

	for _, kt := range movementKeys {
		if !IsMovement(key.Key{Type: kt}) {
			t.Errorf("IsMovement(%v) = false", key.Key{Type: kt})
		}
	}
	for _, k := range []key.Key{{Type: key.KeyDelete}, {Type: key.KeyEscape}, key.Byte('j')} {
		if IsMovement(k) {
			t.Errorf("IsMovement(%v) = true", k)
		}
	}
}

func TestNewState(t *testing.T) {
	t.Parallel()

	s, err := NewState(24, 80)
	if err != nil {
		t.Fatalf("NewState() unexpected error: %v", err)
	}
	if s.CursorX != 0 || s.CursorY != 0 || s.Rows != 24 || s.Cols != 80 {
		t.Errorf("NewState() = %+v", s)
	}

	for _, bad := range [][2]int{{0, 80}, {24, 0}, {-1, -1}} {
		if _, err := NewState(bad[0], bad[1]); err == nil {
			t.Errorf("NewState(%d, %d) should fail", bad[0], bad[1])
		}
	}
}
