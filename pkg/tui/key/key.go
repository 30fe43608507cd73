// ABOUTME: Defines the Key event type produced by the decoder: a literal byte or a named key.
// ABOUTME: Named keys cover arrows, page keys, home/end, delete and a bare escape.

package key

import "fmt"

// Key represents one decoded keyboard event.
type Key struct {
	Type KeyType
	Byte byte // For KeyByte
}

// KeyType enumerates the kinds of key events the decoder can produce.
type KeyType int

const (
	KeyByte     KeyType = iota // Literal byte (printable or control)
	KeyUp                      // Arrow up
	KeyDown                    // Arrow down
	KeyLeft                    // Arrow left
	KeyRight                   // Arrow right
	KeyPageUp                  // Page Up
	KeyPageDown                // Page Down
	KeyHome                    // Home
	KeyEnd                     // End
	KeyDelete                  // Delete
	KeyEscape                  // Bare escape or an unrecognized sequence
)

// escapeByte starts every escape sequence.
const escapeByte = 0x1b

// Byte returns the literal event for b.
func Byte(b byte) Key {
	return Key{Type: KeyByte, Byte: b}
}

// Is reports whether k is the literal byte b.
func (k Key) Is(b byte) bool {
	return k.Type == KeyByte && k.Byte == b
}

// keyTypeNames provides human-readable labels for each named KeyType.
var keyTypeNames = map[KeyType]string{
	KeyUp:       "Up",
	KeyDown:     "Down",
	KeyLeft:     "Left",
	KeyRight:    "Right",
	KeyPageUp:   "PageUp",
	KeyPageDown: "PageDown",
	KeyHome:     "Home",
	KeyEnd:      "End",
	KeyDelete:   "Delete",
	KeyEscape:   "Escape",
}

// String returns a human-readable representation of the Key for debug display.
func (k Key) String() string {
	if k.Type == KeyByte {
		return formatByte(k.Byte)
	}
	if name, ok := keyTypeNames[k.Type]; ok {
		return name
	}
	return fmt.Sprintf("KeyType(%d)", int(k.Type))
}

// formatByte renders control bytes in caret notation and printable bytes quoted.
func formatByte(b byte) string {
	switch {
	case b < 0x20:
		return fmt.Sprintf("^%c", b+'@')
	case b == 0x7f:
		return "^?"
	case b < 0x7f:
		return fmt.Sprintf("'%c'", b)
	}
	return fmt.Sprintf("0x%02x", b)
}
