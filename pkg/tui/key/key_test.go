// ABOUTME: Table-driven tests for ParseKey covering literal bytes, CSI/SS3 sequences, and fallbacks.
// ABOUTME: Validates the decode table, bare escape on timeout, and Key.String formatting.

package key

import "testing"

func TestParseKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want Key
	}{
		// Literal bytes
		{name: "lowercase q", data: "q", want: Byte('q')},
		{name: "uppercase A", data: "A", want: Byte('A')},
		{name: "digit 0", data: "0", want: Byte('0')},
		{name: "space", data: " ", want: Byte(' ')},
		{name: "ctrl+c is a byte", data: "\x03", want: Byte(0x03)},
		{name: "ctrl+z is a byte", data: "\x1a", want: Byte(0x1a)},
		{name: "carriage return", data: "\r", want: Byte('\r')},
		{name: "backspace", data: "\x7f", want: Byte(0x7f)},
		{name: "only first byte decoded", data: "ab", want: Byte('a')},

		// Bare escape: no bytes follow before the timeout
		{name: "escape", data: "\x1b", want: Key{Type: KeyEscape}},
		{name: "escape then bracket", data: "\x1b[", want: Key{Type: KeyEscape}},

		// CSI letters
		{name: "arrow up", data: "\x1b[A", want: Key{Type: KeyUp}},
		{name: "arrow down", data: "\x1b[B", want: Key{Type: KeyDown}},
		{name: "arrow right", data: "\x1b[C", want: Key{Type: KeyRight}},
		{name: "arrow left", data: "\x1b[D", want: Key{Type: KeyLeft}},
		{name: "home", data: "\x1b[H", want: Key{Type: KeyHome}},
		{name: "end", data: "\x1b[F", want: Key{Type: KeyEnd}},

		// CSI digit + tilde
		{name: "home 1~", data: "\x1b[1~", want: Key{Type: KeyHome}},
		{name: "delete", data: "\x1b[3~", want: Key{Type: KeyDelete}},
		{name: "end 4~", data: "\x1b[4~", want: Key{Type: KeyEnd}},
		{name: "page up", data: "\x1b[5~", want: Key{Type: KeyPageUp}},
		{name: "page down", data: "\x1b[6~", want: Key{Type: KeyPageDown}},
		{name: "home 7~", data: "\x1b[7~", want: Key{Type: KeyHome}},
		{name: "end 8~", data: "\x1b[8~", want: Key{Type: KeyEnd}},

		// SS3
		{name: "SS3 home", data: "\x1bOH", want: Key{Type: KeyHome}},
		{name: "SS3 end", data: "\x1bOF", want: Key{Type: KeyEnd}},

		// Unrecognized sequences resolve to Escape
		{name: "backtab unmapped", data: "\x1b[Z", want: Key{Type: KeyEscape}},
		{name: "unmapped digit", data: "\x1b[9~", want: Key{Type: KeyEscape}},
		{name: "unmapped zero", data: "\x1b[0~", want: Key{Type: KeyEscape}},
		{name: "digit without tilde", data: "\x1b[3x", want: Key{Type: KeyEscape}},
		{name: "digit then timeout", data: "\x1b[5", want: Key{Type: KeyEscape}},
		{name: "SS3 arrow unmapped", data: "\x1bOA", want: Key{Type: KeyEscape}},
		{name: "alt letter", data: "\x1bab", want: Key{Type: KeyEscape}},
		{name: "double escape", data: "\x1b\x1b[", want: Key{Type: KeyEscape}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseKey(tt.data)
			if !ok {
				t.Fatalf("ParseKey(%q) reported no event", tt.data)
			}
			if got != tt.want {
				t.Errorf("ParseKey(%q) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestParseKey_Empty(t *testing.T) {
	t.Parallel()

	if k, ok := ParseKey(""); ok {
		t.Errorf("ParseKey(\"\") = %v, want no event", k)
	}
}

func TestKeyIs(t *testing.T) {
	t.Parallel()

	if !Byte('q').Is('q') {
		t.Error("Byte('q').Is('q') = false, want true")
	}
	if Byte('q').Is('x') {
		t.Error("Byte('q').Is('x') = true, want false")
	}
	if (Key{Type: KeyUp}).Is(0) {
		t.Error("named key must not match a literal byte")
	}
}

func TestKeyString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  Key
		want string
	}{
		{name: "printable", key: Byte('a'), want: "'a'"},
		{name: "ctrl+c", key: Byte(0x03), want: "^C"},
		{name: "nul", key: Byte(0x00), want: "^@"},
		{name: "del", key: Byte(0x7f), want: "^?"},
		{name: "high byte", key: Byte(0xc3), want: "0xc3"},
		{name: "arrow up", key: Key{Type: KeyUp}, want: "Up"},
		{name: "page down", key: Key{Type: KeyPageDown}, want: "PageDown"},
		{name: "escape", key: Key{Type: KeyEscape}, want: "Escape"},
		{name: "out of range", key: Key{Type: KeyType(99)}, want: "KeyType(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.key.String()
			if got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}
