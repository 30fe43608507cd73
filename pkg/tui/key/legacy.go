// ABOUTME: Legacy escape sequence tables for CSI and SS3 terminal key codes.
// ABOUTME: Final-byte lookups used by the Parser once a sequence is complete.

package key

// csiFinal maps the final letter of ESC [ <x> to a key.
var csiFinal = map[byte]KeyType{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// csiTilde maps the digit of ESC [ <d> ~ to a key. Both the VT220 (1/4)
// and rxvt (7/8) encodings of Home/End are accepted.
var csiTilde = map[byte]KeyType{
	'1': KeyHome,
	'3': KeyDelete,
	'4': KeyEnd,
	'5': KeyPageUp,
	'6': KeyPageDown,
	'7': KeyHome,
	'8': KeyEnd,
}

// ss3Final maps the final letter of ESC O <x> to a key.
var ss3Final = map[byte]KeyType{
	'H': KeyHome,
	'F': KeyEnd,
}
