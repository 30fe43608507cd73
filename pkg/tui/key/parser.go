// ABOUTME: Parser is the byte-at-a-time escape sequence state machine.
// ABOUTME: A read timeout is an input event that resolves any partial sequence to Escape.

package key

// parseState is the position of the Parser inside an escape sequence.
type parseState int

const (
	stateStart         parseState = iota // no sequence in progress
	stateSawEscape                       // ESC
	stateSawIntroducer                   // ESC [ or ESC O (or ESC <other>)
	stateSawDigit                        // ESC [ <digit>
)

// Parser decodes raw terminal bytes into Keys.
//
// Bytes that do not complete a known sequence are consumed and the sequence
// resolves to KeyEscape; nothing is pushed back for a later read.
type Parser struct {
	state parseState
	intro byte
	digit byte
}

// Feed advances the parser by one byte. It returns the decoded key and true
// when b completes an event.
func (p *Parser) Feed(b byte) (Key, bool) {
	switch p.state {
	case stateStart:
		if b != escapeByte {
			return Byte(b), true
		}
		p.state = stateSawEscape
		return Key{}, false

	case stateSawEscape:
		p.intro = b
		p.state = stateSawIntroducer
		return Key{}, false

	case stateSawIntroducer:
		if p.intro == '[' && b >= '0' && b <= '9' {
			p.digit = b
			p.state = stateSawDigit
			return Key{}, false
		}
		return p.emit(p.finalKey(b)), true

	case stateSawDigit:
		if b == '~' {
			if t, ok := csiTilde[p.digit]; ok {
				return p.emit(t), true
			}
		}
		return p.emit(KeyEscape), true
	}

	p.reset()
	return Byte(b), true
}

// Timeout tells the parser that no further byte arrived within the read
// window. A pending sequence resolves to KeyEscape; with nothing pending it
// returns false.
func (p *Parser) Timeout() (Key, bool) {
	if p.state == stateStart {
		return Key{}, false
	}
	return p.emit(KeyEscape), true
}

// Pending reports whether a partial escape sequence is buffered.
func (p *Parser) Pending() bool {
	return p.state != stateStart
}

// finalKey resolves ESC <intro> <b>.
func (p *Parser) finalKey(b byte) KeyType {
	var table map[byte]KeyType
	switch p.intro {
	case '[':
		table = csiFinal
	case 'O':
		table = ss3Final
	default:
		return KeyEscape
	}
	if t, ok := table[b]; ok {
		return t
	}
	return KeyEscape
}

func (p *Parser) emit(t KeyType) Key {
	p.reset()
	return Key{Type: t}
}

func (p *Parser) reset() {
	*p = Parser{}
}

// ParseKey decodes the first event in data as if the input then went quiet.
// It returns false when data is empty.
func ParseKey(data string) (Key, bool) {
	var p Parser
	for i := 0; i < len(data); i++ {
		if k, ok := p.Feed(data[i]); ok {
			return k, true
		}
	}
	return p.Timeout()
}
