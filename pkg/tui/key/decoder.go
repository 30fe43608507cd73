// ABOUTME: Decoder reads raw-mode input one byte at a time and yields one Key per call.
// ABOUTME: Zero-byte reads are read-window timeouts: retried when idle, Escape when mid-sequence.

package key

import (
	"fmt"
	"io"
)

// Decoder turns a timeout-driven byte stream into Keys.
//
// The reader must follow the raw-mode read policy: a read that finds no
// input within its window returns (0, nil).
type Decoder struct {
	r      io.Reader
	parser Parser
	buf    [1]byte
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// ReadKey blocks until one complete event is available. Idle timeouts are
// retried indefinitely; a non-timeout read error is returned.
func (d *Decoder) ReadKey() (Key, error) {
	for {
		n, err := d.r.Read(d.buf[:])
		if n > 0 {
			if k, ok := d.parser.Feed(d.buf[0]); ok {
				return k, nil
			}
		}
		if err != nil {
			return Key{}, fmt.Errorf("reading key: %w", err)
		}
		if n == 0 {
			if k, ok := d.parser.Timeout(); ok {
				return k, nil
			}
		}
	}
}
