// ABOUTME: Append-only byte accumulator that batches one frame into a single write
// ABOUTME: Backing storage is pooled and recycled after each frame

package tui

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/mauromedda/rawtty/pkg/tui/internal/pool"
)

// RenderBuffer collects the bytes of one frame. It is owned by the render
// call that acquired it and must be released after Flush.
type RenderBuffer struct {
	buf *bytes.Buffer
}

// AcquireBuffer gets an empty RenderBuffer backed by pooled storage.
func AcquireBuffer() *RenderBuffer {
	return &RenderBuffer{buf: pool.GetBytesBuffer()}
}

// ReleaseBuffer returns the backing storage to the pool. The buffer must
// not be used afterwards.
func ReleaseBuffer(b *RenderBuffer) {
	if b == nil || b.buf == nil {
		return
	}
	pool.PutBytesBuffer(b.buf)
	b.buf = nil
}

// Append adds p to the end of the frame.
func (b *RenderBuffer) Append(p []byte) {
	b.buf.Write(p)
}

// AppendString adds s to the end of the frame.
func (b *RenderBuffer) AppendString(s string) {
	b.buf.WriteString(s)
}

// AppendByte adds a single byte to the end of the frame.
func (b *RenderBuffer) AppendByte(c byte) {
	b.buf.WriteByte(c)
}

// AppendInt adds the decimal form of n.
func (b *RenderBuffer) AppendInt(n int) {
	var scratch [20]byte
	b.buf.Write(strconv.AppendInt(scratch[:0], int64(n), 10))
}

// Bytes returns the accumulated frame. The slice aliases the buffer.
func (b *RenderBuffer) Bytes() []byte {
	return b.buf.Bytes()
}

// Len returns the number of accumulated bytes.
func (b *RenderBuffer) Len() int {
	return b.buf.Len()
}

// Flush writes the whole frame to w in one Write call.
func (b *RenderBuffer) Flush(w io.Writer) error {
	data := b.buf.Bytes()
	n, err := w.Write(data)
	if err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	if n != len(data) {
		return fmt.Errorf("writing frame: %w", io.ErrShortWrite)
	}
	return nil
}
