// ABOUTME: sync.Pool wrapper for the bytes.Buffer backing each frame's RenderBuffer
// ABOUTME: Reuses frame-sized allocations across render iterations

package pool

import (
	"bytes"
	"sync"
)

// frameCapacity is the initial capacity of a fresh buffer; an 80x24 frame
// with escapes fits comfortably.
const frameCapacity = 4096

var bytesBufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, frameCapacity))
	},
}

// GetBytesBuffer returns an empty bytes.Buffer from the pool.
func GetBytesBuffer() *bytes.Buffer {
	buf := bytesBufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBytesBuffer returns a bytes.Buffer to the pool.
func PutBytesBuffer(buf *bytes.Buffer) {
	if buf == nil {
		return
	}
	buf.Reset()
	bytesBufferPool.Put(buf)
}
