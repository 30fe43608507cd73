// ABOUTME: Tests for the frame buffer pool: reset on get and put, nil tolerance
// ABOUTME: Exercises the pool concurrently to catch shared-state mistakes under -race

package pool

import (
	"sync"
	"testing"
)

func TestBytesBuffer_ResetOnGet(t *testing.T) {
	t.Parallel()

	buf := GetBytesBuffer()
	buf.WriteString("frame")
	PutBytesBuffer(buf)

	if got := GetBytesBuffer(); got.Len() != 0 {
		t.Errorf("GetBytesBuffer() returned %d stale bytes", got.Len())
	}
}

func TestBytesBuffer_NilPut(t *testing.T) {
	t.Parallel()
	PutBytesBuffer(nil)
}

func TestBytesBuffer_Concurrent(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				buf := GetBytesBuffer()
				buf.WriteByte(byte('a' + i))
				if buf.Len() != 1 {
					t.Errorf("buffer shared between goroutines: len %d", buf.Len())
				}
				PutBytesBuffer(buf)
			}
		}()
	}
	wg.Wait()
}
