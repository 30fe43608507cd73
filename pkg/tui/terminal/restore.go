// ABOUTME: RestoreOnPanic recovers from panics, restores the terminal, and prints the stack trace.
// ABOUTME: Intended for use as a deferred call in the goroutine that owns the raw-mode Guard.

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

const showCursor = "\x1b[?25h"

// RestoreOnPanic should be deferred right after Acquire. On panic it shows
// the cursor, releases the guard, prints the panic value and stack trace,
// then exits with code 1.
func RestoreOnPanic(g *Guard) {
	r := recover()
	if r == nil {
		return
	}

	restoreBestEffort(g)

	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// RecoverGoroutine should be deferred at the top of background goroutines
// that run while the terminal is in raw mode. Unlike RestoreOnPanic it
// does NOT call os.Exit, allowing the main goroutine to handle shutdown.
func RecoverGoroutine(g *Guard) {
	r := recover()
	if r == nil {
		return
	}

	restoreBestEffort(g)

	fmt.Fprintf(os.Stderr, "\ngoroutine panic: %v\n\n%s\n", r, debug.Stack())
}

func restoreBestEffort(g *Guard) {
	if g == nil {
		return
	}
	_, _ = g.Terminal().Write([]byte(showCursor))
	_ = g.Release()
}
