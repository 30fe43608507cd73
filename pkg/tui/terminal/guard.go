// ABOUTME: Guard is the scoped handle for raw mode: Acquire enters it, Release restores once.
// ABOUTME: Release is idempotent so defer, fatal paths and signal handlers can all call it.

package terminal

import "sync"

// Guard owns one raw-mode transition of a Terminal.
type Guard struct {
	t    Terminal
	once sync.Once
	err  error
}

// Acquire captures the terminal's current settings and switches it to raw
// mode. On error the terminal is left untouched and no Guard is returned.
func Acquire(t Terminal) (*Guard, error) {
	if err := t.CaptureSettings(); err != nil {
		return nil, err
	}
	if err := t.EnterRawMode(); err != nil {
		return nil, err
	}
	return &Guard{t: t}, nil
}

// Release restores the captured settings. Only the first call touches the
// terminal; later calls return the first result.
func (g *Guard) Release() error {
	if g == nil {
		return nil
	}
	g.once.Do(func() {
		g.err = g.t.ExitRawMode()
	})
	return g.err
}

// Terminal returns the guarded terminal.
func (g *Guard) Terminal() Terminal {
	return g.t
}
