// ABOUTME: Unix termination-signal handling that restores the terminal before exit.
// ABOUTME: ISIG is off in raw mode, so these only arrive from outside (kill, hangup).

//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"syscall"
)

// NotifyTermination restores the terminal guarded by g and calls exit(1)
// when the process receives SIGTERM, SIGHUP, SIGINT or SIGQUIT. The returned
// stop function unregisters the handler.
func NotifyTermination(g *Guard, exit func(code int)) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	doneCh := make(chan struct{})
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGINT, syscall.SIGQUIT)

	go func() {
		defer RecoverGoroutine(g)

		select {
		case <-sigCh:
			_, _ = g.Terminal().Write([]byte(showCursor))
			_ = g.Release()
			exit(1)
		case <-doneCh:
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(doneCh)
	}
}
