// ABOUTME: End-to-end test driving the editor loop on a real pseudo-terminal
// ABOUTME: One errgroup goroutine runs the loop while another plays the user at the pty master

//go:build linux || darwin

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/creack/pty"
	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/rawtty/internal/config"
	"github.com/mauromedda/rawtty/pkg/tui/terminal"
)

// waitFor reads r into seen until seen contains want.
func waitFor(r io.Reader, seen *bytes.Buffer, want string) error {
	buf := make([]byte, 1024)
	for !strings.Contains(seen.String(), want) {
		n, err := r.Read(buf)
		seen.Write(buf[:n])
		if err != nil {
			return fmt.Errorf("waiting for %q: %w", want, err)
		}
	}
	return nil
}

func snapshot(t *testing.T, tty *os.File) any {
	t.Helper()
	pt := terminal.NewProcessTerminalFiles(tty, tty)
	if err := pt.CaptureSettings(); err != nil {
		t.Fatalf("CaptureSettings: %v", err)
	}
	return *pt.Settings()
}

func TestRunMode_PTY(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer func() {
		_ = tty.Close()
		_ = ptmx.Close()
	}()
	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: 80}); err != nil {
		t.Fatalf("Setsize: %v", err)
	}
	_ = ptmx.SetReadDeadline(time.Now().Add(10 * time.Second))

	before := snapshot(t, tty)

	var stdout bytes.Buffer
	m := newMode(cliArgs{}, config.Default(), terminal.NewProcessTerminalFiles(tty, tty), &stdout)

	var g errgroup.Group
	g.Go(func() error {
		return runMode(m, func(code int) { t.Errorf("unexpected exit(%d)", code) })
	})
	g.Go(func() error {
		var seen bytes.Buffer
		if err := waitFor(ptmx, &seen, "[Cursor: 1,1] [Size: 80×24]"); err != nil {
			return err
		}
		if _, err := ptmx.Write([]byte("\x1b[B")); err != nil {
			return err
		}
		if err := waitFor(ptmx, &seen, "[Cursor: 2,1] [Size: 80×24]"); err != nil {
			return err
		}
		if _, err := ptmx.Write([]byte("q")); err != nil {
			return err
		}
		return waitFor(ptmx, &seen, "\x1b[2J\x1b[H")
	})
	if err := g.Wait(); err != nil {
		t.Fatalf("session failed: %v", err)
	}

	if after := snapshot(t, tty); !reflect.DeepEqual(before, after) {
		t.Errorf("terminal settings not restored:\nbefore %+v\nafter  %+v", before, after)
	}
	if got := stdout.String(); got != config.DefaultExitMessage+"\r\n" {
		t.Errorf("exit message = %q", got)
	}
}
