// ABOUTME: Interactive mode: the event loop tying raw mode, rendering, key decoding and cursor moves
// ABOUTME: Phases Initializing -> Running -> Exiting; the quit key or a bare Escape ends the loop

package interactive

import (
	"fmt"
	"io"

	"github.com/mauromedda/rawtty/internal/config"
	"github.com/mauromedda/rawtty/internal/editor"
	"github.com/mauromedda/rawtty/internal/log"
	"github.com/mauromedda/rawtty/pkg/tui"
	"github.com/mauromedda/rawtty/pkg/tui/key"
	"github.com/mauromedda/rawtty/pkg/tui/terminal"
)

// Phase is the lifecycle position of the App.
type Phase int

const (
	PhaseInitializing Phase = iota
	PhaseRunning
	PhaseExiting
)

// String returns the phase display name.
func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "INITIALIZING"
	case PhaseRunning:
		return "RUNNING"
	case PhaseExiting:
		return "EXITING"
	default:
		return "UNKNOWN"
	}
}

// AppDeps bundles all dependencies for the interactive App.
type AppDeps struct {
	Terminal terminal.Terminal
	Settings config.Settings
	// Output receives the confirmation message once the terminal is restored.
	Output io.Writer
}

// App is the interactive editor loop.
type App struct {
	term       terminal.Terminal
	settings   config.Settings
	out        io.Writer
	phase      Phase
	guard      *terminal.Guard
	state      *editor.State
	compositor *editor.Compositor
	decoder    *key.Decoder
}

// New creates an App in the Initializing phase.
func New(deps AppDeps) *App {
	out := deps.Output
	if out == nil {
		out = io.Discard
	}
	return &App{
		term:       deps.Terminal,
		settings:   deps.Settings,
		out:        out,
		phase:      PhaseInitializing,
		compositor: editor.NewCompositor(deps.Terminal, deps.Settings.Welcome, deps.Settings.LineNumbers),
		decoder:    key.NewDecoder(deps.Terminal),
	}
}

// Run performs Start followed by Loop.
func (a *App) Run() error {
	if err := a.Start(); err != nil {
		return err
	}
	return a.Loop()
}

// Start enters raw mode and sizes the screen. On failure the terminal is
// restored before the error is returned.
func (a *App) Start() error {
	g, err := terminal.Acquire(a.term)
	if err != nil {
		return fmt.Errorf("enabling raw mode: %w", err)
	}
	a.guard = g

	rows, cols, err := terminal.GetWindowSize(a.term)
	if err != nil {
		_ = a.guard.Release()
		return err
	}
	state, err := editor.NewState(rows, cols)
	if err != nil {
		_ = a.guard.Release()
		return fmt.Errorf("getWindowSize: %w", err)
	}
	a.state = state
	a.phase = PhaseRunning
	log.Debug("screen %dx%d", cols, rows)
	return nil
}

// Loop renders and handles keys until the user quits. A read failure
// restores the terminal and is returned.
func (a *App) Loop() error {
	for a.phase == PhaseRunning {
		// A failed frame is logged by the compositor; the next one retries.
		_ = a.compositor.Render(a.state)

		k, err := a.decoder.ReadKey()
		if err != nil {
			_ = a.guard.Release()
			return err
		}
		a.HandleKey(k)
	}
	return a.exit()
}

// HandleKey applies one key event to the running loop.
func (a *App) HandleKey(k key.Key) {
	if a.phase != PhaseRunning {
		return
	}
	switch {
	case k.Is(a.settings.QuitKey) || k.Type == key.KeyEscape:
		a.clearScreen()
		a.phase = PhaseExiting
	case editor.IsMovement(k):
		editor.MoveCursor(a.state, k)
	default:
		log.Debug("ignored key %v", k)
	}
}

func (a *App) clearScreen() {
	if _, err := io.WriteString(a.term, tui.ClearScreen+tui.CursorHome); err != nil {
		log.Warn("clearing screen: %v", err)
	}
}

// exit restores the terminal and prints the confirmation message.
func (a *App) exit() error {
	if err := a.guard.Release(); err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	if a.settings.ExitMessage != "" {
		fmt.Fprintf(a.out, "%s\r\n", a.settings.ExitMessage)
	}
	return nil
}

// Close restores the terminal if it is still raw. Safe to call repeatedly.
func (a *App) Close() error {
	return a.guard.Release()
}

// Guard returns the raw-mode guard, nil before Start.
func (a *App) Guard() *terminal.Guard {
	return a.guard
}

// Phase returns the current lifecycle phase.
func (a *App) Phase() Phase {
	return a.phase
}

// State returns the editor state, nil before Start.
func (a *App) State() *editor.State {
	return a.state
}
