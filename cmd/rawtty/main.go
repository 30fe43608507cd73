// ABOUTME: CLI entry point for rawtty with terminal crash recovery
// ABOUTME: Parses flags, loads config, sets up logging, dispatches to editor or key inspector

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mauromedda/rawtty/internal/config"
	"github.com/mauromedda/rawtty/internal/log"
	"github.com/mauromedda/rawtty/internal/mode/inspect"
	"github.com/mauromedda/rawtty/internal/mode/interactive"
	"github.com/mauromedda/rawtty/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errNotTerminal is returned when stdin is not an interactive terminal.
var errNotTerminal = errors.New("stdin is not a terminal")

// mode is a raw-mode program: Start acquires the terminal, Loop runs until
// the user quits, Close restores the terminal if still raw.
type mode interface {
	Start() error
	Loop() error
	Guard() *terminal.Guard
	Close() error
}

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("rawtty %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args, terminal.NewProcessTerminal(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run performs the initialization sequence and dispatches to the selected mode.
func run(args cliArgs, pt *terminal.ProcessTerminal, stdout io.Writer) error {
	closeLog, err := setupLog(args)
	if err != nil {
		return err
	}
	defer closeLog()

	settings, err := config.Load(args.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if !pt.IsTerminal() {
		return errNotTerminal
	}

	log.Info("rawtty %s starting (keys=%v)", version, args.keys)
	return runMode(newMode(args, settings, pt, stdout), os.Exit)
}

// newMode builds the program selected by the flags.
func newMode(args cliArgs, settings config.Settings, t terminal.Terminal, stdout io.Writer) mode {
	if args.keys {
		return inspect.New(inspect.Config{
			OutputFormat: args.format,
			QuitKey:      settings.QuitKey,
			ExitMessage:  settings.ExitMessage,
		}, inspect.Deps{Terminal: t, Output: stdout})
	}
	return interactive.New(interactive.AppDeps{
		Terminal: t,
		Settings: settings,
		Output:   stdout,
	})
}

// runMode owns the raw-mode lifetime: every way out of Loop, including a
// panic or a termination signal, restores the terminal first.
func runMode(m mode, exit func(code int)) error {
	if err := m.Start(); err != nil {
		return err
	}
	defer func() { _ = m.Close() }()
	defer terminal.RestoreOnPanic(m.Guard())

	stop := terminal.NotifyTermination(m.Guard(), exit)
	defer stop()

	return m.Loop()
}

// setupLog routes log output away from the screen. With --log the file
// receives everything at the selected level; without it only errors are
// written, to stderr, and --verbose has no effect.
func setupLog(args cliArgs) (func(), error) {
	if args.logPath == "" {
		log.SetLevel(log.LevelError)
		return func() {}, nil
	}
	if args.verbose {
		log.SetLevel(log.LevelDebug)
	}

	f, err := os.OpenFile(args.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	prev := log.SetOutput(f)
	return func() {
		log.SetOutput(prev)
		_ = f.Close()
	}, nil
}
