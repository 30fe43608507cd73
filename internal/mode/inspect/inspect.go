// ABOUTME: Key inspector mode: echoes every decoded key event until the quit key is pressed
// ABOUTME: Text and JSON-lines formatters; lines end in CRLF because output post-processing is off

package inspect

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mauromedda/rawtty/internal/log"
	"github.com/mauromedda/rawtty/pkg/tui"
	"github.com/mauromedda/rawtty/pkg/tui/key"
	"github.com/mauromedda/rawtty/pkg/tui/terminal"
)

// Config configures the inspector.
type Config struct {
	OutputFormat string // "text" (default) or "json"
	QuitKey      byte
	ExitMessage  string
}

// Deps provides dependencies for the inspector.
type Deps struct {
	Terminal terminal.Terminal
	// Output receives the exit message after the terminal is restored.
	Output io.Writer
}

// Inspector reports key events as they are decoded.
type Inspector struct {
	cfg     Config
	term    terminal.Terminal
	out     io.Writer
	guard   *terminal.Guard
	decoder *key.Decoder
	f       formatter
	events  int
}

// New creates an Inspector. Unknown output formats fall back to text.
func New(cfg Config, deps Deps) *Inspector {
	out := deps.Output
	if out == nil {
		out = io.Discard
	}
	return &Inspector{
		cfg:     cfg,
		term:    deps.Terminal,
		out:     out,
		decoder: key.NewDecoder(deps.Terminal),
		f:       newFormatter(cfg.OutputFormat),
	}
}

// Run performs Start followed by Loop.
func (in *Inspector) Run() error {
	if err := in.Start(); err != nil {
		return err
	}
	return in.Loop()
}

// Start enters raw mode and writes the header.
func (in *Inspector) Start() error {
	g, err := terminal.Acquire(in.term)
	if err != nil {
		return fmt.Errorf("enabling raw mode: %w", err)
	}
	in.guard = g

	if err := in.emit(in.f.header(in.cfg.QuitKey)); err != nil {
		_ = in.guard.Release()
		return err
	}
	return nil
}

// Loop reports keys until the quit key arrives, then restores the terminal.
func (in *Inspector) Loop() error {
	for {
		k, err := in.decoder.ReadKey()
		if err != nil {
			_ = in.guard.Release()
			return err
		}
		in.events++
		lines, err := in.f.key(k)
		if err != nil {
			_ = in.guard.Release()
			return fmt.Errorf("encoding key event: %w", err)
		}
		if err := in.emit(lines); err != nil {
			_ = in.guard.Release()
			return err
		}
		if k.Is(in.cfg.QuitKey) {
			break
		}
	}

	log.Debug("inspected %d key events", in.events)
	if err := in.guard.Release(); err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	if in.cfg.ExitMessage != "" {
		fmt.Fprintf(in.out, "%s\r\n", in.cfg.ExitMessage)
	}
	return nil
}

func (in *Inspector) emit(lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)

	for _, l := range lines {
		buf.AppendString(l)
		buf.AppendString(tui.LineBreak)
	}
	if err := buf.Flush(in.term); err != nil {
		return fmt.Errorf("writing key report: %w", err)
	}
	return nil
}

// Close restores the terminal if it is still raw.
func (in *Inspector) Close() error {
	return in.guard.Release()
}

// Guard returns the raw-mode guard, nil before Start.
func (in *Inspector) Guard() *terminal.Guard {
	return in.guard
}

// Events returns how many key events have been reported.
func (in *Inspector) Events() int {
	return in.events
}

// Describe renders k the way the text formatter prints it: literal bytes as
// "<code> (<repr>)", named keys by name.
func Describe(k key.Key) string {
	if k.Type == key.KeyByte {
		return fmt.Sprintf("%d (%s)", k.Byte, k)
	}
	return k.String()
}

// formatter abstracts output formatting.
type formatter interface {
	header(quit byte) []string
	key(k key.Key) ([]string, error)
}

// ValidFormat reports whether name is a supported output format.
func ValidFormat(name string) bool {
	switch name {
	case "text", "json":
		return true
	}
	return false
}

func newFormatter(format string) formatter {
	switch format {
	case "json":
		return jsonFormatter{}
	default:
		return textFormatter{}
	}
}

// textFormatter prints one human-readable line per event.
type textFormatter struct{}

func (textFormatter) header(quit byte) []string {
	return []string{
		fmt.Sprintf("Raw mode enabled. Press %s to quit.", key.Byte(quit)),
		"Key events are shown as: code (representation)",
		"------",
	}
}

func (textFormatter) key(k key.Key) ([]string, error) { return []string{Describe(k)}, nil }

// jsonFormatter prints one JSON object per event.
type jsonFormatter struct{}

type keyEvent struct {
	Type string `json:"type"`
	Code *int   `json:"code,omitempty"`
	Repr string `json:"repr"`
}

func (jsonFormatter) header(byte) []string { return nil }

func (jsonFormatter) key(k key.Key) ([]string, error) {
	evt := keyEvent{Type: "key", Repr: k.String()}
	if k.Type == key.KeyByte {
		code := int(k.Byte)
		evt.Type = "byte"
		evt.Code = &code
	}
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, err
	}
	return []string{string(data)}, nil
}
