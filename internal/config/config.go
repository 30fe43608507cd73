// ABOUTME: Optional YAML settings for the editor: banner text, quit key, exit message, row labels
// ABOUTME: Only read from an explicit path; with no file the built-in defaults apply unchanged

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Built-in defaults.
const (
	DefaultWelcome     = "Tiny Editor -- version 0.0.1"
	DefaultQuitKey     = 'q'
	DefaultExitMessage = "Raw mode disabled, terminal settings restored."
)

// Settings holds the resolved editor configuration.
type Settings struct {
	Welcome     string
	QuitKey     byte
	ExitMessage string
	LineNumbers bool
}

// fileSettings mirrors the YAML document. Pointer fields distinguish
// "absent" from zero values.
type fileSettings struct {
	Welcome     *string `yaml:"welcome"`
	QuitKey     *string `yaml:"quit_key"`
	ExitMessage *string `yaml:"exit_message"`
	LineNumbers *bool   `yaml:"line_numbers"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Welcome:     DefaultWelcome,
		QuitKey:     DefaultQuitKey,
		ExitMessage: DefaultExitMessage,
		LineNumbers: true,
	}
}

// Load reads settings from path. An empty path returns Default().
func Load(path string) (Settings, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("loading config: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML document onto the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Settings, error) {
	var fs fileSettings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fs); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, err
	}

	s := Default()
	if fs.Welcome != nil {
		s.Welcome = norm.NFC.String(*fs.Welcome)
	}
	if fs.QuitKey != nil {
		if len(*fs.QuitKey) != 1 {
			return Settings{}, fmt.Errorf("quit_key must be a single ASCII character, got %q", *fs.QuitKey)
		}
		s.QuitKey = (*fs.QuitKey)[0]
	}
	if fs.ExitMessage != nil {
		s.ExitMessage = *fs.ExitMessage
	}
	if fs.LineNumbers != nil {
		s.LineNumbers = *fs.LineNumbers
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects settings that would corrupt a frame or make the editor
// impossible to quit.
func (s Settings) Validate() error {
	if s.QuitKey < 0x20 || s.QuitKey > 0x7e {
		return fmt.Errorf("quit_key %q is not a printable ASCII character", s.QuitKey)
	}
	for _, r := range s.Welcome {
		if unicode.IsControl(r) {
			return fmt.Errorf("welcome contains control character %U", r)
		}
	}
	return nil
}
