// Package prompt wraps interactive line input behind a small interface so the
// scan loop can be tested without a terminal.
package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

// ErrClosed reports that the user ended the input session with EOF or Ctrl-C.
var ErrClosed = errors.New("input closed")

// Prompter interface wraps basic prompting functionality for testability.
type Prompter interface {
	Prompt(string) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement the Prompter interface.
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter.
func NewLinerPrompter() Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

// TokenInput reads one token to scan, with a colored prompt. Returns ErrClosed
// when the session ends.
func TokenInput(p Prompter) (string, error) {
	result, err := p.Prompt(color.CyanString("token> "))
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", ErrClosed
		}
		return "", fmt.Errorf("token input failed: %w", err)
	}

	return result, nil
}
