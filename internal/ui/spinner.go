package ui

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

// Spinner wraps the spinner library for consistent styling.
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner creates a spinner with the given message that draws on w.
func NewSpinner(w io.Writer, message string) *Spinner {
	charSet := spinner.CharSets[14] // ⣾⣽⣻⢿⡿⣟⣯⣷
	if !UseUnicode {
		charSet = spinner.CharSets[9] // |/-\
	}

	s := spinner.New(charSet, 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message

	if UseColors {
		_ = s.Color("cyan") //nolint:errcheck
	}

	return &Spinner{s: s}
}

// Start starts the spinner.
func (sp *Spinner) Start() {
	sp.s.Start()
}

// Stop stops the spinner.
func (sp *Spinner) Stop() {
	sp.s.Stop()
}

// Progress returns a hook that shows a spinner on f while a silent command
// runs. It returns nil when f is not a terminal, so nothing is drawn.
func Progress(f *os.File) func(label string) func() {
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return nil
	}
	return func(label string) func() {
		sp := NewSpinner(f, label)
		sp.Start()
		return sp.Stop
	}
}
