package printutils

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// WithSpinner runs fn while a spinner with message spins on w. The spinner
// is only shown when w is a terminal.
func WithSpinner(w *os.File, message string, fn func() error) error {
	if !IsTerminal(w) {
		return fn()
	}

	spin := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(w), spinner.WithHiddenCursor(false))
	spin.Suffix = " " + message
	spin.Start()
	defer spin.Stop()

	return fn()
}
