// Package term answers questions about the attached terminal.
package term

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	xterm "golang.org/x/term"
)

// DefaultWidth is used when the width cannot be read.
const DefaultWidth = 80

// IsTerminal reports whether f is attached to a TTY.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Interactive reports whether the full-screen progress view can be used on
// stdout: a TTY that is not "dumb".
func Interactive() bool {
	return IsTerminal(os.Stdout) && strings.ToLower(os.Getenv("TERM")) != "dumb"
}

// Width returns the column count of stdout, or 0 when stdout is not a
// terminal so callers skip truncation.
func Width() int {
	if !IsTerminal(os.Stdout) {
		return 0
	}
	w, _, err := xterm.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}
