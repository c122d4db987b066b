// Package logging provides a small leveled logger with styled level tags.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#81A1C1"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A3BE8C"))
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EBCB8B"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#BF616A"))
	debugStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7A8291"))
)

// Logger writes timestamped, leveled lines. ERROR lines go to the error
// writer, everything else to the output writer.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	err     io.Writer
	verbose bool
}

// New returns a Logger writing to stdout and stderr.
func New(verbose bool) *Logger {
	return NewWithWriters(os.Stdout, os.Stderr, verbose)
}

// NewWithWriters returns a Logger writing to the given writers.
func NewWithWriters(out, errOut io.Writer, verbose bool) *Logger {
	return &Logger{out: out, err: errOut, verbose: verbose}
}

func (l *Logger) line(level string, style lipgloss.Style, w io.Writer, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(w, ts+" "+style.Render("["+level+"]")+" "+text+"\n")
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", infoStyle, l.out, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level.
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", successStyle, l.out, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", warnStyle, l.out, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level to the error writer.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", errorStyle, l.err, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level only when the logger is verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", debugStyle, l.out, fmt.Sprintf(format, args...))
}
