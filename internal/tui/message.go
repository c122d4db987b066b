package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"decoreco/internal/display"
	"decoreco/internal/processor"
	"decoreco/internal/transcode"
)

// stderrTailLines is how much encoder output is logged for a failed file.
const stderrTailLines = 20

var (
	smallerStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	largerStyle  = lipgloss.NewStyle().Foreground(ColorError)
)

// Message renders the one-line status for a completed file, truncating the
// path to fit width when width is positive.
func Message(u processor.ProgressUpdate, width int) string {
	path := u.Path
	if width > 30 {
		path = display.Truncate(path, width-30)
	}
	switch u.State {
	case processor.StateReplaced, processor.StateDryRunSkipped:
		return smallerStyle.Render(fmt.Sprintf("smaller by %d%%", u.Percent)) + " " + path
	case processor.StateNotImproved:
		return largerStyle.Render(fmt.Sprintf("larger by %d%%", u.Percent)) + " " + path
	default:
		return largerStyle.Render("failed") + " " + path
	}
}

func failureLine(u processor.ProgressUpdate) string {
	msg := "unknown error"
	if u.Err != nil {
		msg = strings.SplitN(u.Err.Error(), "\n", 2)[0]
	}
	return "failed to decoreco: " + msg
}

// LogFailure logs why path failed. Encoder failures also get the tail of
// the captured stderr, one line per log entry.
func LogFailure(log FailureLogger, path string, err error) {
	var encErr *transcode.EncodeError
	if errors.As(err, &encErr) {
		log.Error("failed to decoreco: %s (%v)", path, encErr.Err)
		for _, line := range encErr.Tail(stderrTailLines) {
			log.Error("  %s", line)
		}
		return
	}
	if err == nil {
		err = errors.New("unknown error")
	}
	log.Error("failed to decoreco: %s: %v", path, err)
}
