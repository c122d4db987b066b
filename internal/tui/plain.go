package tui

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"decoreco/internal/processor"
)

// FailureLogger receives failures as they happen in plain mode.
type FailureLogger interface {
	Error(string, ...interface{})
}

// PlainReporter draws a single-line progress bar for terminals where the
// full-screen view is unwanted (pipes, CI logs, --plain).
type PlainReporter struct {
	bar *progressbar.ProgressBar
	log FailureLogger
}

// NewPlainReporter returns a reporter for total files writing to w.
func NewPlainReporter(total int, w io.Writer, log FailureLogger) *PlainReporter {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
	return &PlainReporter{bar: bar, log: log}
}

// Run consumes updates until the channel is closed.
func (r *PlainReporter) Run(updates <-chan processor.ProgressUpdate) {
	for u := range updates {
		if u.State == processor.StateFailed && r.log != nil {
			_ = r.bar.Clear()
			LogFailure(r.log, u.Path, u.Err)
		}
		r.bar.Describe(Message(u, 0))
		_ = r.bar.Add(1)
	}
	_ = r.bar.Finish()
}
