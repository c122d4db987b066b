package processor

import (
	"os"

	"decoreco/internal/config"
)

// Status classifies a finished job.
type Status int

const (
	StatusFailed Status = iota
	StatusImproved
	StatusNotImproved
)

func (s Status) String() string {
	switch s {
	case StatusImproved:
		return "improved"
	case StatusNotImproved:
		return "not improved"
	default:
		return "failed"
	}
}

// State is the terminal state a file reaches in a run.
type State int

const (
	StateFailed State = iota
	StateReplaced
	StateDryRunSkipped
	StateNotImproved
)

func (s State) String() string {
	switch s {
	case StateReplaced:
		return "replaced"
	case StateDryRunSkipped:
		return "dry-run skipped"
	case StateNotImproved:
		return "not improved"
	default:
		return "failed"
	}
}

// SizeFunc reports the current size of a file.
type SizeFunc func(path string) (int64, error)

// StatSize is the default SizeFunc.
func StatSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Options controls a run.
type Options struct {
	Mode    config.EncodeMode
	Workers int
	DryRun  bool
	Scratch *Scratch
	Size    SizeFunc // Defaults to StatSize.
}

// FileTask is one unit of work handed to a worker.
type FileTask struct {
	Source  string
	Scratch string
	Ordinal int
}

// JobOutcome is what a worker reports for one FileTask.
type JobOutcome struct {
	Task         FileTask
	OriginalSize int64
	NewSize      int64
	Status       Status
	State        State
	Err          error
}

// ProcessedFile is one row of the final report.
type ProcessedFile struct {
	Path    string
	OldSize int64
	NewSize int64
}

// Saved returns the bytes saved on this file.
func (p ProcessedFile) Saved() int64 { return p.OldSize - p.NewSize }

// Failure records a per-file error.
type Failure struct {
	Path string
	Err  error
}

// RunSummary aggregates the outcomes of a run. SavedBytes never exceeds
// TotalBytes, and Processed is in completion order.
type RunSummary struct {
	SavedBytes    int64 // Sum of OldSize-NewSize over improved files.
	TotalBytes    int64 // Sum of OldSize over improved files.
	Processed     []ProcessedFile
	Replaced      int
	DryRunSkipped int
	NotImproved   int
	Failures      []Failure
}

// SavedPercent returns SavedBytes as a whole percentage of TotalBytes.
func (s *RunSummary) SavedPercent() int64 {
	if s.TotalBytes == 0 {
		return 0
	}
	return s.SavedBytes * 100 / s.TotalBytes
}

func (s *RunSummary) record(o JobOutcome) {
	switch o.Status {
	case StatusImproved:
		s.SavedBytes += o.OriginalSize - o.NewSize
		s.TotalBytes += o.OriginalSize
		s.Processed = append(s.Processed, ProcessedFile{
			Path:    o.Task.Source,
			OldSize: o.OriginalSize,
			NewSize: o.NewSize,
		})
		if o.State == StateDryRunSkipped {
			s.DryRunSkipped++
		} else {
			s.Replaced++
		}
	case StatusNotImproved:
		s.NotImproved++
	default:
		s.Failures = append(s.Failures, Failure{Path: o.Task.Source, Err: o.Err})
	}
}

// ProgressUpdate is published once per completed job.
type ProgressUpdate struct {
	Path    string
	State   State
	Percent int64 // Smaller by (improved) or larger by (not improved).
	Err     error
}

func progressFor(o JobOutcome) ProgressUpdate {
	u := ProgressUpdate{Path: o.Task.Source, State: o.State, Err: o.Err}
	switch o.Status {
	case StatusImproved:
		u.Percent = 100 - o.NewSize*100/o.OriginalSize
	case StatusNotImproved:
		if o.OriginalSize > 0 {
			u.Percent = o.NewSize*100/o.OriginalSize - 100
		}
	}
	return u
}
