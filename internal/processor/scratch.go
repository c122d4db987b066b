package processor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// ErrScratch wraps failures to create or remove the scratch area.
var ErrScratch = errors.New("scratch area")

// Scratch is the temporary directory holding encoder output until it
// replaces the original. Each task writes to its own ordinal-keyed path.
type Scratch struct {
	dir string
}

// NewScratch creates a fresh scratch directory under the system temp dir.
func NewScratch(runID string) (*Scratch, error) {
	dir, err := os.MkdirTemp("", "decoreco-"+runID+"-")
	if err != nil {
		return nil, fmt.Errorf("%w: create: %v", ErrScratch, err)
	}
	return &Scratch{dir: dir}, nil
}

// Dir returns the scratch directory.
func (s *Scratch) Dir() string { return s.dir }

// Path returns the output path for the task with the given ordinal.
func (s *Scratch) Path(ordinal int, ext string) string {
	name := strconv.Itoa(ordinal)
	if ext != "" {
		name += "." + ext
	}
	return filepath.Join(s.dir, name)
}

// Close removes the scratch directory and everything left in it.
func (s *Scratch) Close() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("%w: remove %s: %v", ErrScratch, s.dir, err)
	}
	return nil
}
