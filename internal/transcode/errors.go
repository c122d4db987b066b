package transcode

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedImage is returned for image sources cjxl is not run on.
	ErrUnsupportedImage = errors.New("not a supported image format")

	// ErrMissingDependency is returned by CheckDeps when an encoder is not on PATH.
	ErrMissingDependency = errors.New("required encoder not found on PATH")
)

// EncodeError is a non-zero exit from an external encoder.
type EncodeError struct {
	Input  string
	Stderr string
	Err    error
}

func (e *EncodeError) Error() string {
	stderr := strings.TrimSpace(e.Stderr)
	if stderr == "" {
		return fmt.Sprintf("%s: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("%s: %v\n%s", e.Input, e.Err, stderr)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// Tail returns the last n lines of the captured stderr.
func (e *EncodeError) Tail(n int) []string {
	stderr := strings.TrimSpace(e.Stderr)
	if stderr == "" {
		return nil
	}
	lines := strings.Split(stderr, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}
