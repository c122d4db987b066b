// Package transcode wraps the external encoders behind the [Transcoder]
// interface so the pipeline never shells out directly.
package transcode

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"decoreco/internal/config"
)

// Transcoder produces a re-encoded copy of input at output. It must never
// modify input.
type Transcoder interface {
	Encode(ctx context.Context, input, output string, mode config.EncodeMode) error
}

// Exec runs ffmpeg or cjxl as child processes.
type Exec struct {
	FFmpegPath string // Default: "ffmpeg".
	CjxlPath   string // Default: "cjxl".
}

// NewExec returns an Exec that resolves both encoders from PATH.
func NewExec() *Exec {
	return &Exec{FFmpegPath: FFmpegCommand, CjxlPath: CjxlCommand}
}

// Encode builds the argument list for mode and runs the encoder to
// completion. A non-zero exit is returned as *EncodeError carrying stderr.
func (e *Exec) Encode(ctx context.Context, input, output string, mode config.EncodeMode) error {
	bin, args, err := e.Command(input, output, mode)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	var stderrBuf bytes.Buffer
	cmd.Stderr = &stderrBuf

	if err := cmd.Run(); err != nil {
		return &EncodeError{Input: input, Stderr: stderrBuf.String(), Err: err}
	}
	return nil
}

// Command returns the binary and arguments Encode would run.
func (e *Exec) Command(input, output string, mode config.EncodeMode) (string, []string, error) {
	switch m := mode.(type) {
	case config.VideoMode:
		return e.ffmpegPath(), FFmpegArgs(input, output, m), nil
	case config.ImageMode:
		args, err := CjxlArgs(input, output)
		if err != nil {
			return "", nil, err
		}
		return e.cjxlPath(), args, nil
	default:
		return "", nil, fmt.Errorf("unknown encode mode %T", mode)
	}
}

func (e *Exec) ffmpegPath() string {
	if e.FFmpegPath == "" {
		return FFmpegCommand
	}
	return e.FFmpegPath
}

func (e *Exec) cjxlPath() string {
	if e.CjxlPath == "" {
		return CjxlCommand
	}
	return e.CjxlPath
}

// CheckImageSource picks the cjxl path from the extension: png is lossless,
// jpg/jpeg are lossy and anything else is rejected. cjxl detects the real
// format from content, so a mislabelled file is still handed to it.
func CheckImageSource(input string) (lossless bool, err error) {
	switch Ext(input) {
	case "png":
		return true, nil
	case "jpg", "jpeg":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s", ErrUnsupportedImage, input)
	}
}

// Ext returns the lowercase extension of path without the dot.
func Ext(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// ScratchExt returns the extension of the encoder's output for input.
func ScratchExt(input string, mode config.EncodeMode) string {
	if _, ok := mode.(config.ImageMode); ok {
		return "jxl"
	}
	return Ext(input)
}
