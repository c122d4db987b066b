// Package config holds runtime configuration: defaults, validation and the
// encode mode resolved once at startup.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// VideoCodec is a codec name accepted by --video-codec.
type VideoCodec string

const (
	VideoH264 VideoCodec = "h264" // Default.
	VideoHEVC VideoCodec = "hevc"
	VideoVP9  VideoCodec = "vp9"
	VideoVP8  VideoCodec = "vp8"
	VideoAV1  VideoCodec = "av1"
)

// AudioCodec is a codec name accepted by --audio-codec.
type AudioCodec string

const (
	AudioAAC    AudioCodec = "aac" // Default.
	AudioOpus   AudioCodec = "opus"
	AudioVorbis AudioCodec = "vorbis"
	AudioMP3    AudioCodec = "mp3"
)

// VideoCodecs lists the accepted --video-codec values in help order.
var VideoCodecs = []VideoCodec{VideoH264, VideoHEVC, VideoVP9, VideoVP8, VideoAV1}

// AudioCodecs lists the accepted --audio-codec values in help order.
var AudioCodecs = []AudioCodec{AudioAAC, AudioOpus, AudioVorbis, AudioMP3}

// EncodeMode selects the encoder and its argument set. It is either
// [VideoMode] or [ImageMode].
type EncodeMode interface {
	// Extensions returns the lowercase extensions (without dot) discovered in this mode.
	Extensions() []string
	String() string
	isEncodeMode()
}

// VideoMode re-encodes audio/video containers through ffmpeg.
type VideoMode struct {
	VideoCodec VideoCodec
	AudioCodec AudioCodec
}

func (VideoMode) Extensions() []string { return []string{"mp4", "mkv", "webm", "mov", "avi"} }

func (m VideoMode) String() string {
	return fmt.Sprintf("video (%s/%s)", m.VideoCodec, m.AudioCodec)
}

func (VideoMode) isEncodeMode() {}

// ImageMode converts still images to JPEG XL through cjxl.
type ImageMode struct{}

func (ImageMode) Extensions() []string { return []string{"png", "jpg", "jpeg", "avif", "heic"} }

func (ImageMode) String() string { return "images (jxl)" }

func (ImageMode) isEncodeMode() {}

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then overwritten by the bound cobra flags.
type Config struct {
	// Input selection.
	Path     string
	Set      []string
	MaxDepth int // -1 means unlimited.

	// Ordering.
	Sort    bool
	Reverse bool

	// Encoding.
	VideoCodec VideoCodec
	AudioCodec AudioCodec
	Images     bool
	Threads    int // 0 means auto.

	// Behavior.
	DryRun bool
	List   bool

	// Display.
	Plain   bool
	Verbose bool
}

// DefaultConfig returns a Config with the CLI defaults.
func DefaultConfig() Config {
	return Config{
		MaxDepth:   -1,
		VideoCodec: VideoH264,
		AudioCodec: AudioAAC,
	}
}

// ErrNoInput is returned by Validate when neither a path nor a file set was given.
var ErrNoInput = errors.New("no path or file set given")

// Validate checks enum fields and numeric bounds. It returns ErrNoInput when
// there is nothing to process so callers can print help instead of failing.
func (c *Config) Validate() error {
	if !validVideoCodec(c.VideoCodec) {
		return fmt.Errorf("invalid video codec %q (use %s)", c.VideoCodec, joinCodecs(VideoCodecs))
	}
	if !validAudioCodec(c.AudioCodec) {
		return fmt.Errorf("invalid audio codec %q (use %s)", c.AudioCodec, joinCodecs(AudioCodecs))
	}
	if c.Threads < 0 {
		return fmt.Errorf("invalid thread count %d (use 0 for auto)", c.Threads)
	}
	if c.MaxDepth < -1 {
		return fmt.Errorf("invalid depth %d", c.MaxDepth)
	}
	if len(c.Set) == 0 && strings.TrimSpace(c.Path) == "" {
		return ErrNoInput
	}
	return nil
}

// Mode resolves the encode mode from the image flag and codec settings.
func (c *Config) Mode() EncodeMode {
	if c.Images {
		return ImageMode{}
	}
	return VideoMode{VideoCodec: c.VideoCodec, AudioCodec: c.AudioCodec}
}

// Workers returns the worker pool size. An explicit --threads value always
// wins. With auto (0) video mode uses every CPU while image mode stays
// sequential, since cjxl already spreads one image across all cores.
func (c *Config) Workers() int {
	if c.Threads > 0 {
		return c.Threads
	}
	if c.Images {
		return 1
	}
	return runtime.NumCPU()
}

func validVideoCodec(v VideoCodec) bool {
	for _, c := range VideoCodecs {
		if c == v {
			return true
		}
	}
	return false
}

func validAudioCodec(a AudioCodec) bool {
	for _, c := range AudioCodecs {
		if c == a {
			return true
		}
	}
	return false
}

func joinCodecs[T ~string](codecs []T) string {
	return strings.Join(CodecNames(codecs), ", ")
}

// CodecNames returns the codec values as plain strings, for help text and completion.
func CodecNames[T ~string](codecs []T) []string {
	names := make([]string, len(codecs))
	for i, c := range codecs {
		names[i] = string(c)
	}
	return names
}
