package transcode

import "decoreco/internal/config"

// Executable names resolved from PATH.
const (
	FFmpegCommand = "ffmpeg"
	CjxlCommand   = "cjxl"
)

// ffmpeg encoder names for each codec flag value.
var (
	videoEncoders = map[config.VideoCodec]string{
		config.VideoH264: "libx264",
		config.VideoHEVC: "libx265",
		config.VideoVP9:  "libvpx-vp9",
		config.VideoVP8:  "libvpx",
		config.VideoAV1:  "libaom-av1",
	}
	audioEncoders = map[config.AudioCodec]string{
		config.AudioAAC:    "aac",
		config.AudioOpus:   "libopus",
		config.AudioVorbis: "libvorbis",
		config.AudioMP3:    "libmp3lame",
	}
)

// VideoEncoder returns the ffmpeg encoder for codec, or the codec name
// itself when no mapping exists.
func VideoEncoder(codec config.VideoCodec) string {
	if enc, ok := videoEncoders[codec]; ok {
		return enc
	}
	return string(codec)
}

// AudioEncoder returns the ffmpeg encoder for codec, or the codec name
// itself when no mapping exists.
func AudioEncoder(codec config.AudioCodec) string {
	if enc, ok := audioEncoders[codec]; ok {
		return enc
	}
	return string(codec)
}

// FFmpegArgs builds the ffmpeg argument list. Subtitle streams are copied,
// global metadata is kept and any stale output is overwritten.
func FFmpegArgs(input, output string, mode config.VideoMode) []string {
	return []string{
		"-hide_banner",
		"-nostdin",
		"-i", input,
		"-c:v", VideoEncoder(mode.VideoCodec),
		"-c:a", AudioEncoder(mode.AudioCodec),
		"-c:s", "copy",
		"-map_metadata", "0",
		"-y",
		output,
	}
}

// CjxlArgs builds the cjxl argument list. PNG sources are encoded
// losslessly (distance 0); JPEG sources use cjxl's default, which
// recompresses the JPEG bitstream.
func CjxlArgs(input, output string) ([]string, error) {
	lossless, err := CheckImageSource(input)
	if err != nil {
		return nil, err
	}
	if lossless {
		return []string{"-d", "0", input, output}, nil
	}
	return []string{input, output}, nil
}
