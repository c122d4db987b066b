package imgutil

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Kind identifies an image container by its leading bytes.
type Kind int

const (
	KindUnknown Kind = iota
	KindJPEG
	KindPNG
	KindGIF
	KindTIFF
	KindISOBMFF // AVIF and HEIC share the ISO base media "ftyp" box.
)

func (k Kind) String() string {
	switch k {
	case KindJPEG:
		return "jpeg"
	case KindPNG:
		return "png"
	case KindGIF:
		return "gif"
	case KindTIFF:
		return "tiff"
	case KindISOBMFF:
		return "isobmff"
	default:
		return "unknown"
	}
}

var (
	pngSig    = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	jpegSig   = []byte{0xff, 0xd8, 0xff}
	gifSig    = []byte("GIF8")
	tiffSigLE = []byte{0x49, 0x49, 0x2a, 0x00}
	tiffSigBE = []byte{0x4d, 0x4d, 0x00, 0x2a}
	ftypBox   = []byte("ftyp")
)

// ErrShortHeader is returned when fewer than 12 bytes are available.
var ErrShortHeader = errors.New("header too short")

const headerLen = 12

// DetectHeader inspects the first 12 bytes of a file for known signatures.
func DetectHeader(header []byte) (Kind, error) {
	if len(header) < headerLen {
		return KindUnknown, ErrShortHeader
	}

	switch {
	case bytes.HasPrefix(header, jpegSig):
		return KindJPEG, nil
	case bytes.HasPrefix(header, pngSig):
		return KindPNG, nil
	case bytes.HasPrefix(header, gifSig):
		return KindGIF, nil
	case bytes.HasPrefix(header, tiffSigLE), bytes.HasPrefix(header, tiffSigBE):
		return KindTIFF, nil
	case bytes.Equal(header[4:8], ftypBox):
		return KindISOBMFF, nil
	}

	return KindUnknown, nil
}

// SniffFile reads the header of the file at path to determine its kind.
func SniffFile(path string) (Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return KindUnknown, err
	}
	defer f.Close()

	return SniffReader(f)
}

// SniffReader reads the header from r and determines its kind.
func SniffReader(r io.Reader) (Kind, error) {
	header := make([]byte, headerLen)
	if _, err := io.ReadFull(r, header); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return KindUnknown, ErrShortHeader
		}
		return KindUnknown, err
	}

	return DetectHeader(header)
}

// KindForExtension returns the kind a file with the given lowercase extension
// (without dot) is expected to contain.
func KindForExtension(ext string) Kind {
	switch ext {
	case "jpg", "jpeg":
		return KindJPEG
	case "png":
		return KindPNG
	case "gif":
		return KindGIF
	case "tif", "tiff":
		return KindTIFF
	case "avif", "heic", "heif":
		return KindISOBMFF
	default:
		return KindUnknown
	}
}

// Mislabelled reports the kind found in the file at path when it is a known
// kind other than the one its extension promises. Files that cannot be
// sniffed are never reported.
func Mislabelled(path string) (Kind, bool) {
	expected := KindForExtension(strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")))
	if expected == KindUnknown {
		return KindUnknown, false
	}
	kind, err := SniffFile(path)
	if err != nil || kind == KindUnknown || kind == expected {
		return kind, false
	}
	return kind, true
}
