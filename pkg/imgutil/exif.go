package imgutil

import (
	"errors"
	"io"
	"os"
	"strings"

	exif "github.com/dsoprea/go-exif/v3"
)

// CountExifTags returns the number of EXIF tags found in the file at path.
// A file without an EXIF block has zero tags and no error.
func CountExifTags(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return CountExifTagsReader(f)
}

// CountExifTagsReader is CountExifTags over an open reader. The EXIF block
// is located first, so containers such as JPEG work as well as bare TIFF.
func CountExifTagsReader(rs io.ReadSeeker) (int, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}

	raw, err := exif.SearchAndExtractExifWithReader(rs)
	if err != nil {
		if isNoExif(err) {
			return 0, nil
		}
		return 0, err
	}

	tags, _, err := exif.GetFlatExifData(raw, nil)
	if err != nil {
		if isNoExif(err) {
			return 0, nil
		}
		return 0, err
	}
	return len(tags), nil
}

// isNoExif reports whether err means the file simply has no EXIF block.
// go-exif's error wrapper does not unwrap, so the message is checked too.
func isNoExif(err error) bool {
	if errors.Is(err, exif.ErrNoExif) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no exif") || strings.Contains(msg, "eof")
}
