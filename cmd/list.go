package cmd

import (
	"fmt"
	"os"

	"decoreco/internal/collector"
	"decoreco/internal/config"
	"decoreco/internal/display"
	"decoreco/internal/logging"
	"decoreco/internal/term"
	"decoreco/internal/tui"
	"decoreco/pkg/imgutil"
)

// listFiles prints the discovered files without encoding anything. Images
// also get their EXIF tag count and a warning when the content does not
// match the extension.
func listFiles(files []collector.Candidate, mode config.EncodeMode, log *logging.Logger) error {
	_, images := mode.(config.ImageMode)

	rows := make([]tui.ListRow, 0, len(files))
	for _, f := range files {
		row := tui.ListRow{Path: f.Path, Size: f.Size, ExifTags: -1}
		if images {
			if kind, ok := imgutil.Mislabelled(f.Path); ok {
				log.Warn("%s contains %s data; cjxl will encode it by content", f.Path, kind)
			}
			n, err := imgutil.CountExifTags(f.Path)
			if err != nil {
				log.Debug("reading exif from %s: %v", f.Path, err)
			} else {
				row.ExifTags = n
			}
		}
		rows = append(rows, row)
	}

	fmt.Fprintln(os.Stdout, tui.RenderList(rows, term.Width()))
	fmt.Fprintf(os.Stdout, "%d file%s, %s total\n",
		len(files), display.Plural(len(files)), display.FormatBytes(collector.TotalSize(files)))
	return nil
}
