package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"decoreco/internal/display"
	"decoreco/internal/processor"
)

// SummaryRow is one label/value line of the run header.
type SummaryRow struct {
	Label string
	Value string
	Warn  bool // Value is drawn in the warning colour.
}

// RenderSummary renders the run header: title on top, then the rows with
// their labels aligned, inside a rounded box.
func RenderSummary(title string, rows []SummaryRow) string {
	labelWidth := 0
	for _, row := range rows {
		if w := lipgloss.Width(row.Label); w > labelWidth {
			labelWidth = w
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, titleStyle.Render(title))
	for _, row := range rows {
		value := valueStyle
		if row.Warn {
			value = warnStyle
		}
		lines = append(lines, dimStyle.Width(labelWidth+2).Render(row.Label)+value.Render(row.Value))
	}
	return headerBoxStyle.Render(strings.Join(lines, "\n"))
}

// RenderReport renders the per-file savings table with a totals row. The
// file column is truncated so the table fits in width when width is known.
func RenderReport(s *processor.RunSummary, width int) string {
	maxName := 0
	if width > 0 {
		maxName = width - 60
		if maxName < 10 {
			maxName = 10
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("file", "old size", "new size", "saved size")

	for _, p := range s.Processed {
		name := p.Path
		if maxName > 0 {
			name = display.Truncate(name, maxName)
		}
		t.Row(name, display.FormatBytes(p.OldSize), display.FormatBytes(p.NewSize), display.FormatBytes(p.Saved()))
	}
	t.Row("total",
		display.FormatBytes(s.TotalBytes),
		display.FormatBytes(s.TotalBytes-s.SavedBytes),
		display.FormatBytes(s.SavedBytes),
	)

	totalRow := len(s.Processed)
	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case row == totalRow:
			return totalStyles[col]
		case col > 0:
			return cellStyle.Bold(true).Align(lipgloss.Right)
		default:
			return cellStyle
		}
	})

	return t.String()
}

// ListRow is one discovered file in --list output.
type ListRow struct {
	Path     string
	Size     int64
	ExifTags int // Negative when not inspected.
}

// RenderList renders discovered files with their sizes, plus an EXIF tag
// column when any row was inspected.
func RenderList(rows []ListRow, width int) string {
	withExif := false
	for _, r := range rows {
		if r.ExifTags >= 0 {
			withExif = true
			break
		}
	}

	maxName := 0
	if width > 0 {
		maxName = width - 20
		if withExif {
			maxName -= 8
		}
		if maxName < 10 {
			maxName = 10
		}
	}

	headers := []string{"file", "size"}
	if withExif {
		headers = append(headers, "exif")
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...)

	for _, r := range rows {
		name := r.Path
		if maxName > 0 {
			name = display.Truncate(name, maxName)
		}
		cells := []string{name, display.FormatBytes(r.Size)}
		if withExif {
			exif := "-"
			if r.ExifTags >= 0 {
				exif = strconv.Itoa(r.ExifTags)
			}
			cells = append(cells, exif)
		}
		t.Row(cells...)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case col > 0:
			return cellStyle.Align(lipgloss.Right)
		default:
			return cellStyle
		}
	})

	return t.String()
}

// SavedLine renders "total size saved: X (N% of original)".
func SavedLine(s *processor.RunSummary) string {
	return fmt.Sprintf("total size saved: %s (%d%% of original)",
		valueStyle.Render(display.FormatBytes(s.SavedBytes)), s.SavedPercent())
}

// Rule renders a horizontal rule of the given width.
func Rule(width int) string {
	if width <= 0 {
		width = 40
	}
	return ruleStyle.Render(strings.Repeat("-", width))
}

// Highlight renders s in the success colour.
func Highlight(s string) string {
	return smallerStyle.Render(s)
}

var (
	valueStyle     = lipgloss.NewStyle().Foreground(ColorInk).Bold(true)
	warnStyle      = lipgloss.NewStyle().Foreground(ColorWarn).Bold(true)
	headerBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorDim).Padding(0, 1)
	ruleStyle      = lipgloss.NewStyle().Bold(true)
	borderStyle    = lipgloss.NewStyle().Foreground(ColorDim)
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).Padding(0, 1)
	cellStyle      = lipgloss.NewStyle().Padding(0, 1)
	totalStyles    = []lipgloss.Style{
		cellStyle.Bold(true),
		cellStyle.Foreground(ColorError).Align(lipgloss.Right),
		cellStyle.Foreground(ColorSuccess).Align(lipgloss.Right),
		cellStyle.Foreground(ColorAccent).Bold(true).Align(lipgloss.Right),
	}
)
