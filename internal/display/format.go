// Package display holds plain-text formatting helpers shared by the
// progress view and the final report.
package display

import (
	"fmt"
	"strings"
	"time"
)

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, TiB, PiB).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}

// FormatDuration renders d as milliseconds below one second, otherwise as
// hours, minutes and seconds with zero components left out (e.g. "1h5s").
func FormatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	secs := ms / 1000
	h := secs / 3600
	m := (secs / 60) % 60
	s := secs % 60

	var b strings.Builder
	if h != 0 {
		fmt.Fprintf(&b, "%dh", h)
	}
	if m != 0 {
		fmt.Fprintf(&b, "%dm", m)
	}
	if s != 0 {
		fmt.Fprintf(&b, "%ds", s)
	}
	return b.String()
}

// PerMB returns elapsed divided by the number of whole megabytes (10^6
// bytes) in totalBytes. Totals under one megabyte count as one.
func PerMB(elapsed time.Duration, totalBytes int64) time.Duration {
	mb := totalBytes / 1_000_000
	if mb < 1 {
		mb = 1
	}
	return elapsed / time.Duration(mb)
}

// Truncate shortens s to at most max runes, appending "..." when cut.
func Truncate(s string, max int) string {
	if max <= 0 {
		return "..."
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

// Plural returns "" for 1 and "s" otherwise.
func Plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
