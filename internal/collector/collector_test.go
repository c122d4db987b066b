package collector

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

var videoExts = []string{"mp4", "mkv", "webm", "mov", "avi"}

type recordLogger struct {
	warns  []string
	debugs []string
}

func (l *recordLogger) Warn(format string, args ...interface{}) {
	l.warns = append(l.warns, format)
}

func (l *recordLogger) Debug(format string, args ...interface{}) {
	l.debugs = append(l.debugs, format)
}

func TestWalk_FiltersExtensions(t *testing.T) {
	dir := t.TempDir()
	writeSized(t, dir, "movie.mkv", 10)
	writeSized(t, dir, "clip.MP4", 10)
	writeSized(t, dir, "song.mp3", 10)
	writeSized(t, dir, "notes.txt", 10)
	writeSized(t, dir, "old.avi", 10)

	files, err := Walk(dir, videoExts, -1)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	got := basenames(files)
	sort.Strings(got)
	want := []string{"clip.MP4", "movie.mkv", "old.avi"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWalk_MaxDepth(t *testing.T) {
	dir := t.TempDir()
	writeSized(t, dir, "top.mp4", 1)
	writeSized(t, filepath.Join(dir, "a"), "one.mp4", 1)
	writeSized(t, filepath.Join(dir, "a", "b"), "two.mp4", 1)

	tests := []struct {
		depth int
		want  int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 3},
		{-1, 3},
	}
	for _, tt := range tests {
		files, err := Walk(dir, videoExts, tt.depth)
		if err != nil {
			t.Fatalf("Walk(depth=%d): %v", tt.depth, err)
		}
		if len(files) != tt.want {
			t.Errorf("Walk(depth=%d) = %v, want %d files", tt.depth, basenames(files), tt.want)
		}
	}
}

func TestWalk_RootIsFile(t *testing.T) {
	dir := t.TempDir()
	path := writeSized(t, dir, "single.webm", 4)

	files, err := Walk(path, videoExts, 0)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(files) != 1 || files[0] != path {
		t.Errorf("Walk = %v, want [%s]", files, path)
	}
}

func TestWalk_MissingRoot(t *testing.T) {
	_, err := Walk(filepath.Join(t.TempDir(), "missing"), videoExts, -1)
	if !errors.Is(err, ErrCollect) {
		t.Fatalf("Walk = %v, want ErrCollect", err)
	}
}

func TestCollect_DropsEmptyAndUnreadable(t *testing.T) {
	dir := t.TempDir()
	keep := writeSized(t, dir, "keep.mp4", 5)
	empty := writeSized(t, dir, "empty.mp4", 0)
	missing := filepath.Join(dir, "gone.mp4")

	log := &recordLogger{}
	files, err := Collect(Options{Set: []string{keep, "", "   ", empty, missing}}, log)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(files) != 1 || files[0].Path != keep || files[0].Size != 5 {
		t.Fatalf("Collect = %+v, want only %s", files, keep)
	}
	if len(log.warns) != 1 {
		t.Errorf("warnings = %d, want 1 for the unreadable file", len(log.warns))
	}
	if len(log.debugs) != 1 {
		t.Errorf("debug lines = %d, want 1 for the empty file", len(log.debugs))
	}
}

func TestCollect_SetIgnoresRoot(t *testing.T) {
	dir := t.TempDir()
	writeSized(t, dir, "walked.mp4", 3)
	other := writeSized(t, t.TempDir(), "explicit.png", 3)

	files, err := Collect(Options{Root: dir, Set: []string{other}, Extensions: videoExts, MaxDepth: -1}, &recordLogger{})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(files) != 1 || files[0].Path != other {
		t.Errorf("Collect = %+v, want only %s", files, other)
	}
}

func TestCollect_Sort(t *testing.T) {
	dir := t.TempDir()
	writeSized(t, dir, "b.mp4", 300)
	writeSized(t, dir, "a.mp4", 100)
	writeSized(t, dir, "c.mp4", 200)
	writeSized(t, dir, "d.mp4", 200)

	asc, err := Collect(Options{Root: dir, Extensions: videoExts, MaxDepth: -1, Sort: true}, &recordLogger{})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	for i := 1; i < len(asc); i++ {
		if asc[i-1].Size > asc[i].Size {
			t.Fatalf("ascending order broken at %d: %+v", i, asc)
		}
	}

	desc, err := Collect(Options{Root: dir, Extensions: videoExts, MaxDepth: -1, Sort: true, Reverse: true}, &recordLogger{})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	for i := 1; i < len(desc); i++ {
		if desc[i-1].Size < desc[i].Size {
			t.Fatalf("descending order broken at %d: %+v", i, desc)
		}
	}
	if TotalSize(desc) != 800 {
		t.Errorf("TotalSize = %d, want 800", TotalSize(desc))
	}
}

func TestCollect_ReverseWithoutSortKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	big := writeSized(t, dir, "big.mp4", 50)
	small := writeSized(t, dir, "small.mp4", 5)

	files, err := Collect(Options{Set: []string{big, small}, Reverse: true}, &recordLogger{})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if files[0].Path != big || files[1].Path != small {
		t.Errorf("Collect reordered files without --sort: %+v", files)
	}
}

func writeSized(t *testing.T, dir, name string, size int) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func basenames(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}
