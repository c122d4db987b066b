package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"decoreco/internal/config"
	"decoreco/internal/logging"
)

func TestInputArgs(t *testing.T) {
	saved := cfg
	t.Cleanup(func() { cfg = saved })

	cfg = config.DefaultConfig()
	if err := inputArgs(rootCmd, []string{"a"}); err != nil {
		t.Errorf("one path: %v", err)
	}
	if err := inputArgs(rootCmd, []string{"a", "b"}); err == nil {
		t.Error("two paths without --set should fail")
	}

	cfg.Set = []string{"x.mkv"}
	if err := inputArgs(rootCmd, []string{"a", "b"}); err != nil {
		t.Errorf("extra files with --set: %v", err)
	}
}

func TestRun_ListLeavesFilesAlone(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.mkv", "b.mp4", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("data"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	c := config.DefaultConfig()
	c.Path = dir
	c.List = true
	log := logging.NewWithWriters(io.Discard, io.Discard, false)

	if err := run(context.Background(), &c, log); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, name := range []string{"a.mkv", "b.mp4", "notes.txt"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestRun_NoFiles(t *testing.T) {
	tmp := isolateTempDir(t)
	c := config.DefaultConfig()
	c.Path = t.TempDir()
	log := logging.NewWithWriters(io.Discard, io.Discard, false)

	if err := run(context.Background(), &c, log); err != nil {
		t.Fatalf("run on empty dir: %v", err)
	}
	assertNoScratch(t, tmp)
}

func TestRun_TranscodeReplacesAndCleansScratch(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake encoder is a shell script")
	}
	tmp := isolateTempDir(t)

	bin := t.TempDir()
	script := "#!/bin/sh\nfor last; do :; done\nprintf 'abc' > \"$last\"\n"
	if err := os.WriteFile(filepath.Join(bin, "ffmpeg"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", bin)

	dir := t.TempDir()
	movie := filepath.Join(dir, "movie.mkv")
	if err := os.WriteFile(movie, []byte(strings.Repeat("x", 4096)), 0o644); err != nil {
		t.Fatal(err)
	}

	c := config.DefaultConfig()
	c.Path = dir
	c.Plain = true
	c.Threads = 2
	log := logging.NewWithWriters(io.Discard, io.Discard, false)

	if err := run(context.Background(), &c, log); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(movie)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "abc" {
		t.Errorf("movie.mkv = %q, want the re-encoded copy", data)
	}
	assertNoScratch(t, tmp)
}

// isolateTempDir points os.TempDir at a fresh directory for the test.
func isolateTempDir(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)
	return tmp
}

func assertNoScratch(t *testing.T, tmp string) {
	t.Helper()
	left, err := filepath.Glob(filepath.Join(tmp, "decoreco-*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(left) != 0 {
		t.Errorf("scratch directories left behind: %v", left)
	}
}

func TestCompletionsRejectsUnknownShell(t *testing.T) {
	if err := completionsCmd.Args(completionsCmd, []string{"tcsh"}); err == nil {
		t.Error("expected error for unknown shell")
	}
	if err := completionsCmd.Args(completionsCmd, []string{"zsh"}); err != nil {
		t.Errorf("zsh: %v", err)
	}
}
