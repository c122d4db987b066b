// Package collector resolves the set of files a run operates on, either from
// an explicit list or by walking a directory tree.
package collector

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrCollect wraps every fatal discovery failure.
var ErrCollect = errors.New("collect files")

// Candidate is a discovered file with a non-zero size.
type Candidate struct {
	Path string
	Size int64
}

// Logger is the logging surface Collect needs.
type Logger interface {
	Warn(string, ...interface{})
	Debug(string, ...interface{})
}

// Options controls discovery.
type Options struct {
	Root       string
	Set        []string // When non-empty, Root is ignored.
	Extensions []string // Lowercase, without dot.
	MaxDepth   int      // -1 means unlimited; 0 is the root itself.
	Sort       bool
	Reverse    bool
}

// Collect returns the candidate files in discovery order, or sorted by size
// when opts.Sort is set. Zero-byte files are dropped silently and files whose
// metadata cannot be read are dropped with a warning.
func Collect(opts Options, log Logger) ([]Candidate, error) {
	var paths []string
	if len(opts.Set) > 0 {
		paths = fromSet(opts.Set)
	} else {
		walked, err := Walk(opts.Root, opts.Extensions, opts.MaxDepth)
		if err != nil {
			return nil, err
		}
		paths = walked
	}

	files := make([]Candidate, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			log.Warn("failed to read file '%s': %v", p, err)
			continue
		}
		if info.Size() == 0 {
			log.Debug("skipping empty file '%s'", p)
			continue
		}
		files = append(files, Candidate{Path: p, Size: info.Size()})
	}

	if opts.Sort {
		SortBySize(files, opts.Reverse)
	}
	return files, nil
}

// Walk finds regular files under root whose extension is in exts, limited
// to maxDepth levels below root (-1 for no limit). A root that is itself a
// matching file is returned on its own.
func Walk(root string, exts []string, maxDepth int) ([]string, error) {
	allowed := make(map[string]bool, len(exts))
	for _, e := range exts {
		allowed["."+strings.ToLower(strings.TrimPrefix(e, "."))] = true
	}

	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCollect, err)
	}

	cleanRoot := filepath.Clean(root)
	var files []string
	err := filepath.WalkDir(cleanRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		depth := depthOf(cleanRoot, path)
		if maxDepth >= 0 && depth > maxDepth {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if allowed[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCollect, err)
	}
	return files, nil
}

// SortBySize orders files by size, ascending or descending. Equal sizes
// keep their discovery order.
func SortBySize(files []Candidate, descending bool) {
	sort.SliceStable(files, func(i, j int) bool {
		if descending {
			return files[i].Size > files[j].Size
		}
		return files[i].Size < files[j].Size
	})
}

// TotalSize sums the sizes of files.
func TotalSize(files []Candidate) int64 {
	var total int64
	for _, f := range files {
		total += f.Size
	}
	return total
}

func fromSet(set []string) []string {
	out := make([]string, 0, len(set))
	for _, p := range set {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func depthOf(root, path string) int {
	if path == root {
		return 0
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
