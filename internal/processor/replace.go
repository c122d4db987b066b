package processor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"decoreco/internal/config"
)

// TargetPath returns where the re-encoded copy of source ends up. Images
// get a .jxl suffix; everything else overwrites the source in place.
func TargetPath(source string, mode config.EncodeMode) string {
	if _, ok := mode.(config.ImageMode); ok {
		return source + ".jxl"
	}
	return source
}

// Replace moves the scratch output over its target, keeping the source's
// permission bits. In image mode the source is removed afterwards.
func Replace(scratchPath, source string, mode config.EncodeMode) error {
	srcInfo, err := os.Stat(source)
	if err != nil {
		return err
	}

	target := TargetPath(source, mode)
	if err := moveFile(scratchPath, target, srcInfo.Mode().Perm()); err != nil {
		return err
	}

	if target != source {
		return os.Remove(source)
	}
	return nil
}

// renameScratch moves a scratch output into place; tests swap it to force
// the copy path.
var renameScratch = os.Rename

// moveFile renames src to dst. When a plain rename fails (the scratch area
// usually lives on another filesystem) src is copied to a temp file beside
// dst and that file is renamed over dst, so dst is never half-written. If
// that last rename fails the temp copy is kept and named in the error.
func moveFile(src, dst string, perm os.FileMode) error {
	if err := os.Chmod(src, perm); err != nil {
		return err
	}
	if err := renameScratch(src, dst); err == nil {
		return nil
	}

	tmpPath, err := copyBeside(src, dst, perm)
	if err != nil {
		return err
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		return fmt.Errorf("rename into place: %w (new copy kept at %s)", err, tmpPath)
	}
	return os.Remove(src)
}

// copyBeside copies src into a new temp file in dst's directory and returns
// its path. The temp file is removed on any error.
func copyBeside(src, dst string, perm os.FileMode) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	tmpFile, err := os.CreateTemp(filepath.Dir(dst), ".decoreco-*.tmp")
	if err != nil {
		return "", err
	}
	fail := func(err error) (string, error) {
		_ = tmpFile.Close()
		_ = os.Remove(tmpFile.Name())
		return "", err
	}

	if err := tmpFile.Chmod(perm); err != nil {
		return fail(err)
	}
	if _, err := io.Copy(tmpFile, in); err != nil {
		return fail(err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fail(err)
	}
	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpFile.Name())
		return "", err
	}
	return tmpFile.Name(), nil
}
