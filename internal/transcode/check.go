package transcode

import (
	"fmt"
	"os/exec"

	"decoreco/internal/config"
)

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// CheckDeps verifies the encoder needed by mode is on PATH.
func CheckDeps(mode config.EncodeMode) error {
	bin := FFmpegCommand
	if _, ok := mode.(config.ImageMode); ok {
		bin = CjxlCommand
	}
	if _, err := lookPath(bin); err != nil {
		return fmt.Errorf("%w: %s", ErrMissingDependency, bin)
	}
	return nil
}
