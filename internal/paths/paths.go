// Package paths resolves and prepares the output directory for contact files.
package paths

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// OutputDirMode is the permission mode for a newly created output directory.
// Owner-only.
const OutputDirMode fs.FileMode = 0o700

// ErrOutputDirRequired is returned when neither flag nor config names an
// output directory.
var ErrOutputDirRequired = errors.New("output directory is required")

// mkdirAll is overridden in tests to simulate filesystem failures.
var mkdirAll = os.MkdirAll

// ResolveOutputDir returns the output directory following the precedence
// chain: flag > config file value. The result is absolute.
func ResolveOutputDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	return "", ErrOutputDirRequired
}

// EnsureOutputDir creates dir and any missing parents with OutputDirMode.
// A directory that already exists is not an error; any other failure is
// returned unchanged.
func EnsureOutputDir(dir string) error {
	if err := mkdirAll(dir, OutputDirMode); err != nil && !errors.Is(err, fs.ErrExist) {
		return err
	}
	return nil
}
