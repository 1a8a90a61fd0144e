// Package compat verifies that the phonebook library is recent enough before
// any work starts.
package compat

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/multierr"

	"github.com/mesh-intelligence/backup-extractor/pkg/types"
)

// MinimumVersion is the oldest library version the extractor accepts.
const MinimumVersion = "1.32.0"

// Version kinds named in diagnostics.
const (
	KindRuntime = "Gammu C runtime version"
	KindBinding = "Gammu binding version"
	KindBuild   = "Gammu C build-time version"
)

// ErrVersionTooOld is matched by every error returned from Check.
var ErrVersionTooOld = errors.New("library version too old")

// TooOldError reports one version below the minimum.
type TooOldError struct {
	Kind    string
	Minimum string
	Found   string
}

func (e *TooOldError) Error() string {
	return fmt.Sprintf("%s must be %s or later, version %s found.", e.Kind, e.Minimum, e.Found)
}

// Is makes errors.Is(err, ErrVersionTooOld) hold.
func (e *TooOldError) Is(target error) bool {
	return target == ErrVersionTooOld
}

// Check compares all three versions against MinimumVersion and returns the
// combined failures, or nil. Use multierr.Errors to list them individually.
func Check(v types.Versions) error {
	return CheckMinimum(v, MinimumVersion)
}

// CheckMinimum is Check with an explicit minimum.
func CheckMinimum(v types.Versions, minimum string) error {
	var err error
	for _, c := range []struct{ kind, found string }{
		{KindRuntime, v.Runtime},
		{KindBinding, v.Binding},
		{KindBuild, v.Build},
	} {
		if Older(c.found, minimum) {
			err = multierr.Append(err, &TooOldError{Kind: c.kind, Minimum: minimum, Found: c.found})
		}
	}
	return err
}

// Older reports whether version sorts before minimum. Both are split on "."
// and the parts are compared as strings, element by element; a shorter
// prefix sorts first. Parts are not parsed as numbers, so "1.4.0" is not
// older than "1.32.0".
func Older(version, minimum string) bool {
	return slices.Compare(strings.Split(version, "."), strings.Split(minimum, ".")) < 0
}
