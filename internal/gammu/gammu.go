// Package gammu reads Gammu text backups (*.backup) and encodes phonebook
// entries as vCards. It is the Library implementation used by the CLI.
package gammu

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/backup-extractor/pkg/types"
)

// Library versions. buildVersion is stamped at link time:
//
//	-ldflags "-X github.com/mesh-intelligence/backup-extractor/internal/gammu.buildVersion=1.42.0"
var (
	runtimeVersion = "1.42.0"
	bindingVersion = "1.42.0"
	buildVersion   = "1.42.0"
)

// Versions returns the runtime, binding and build-time versions of the library.
func Versions() types.Versions {
	return types.Versions{
		Runtime: runtimeVersion,
		Binding: bindingVersion,
		Build:   buildVersion,
	}
}

// Library implements types.Library for Gammu text backups.
type Library struct {
	// VCardVersion is written into every encoded card.
	VCardVersion string
}

var _ types.Library = (*Library)(nil)

// DefaultVCardVersion is the vCard version produced by New.
const DefaultVCardVersion = "3.0"

// ErrVCardVersion is returned by NewWithVCardVersion for versions other
// than 3.0 and 4.0.
var ErrVCardVersion = errors.New("unsupported vCard version")

// New returns a Library producing vCard 3.0.
func New() *Library {
	return &Library{VCardVersion: DefaultVCardVersion}
}

// NewWithVCardVersion returns a Library producing the given vCard version.
func NewWithVCardVersion(version string) (*Library, error) {
	switch version {
	case "3.0", "4.0":
		return &Library{VCardVersion: version}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrVCardVersion, version)
	}
}
