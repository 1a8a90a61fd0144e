package compat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/mesh-intelligence/backup-extractor/pkg/types"
)

func TestOlder(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"1.31.9", true},
		{"1.32.0", false},
		{"1.32.1", false},
		{"1.42.0", false},
		{"2.0.0", false},
		{"1.32", true},
		{"1.32.0.1", false},
		{"0.99.0", true},
		// Parts compare as strings: "4" sorts after "3".
		{"1.4.0", false},
		// and "100" sorts before "32".
		{"1.100.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, Older(tt.version, MinimumVersion))
		})
	}
}

func TestCheckPasses(t *testing.T) {
	err := Check(types.Versions{Runtime: "1.42.0", Binding: "1.32.0", Build: "1.40.0"})
	assert.NoError(t, err)
}

func TestCheckReportsEveryOldVersion(t *testing.T) {
	err := Check(types.Versions{Runtime: "1.31.9", Binding: "1.42.0", Build: "1.20.0"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionTooOld))

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)

	var first *TooOldError
	require.True(t, errors.As(errs[0], &first))
	assert.Equal(t, KindRuntime, first.Kind)
	assert.Equal(t, "1.31.9", first.Found)
	assert.Equal(t, "Gammu C runtime version must be 1.32.0 or later, version 1.31.9 found.", first.Error())

	var second *TooOldError
	require.True(t, errors.As(errs[1], &second))
	assert.Equal(t, KindBuild, second.Kind)
}

func TestCheckMinimum(t *testing.T) {
	v := types.Versions{Runtime: "1.32.0", Binding: "1.32.0", Build: "1.32.0"}
	assert.NoError(t, CheckMinimum(v, "1.32.0"))
	assert.Len(t, multierr.Errors(CheckMinimum(v, "1.33.0")), 3)
}
