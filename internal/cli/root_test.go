package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/backup-extractor/pkg/types"
)

const testBackup = "../gammu/testdata/phonebook.backup"

// stubVersions replaces the library versions for the duration of the test.
func stubVersions(t *testing.T, v types.Versions) {
	t.Helper()
	orig := backend.versions
	backend.versions = func() types.Versions { return v }
	t.Cleanup(func() { backend.versions = orig })
}

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestExtractBackup(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vcards")

	code, stdout, stderr := runCLI(t, testBackup, "--extract-vcards", dir)
	require.Equal(t, exitSuccess, code, stderr)

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, f := range files {
		names = append(names, f.Name())
	}
	assert.ElementsMatch(t, []string{
		"Anna_Schmidt__phone.vcf",
		"Mueller__phone.vcf",
		"Mailbox__1__SIM.vcf",
	}, names)

	data, err := os.ReadFile(filepath.Join(dir, "Anna_Schmidt__phone.vcf"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "BEGIN:VCARD")
	assert.Contains(t, string(data), "anna@example.org")

	assert.Contains(t, stdout, `Writing file "`+filepath.Join(dir, "Anna_Schmidt__phone.vcf")+`"...`)
	assert.Contains(t, stdout, "Skipping entry:")

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Zero(t, info.Mode().Perm()&0o077)
}

func TestExtractIntoExistingDirectory(t *testing.T) {
	dir := t.TempDir()

	code, _, stderr := runCLI(t, testBackup, "--extract-vcards", dir)
	require.Equal(t, exitSuccess, code, stderr)
	code, _, stderr = runCLI(t, testBackup, "--extract-vcards", dir)
	require.Equal(t, exitSuccess, code, stderr)
}

func TestVersionGateStopsBeforeFilesystem(t *testing.T) {
	stubVersions(t, types.Versions{Runtime: "1.31.9", Binding: "1.42.0", Build: "1.31.9"})
	dir := filepath.Join(t.TempDir(), "vcards")

	code, stdout, stderr := runCLI(t, "missing.backup", "--extract-vcards", dir)
	assert.Equal(t, exitUserError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Gammu C runtime version must be 1.32.0 or later, version 1.31.9 found.")
	assert.Contains(t, stderr, "Gammu C build-time version must be 1.32.0 or later, version 1.31.9 found.")
	assert.NotContains(t, stderr, "Gammu binding version")
	assert.Contains(t, stderr, "\nExiting.\n")

	_, err := os.Stat(dir)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestMissingOutputDir(t *testing.T) {
	code, _, stderr := runCLI(t, testBackup)
	assert.Equal(t, exitUserError, code)
	assert.Contains(t, stderr, "output directory is required")
}

func TestWrongArgCount(t *testing.T) {
	code, _, _ := runCLI(t, "--extract-vcards", t.TempDir())
	assert.Equal(t, exitUserError, code)

	code, _, _ = runCLI(t, "a.backup", "b.backup", "--extract-vcards", t.TempDir())
	assert.Equal(t, exitUserError, code)
}

func TestUnreadableBackupIsSystemError(t *testing.T) {
	dir := t.TempDir()
	code, _, stderr := runCLI(t, filepath.Join(dir, "nope.backup"), "--extract-vcards", dir)
	assert.Equal(t, exitSysError, code)
	assert.Contains(t, stderr, "read backup")
}

func TestOutputDirBlockedByFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	code, _, _ := runCLI(t, testBackup, "--extract-vcards", filepath.Join(file, "sub"))
	assert.Equal(t, exitSysError, code)
}

func TestUnsupportedVCardVersion(t *testing.T) {
	code, _, stderr := runCLI(t, testBackup, "--extract-vcards", t.TempDir(), "--vcard-version", "2.1")
	assert.Equal(t, exitUserError, code)
	assert.Contains(t, stderr, "unsupported vCard version")
}

func TestVersionCommand(t *testing.T) {
	code, stdout, _ := runCLI(t, "version")
	assert.Equal(t, exitSuccess, code)
	assert.Contains(t, stdout, "backup-extractor "+Version)
}
