//go:build mage

// Package main provides build targets for backup-extractor using Mage.
//
// Usage:
//
//	mage build    Compile backup-extractor to bin/ with version stamps
//	mage test     Run all tests
//	mage lint     Run golangci-lint
//	mage clean    Remove build artifacts
//	mage install  Install backup-extractor to GOPATH/bin
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binLint    = "golangci-lint"
	binaryName = "backup-extractor"
	binaryDir  = "bin"
	cmdDir     = "./cmd/backup-extractor"
	modulePath = "github.com/mesh-intelligence/backup-extractor"
)

// Environment overrides for the stamped versions.
const (
	envVersion      = "EXTRACTOR_VERSION"
	envBuildVersion = "GAMMU_BUILD_VERSION"
)

// ldflags returns the -X assignments for the version variables that are set
// in the environment.
func ldflags() string {
	var parts []string
	if v := os.Getenv(envVersion); v != "" {
		parts = append(parts, fmt.Sprintf("-X %s/internal/cli.Version=%s", modulePath, v))
	}
	if v := os.Getenv(envBuildVersion); v != "" {
		parts = append(parts, fmt.Sprintf("-X %s/internal/gammu.buildVersion=%s", modulePath, v))
	}
	return strings.Join(parts, " ")
}

// Build compiles the backup-extractor binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	args := []string{"build", "-v", "-o", filepath.Join(binaryDir, binaryName)}
	if flags := ldflags(); flags != "" {
		args = append(args, "-ldflags", flags)
	}
	return sh.RunV(binGo, append(args, cmdDir)...)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
