// Package cli implements the backup-extractor command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/mesh-intelligence/backup-extractor/internal/compat"
	"github.com/mesh-intelligence/backup-extractor/internal/extract"
	"github.com/mesh-intelligence/backup-extractor/internal/gammu"
	"github.com/mesh-intelligence/backup-extractor/internal/paths"
	"github.com/mesh-intelligence/backup-extractor/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds flag values of the root command.
type rootFlags struct {
	configFile   string
	outputDir    string
	vcardVersion string
	verbose      bool
}

var flags rootFlags

// backend supplies the phonebook library; tests replace it.
var backend = struct {
	versions func() types.Versions
	library  func(vcardVersion string) (types.Library, error)
}{
	versions: gammu.Versions,
	library: func(vcardVersion string) (types.Library, error) {
		lib, err := gammu.NewWithVCardVersion(vcardVersion)
		if err != nil {
			return nil, err
		}
		return lib, nil
	},
}

// exitError carries the exit code for an error. Silent errors have already
// been reported.
type exitError struct {
	code   int
	err    error
	silent bool
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// NewRootCmd creates the "backup-extractor" command with its flags and
// subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "backup-extractor SOURCE.backup --extract-vcards FOLDER",
		Short: "Extract phonebook entries from a Gammu backup as vCard files",
		Long: "backup-extractor reads the phone and SIM phonebooks of a Gammu backup file\n" +
			"and writes every entry with a usable name to its own vCard file.",
		Version:       Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runExtract,
	}

	root.Flags().StringVar(&flags.outputDir, "extract-vcards", "", "folder to write vCard files (*.vcf) to")
	root.Flags().StringVar(&flags.configFile, "config", "", "optional YAML config file")
	root.Flags().StringVar(&flags.vcardVersion, "vcard-version", gammu.DefaultVCardVersion, "vCard version to write (3.0 or 4.0)")
	root.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log debug diagnostics to stderr")

	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line args and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return exitSuccess
	}

	var xe *exitError
	if !errors.As(err, &xe) {
		// Flag and argument errors from cobra.
		fmt.Fprintln(stderr, "Error:", err)
		return exitUserError
	}
	if !xe.silent {
		fmt.Fprintln(stderr, "Error:", xe.err)
	}
	return xe.code
}

func runExtract(cmd *cobra.Command, args []string) error {
	// Nothing touches the filesystem before the version gate.
	if err := compat.Check(backend.versions()); err != nil {
		stderr := cmd.ErrOrStderr()
		for _, e := range multierr.Errors(err) {
			fmt.Fprintln(stderr, e)
		}
		fmt.Fprintln(stderr, "\nExiting.")
		return &exitError{code: exitUserError, err: err, silent: true}
	}

	cfg, err := loadConfig(cmd, flags.configFile)
	if err != nil {
		return userError(err)
	}

	log := newLogger(cmd.ErrOrStderr(), cfg.GetBool(cfgKeyVerbose))
	defer func() { _ = log.Sync() }()

	outputDir, err := paths.ResolveOutputDir(flags.outputDir, cfg.GetString(cfgKeyOutputDir))
	if err != nil {
		return userError(fmt.Errorf("%w (use --extract-vcards)", err))
	}

	lib, err := backend.library(cfg.GetString(cfgKeyVCardVersion))
	if err != nil {
		return userError(err)
	}

	if err := paths.EnsureOutputDir(outputDir); err != nil {
		return sysError(err)
	}

	if _, err := extract.New(lib, cmd.OutOrStdout(), log).Run(args[0], outputDir); err != nil {
		return sysError(err)
	}
	return nil
}
