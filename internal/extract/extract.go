// Package extract writes the phonebook entries of a backup as individual
// contact files.
package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/backup-extractor/internal/naming"
	"github.com/mesh-intelligence/backup-extractor/pkg/types"
)

// FileMode is the permission mode for written contact files.
const FileMode os.FileMode = 0o644

// Result summarizes one extraction run.
type Result struct {
	Written []string // paths in write order; repeated when names collide
	Skipped int      // entries without a resolvable name
}

// Extractor reads a backup through a Library and writes one contact file per
// named entry. Progress goes to Out, diagnostics to Log.
type Extractor struct {
	lib types.Library
	out io.Writer
	log *zap.Logger
}

// New returns an Extractor. A nil logger is replaced by a no-op logger.
func New(lib types.Library, out io.Writer, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{lib: lib, out: out, log: log}
}

// Run extracts every entry of the backup at backupPath into outputDir, which
// must already exist. Entries without a name are reported and skipped. Any
// read, encode or write error stops the run.
func (x *Extractor) Run(backupPath, outputDir string) (*Result, error) {
	backup, err := x.lib.ReadBackup(backupPath)
	if err != nil {
		return nil, fmt.Errorf("read backup %s: %w", backupPath, err)
	}
	x.log.Debug("backup loaded",
		zap.String("path", backupPath),
		zap.Int("phone", len(backup.PhonePhonebook)),
		zap.Int("sim", len(backup.SIMPhonebook)))

	res := &Result{}
	for _, entries := range backup.Collections() {
		for _, e := range entries {
			path, err := x.writeEntry(e, outputDir)
			if err != nil {
				return res, err
			}
			if path == "" {
				res.Skipped++
				continue
			}
			res.Written = append(res.Written, path)
		}
	}

	x.log.Info("extraction finished",
		zap.Int("written", len(res.Written)),
		zap.Int("skipped", res.Skipped))
	return res, nil
}

// writeEntry writes one entry and returns the file path, or "" when the
// entry was skipped.
func (x *Extractor) writeEntry(e types.Entry, outputDir string) (string, error) {
	name, ok := naming.ResolveName(e.Fields)
	if !ok {
		x.log.Warn("no resolvable name",
			zap.String("memory", string(e.MemoryType)),
			zap.Int("location", e.Location))
		fmt.Fprintln(x.out, "Skipping entry:")
		if err := dumpEntry(x.out, e); err != nil {
			return "", fmt.Errorf("dump entry: %w", err)
		}
		return "", nil
	}

	path := filepath.Join(outputDir, naming.FileName(name, e.MemoryType))
	fmt.Fprintf(x.out, "Writing file \"%s\"...\n", path)

	payload, err := x.lib.EncodeEntry(e)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(payload), FileMode); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	x.log.Debug("contact written", zap.String("path", path), zap.Int("bytes", len(payload)))
	return path, nil
}
