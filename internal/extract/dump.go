package extract

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/backup-extractor/pkg/types"
)

// dumpIndent matches the indentation of the skip notice.
const dumpIndent = 4

// dumpEntry writes a readable YAML rendering of e to w.
func dumpEntry(w io.Writer, e types.Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(dumpIndent)
	if err := enc.Encode(e); err != nil {
		return err
	}
	return enc.Close()
}
