package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/backup-extractor/internal/gammu"
)

// Version is the tool version, stamped at link time.
var Version = "2013.03.01"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the backup-extractor version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := gammu.Versions()
			fmt.Fprintf(cmd.OutOrStdout(), "backup-extractor %s\nlibrary: runtime %s, binding %s, build %s\n",
				Version, v.Runtime, v.Binding, v.Build)
			return nil
		},
	}
}
