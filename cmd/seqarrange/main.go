// Command seqarrange is a CLI driver around the seqarrange library: it
// reads an objects-export file and a printer-geometry file, runs the
// scheduler, and writes the resulting plate layout.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "seqarrange:", err)
		os.Exit(exitCodeFor(err))
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "seqarrange",
		Short:         "Arrange 3D-print objects onto plates in a collision-free, buildable order",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newScheduleCmd())
	return root
}
