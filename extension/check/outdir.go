package check

import (
	"github.com/jpl-au/pathcheck/internal/probe"
	"github.com/spf13/cobra"
)

func newOutDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outdir DIR...",
		Short: "Check that output directories are writable",
		Long: `Check that each DIR is a directory the current user may create files in.
The operating system is asked; nothing is written.

Examples:
  pathcheck outdir ./build
  pathcheck outdir -q /var/tmp && make`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return run(c, "outdir", args, probe.OutputDir)
		},
	}
}
