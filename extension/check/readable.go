package check

import (
	"github.com/jpl-au/pathcheck/extension"
	"github.com/jpl-au/pathcheck/internal/probe"
	"github.com/spf13/cobra"
)

func newReadableCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "readable PATH...",
		Short: "Check that input files exist and are readable",
		Long: `Check that each PATH names an existing file that can be opened for
reading. Directories are rejected.

The answer holds only at the moment of the check.

Examples:
  pathcheck readable data.csv
  pathcheck readable --stdin -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			stdin, _ := c.Flags().GetBool(extension.FlagStdin)
			fn := probe.ReadableFile
			if stdin {
				fn = probe.ReadableFileOrStdin
			}
			return run(c, "readable", args, fn)
		},
	}
	c.Flags().Bool(extension.FlagStdin, false, `Accept "-" as standard input`)
	return c
}
