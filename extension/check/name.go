package check

import (
	"github.com/jpl-au/pathcheck/internal/validate"
	"github.com/spf13/cobra"
)

func newNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name NAME...",
		Short: "Check that file/folder names are portable",
		Long: `Check that each NAME is a valid file or folder name on all major
filesystems and operating systems.

A name is a single component: separators (/ \ :) are rejected. Use
'pathcheck path' for whole paths.

Examples:
  pathcheck name report.txt
  pathcheck name con.txt 'a?b' 'trailing.'
  pathcheck name -o json *.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return run(c, "filename", args, validate.Filename)
		},
	}
}
