package check

import (
	"github.com/jpl-au/pathcheck/internal/validate"
	"github.com/spf13/cobra"
)

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path PATH...",
		Short: "Check that paths are portable",
		Long: `Check that each PATH is short enough for every platform and that every
component is a portable name. Repeated separators collapse; "." and ".."
are skipped.

Examples:
  pathcheck path out/2024/report.txt
  pathcheck path /srv/data//export/`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return run(c, "path", args, validate.Path)
		},
	}
}
