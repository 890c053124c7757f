// Package suggest proposes portable replacements for rejected names.
// Registers commands: suggest.
package suggest

import (
	"github.com/jpl-au/pathcheck/cmd"
	"github.com/jpl-au/pathcheck/extension"
	"github.com/jpl-au/pathcheck/internal/format"
	"github.com/jpl-au/pathcheck/internal/log"
	"github.com/jpl-au/pathcheck/internal/sanitize"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the suggest extension.
type Extension struct{}

var _ extension.Extension = (*Extension)(nil)

// Name returns "suggest".
func (e *Extension) Name() string { return "suggest" }

// Commands returns the suggest command.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{newSuggestCmd()}
}

// MCPTools returns nil - pathcheck_suggest is built into internal/mcp.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

func newSuggestCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "suggest NAME",
		Short: "Suggest a portable replacement for a name",
		Long: `Print a portable replacement for NAME. The result always passes
'pathcheck name' (or 'pathcheck path' with --path).

Examples:
  pathcheck suggest 'Q3: results?.xlsx'
  pathcheck suggest --diff 'con.txt'
  pathcheck suggest --path 'out/aux/report?.md'`,
		Args: cobra.ExactArgs(1),
		RunE: runSuggest,
	}
	c.Flags().Bool(extension.FlagPath, false, "Treat NAME as a path and sanitise each component")
	c.Flags().Bool(extension.FlagDiff, false, "Show what changed")
	return c
}

func runSuggest(c *cobra.Command, args []string) error {
	asPath, _ := c.Flags().GetBool(extension.FlagPath)
	showDiff, _ := c.Flags().GetBool(extension.FlagDiff)
	input := args[0]

	s := sanitize.Name(input)
	if asPath {
		s = sanitize.Path(input)
	}
	result := format.Suggestion{Input: input, Suggestion: s, Changed: s != input}

	log.Event("suggest:suggest", "suggest").
		Input(input).
		Detail("suggestion", s).
		Detail("path", asPath).
		Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(result)
	}
	format.Suggest(cmd.Out(), result, showDiff, cmd.Colour())
	return nil
}
