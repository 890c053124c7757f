// Package check provides the per-input portability and filesystem checks.
// Registers commands: name, path, readable, outdir.
package check

import (
	"log/slog"

	"github.com/jpl-au/pathcheck/cmd"
	"github.com/jpl-au/pathcheck/extension"
	"github.com/jpl-au/pathcheck/internal/format"
	"github.com/jpl-au/pathcheck/internal/log"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the check extension.
type Extension struct{}

// Compile-time interface compliance.
var _ extension.Extension = (*Extension)(nil)

// Name returns "check".
func (e *Extension) Name() string { return "check" }

// Commands returns the name, path, readable and outdir commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newNameCmd(),
		newPathCmd(),
		newReadableCmd(),
		newOutDirCmd(),
	}
}

// MCPTools returns nil - the check tools are built into internal/mcp.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// run applies fn to every argument, logs each verdict and reports them.
// All arguments are checked even after a rejection.
func run(c *cobra.Command, action string, args []string, fn func(string) error) error {
	source := "check:" + c.Name()
	vs := make([]format.Verdict, 0, len(args))
	for _, a := range args {
		err := fn(a)
		log.Event(source, action).Input(a).Write(err)
		slog.Debug("checked", "check", action, "input", a, "accepted", err == nil)
		vs = append(vs, format.NewVerdict(action, a, err))
	}
	return cmd.Report(c, vs)
}
