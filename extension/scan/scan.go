// Package scan reports non-portable names across a directory tree.
// Registers commands: scan. Provides MCP tool: pathcheck_scan.
package scan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jpl-au/pathcheck/cmd"
	"github.com/jpl-au/pathcheck/extension"
	"github.com/jpl-au/pathcheck/internal/config"
	"github.com/jpl-au/pathcheck/internal/format"
	"github.com/jpl-au/pathcheck/internal/log"
	"github.com/jpl-au/pathcheck/internal/scan"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// ErrNotPortable is returned when a scan finds at least one bad entry.
var ErrNotPortable = errors.New("tree contains non-portable names")

// Extension implements the scan extension.
type Extension struct {
	cfg *config.Config
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "scan".
func (e *Extension) Name() string { return "scan" }

// Init picks up configured scan defaults.
func (e *Extension) Init(ctx extension.Context) error {
	e.cfg = ctx.Config()
	return nil
}

// Commands returns the scan command.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{e.newScanCmd()}
}

// MCPTools returns the pathcheck_scan tool.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{{
		Tool: mcp.NewTool("pathcheck_scan",
			mcp.WithDescription("Walk a directory tree and report every entry whose name or relative path is not portable"),
			mcp.WithString("root", mcp.Required(), mcp.Description("Directory to scan")),
			mcp.WithBoolean("hidden", mcp.Description("Include hidden files/directories")),
			mcp.WithArray("exclude", mcp.Description("Glob patterns to skip, relative to root (supports **)"), mcp.WithStringItems()),
		),
		Handler: e.mcpScan,
	}}
}

func (e *Extension) newScanCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "scan DIR",
		Short: "Report non-portable names in a directory tree",
		Long: `Walk DIR and report every file or directory whose name is not portable,
and every relative path longer than the path limit.

Hidden entries are skipped unless --hidden is given (or scan.hidden is set).
--exclude may be repeated and adds to scan.exclude from config.

Examples:
  pathcheck scan ./photos
  pathcheck scan --hidden --exclude 'node_modules/**' .
  pathcheck scan -o json .`,
		Args: cobra.ExactArgs(1),
		RunE: e.runScan,
	}
	c.Flags().Bool(extension.FlagHidden, false, "Include hidden files/directories")
	c.Flags().StringArray(extension.FlagExclude, nil, "Glob pattern to skip (repeatable)")
	c.Flags().Bool(extension.FlagNoProgress, false, "Do not show progress on stderr")
	return c
}

// options merges flags over configured defaults.
func (e *Extension) options(c *cobra.Command) scan.Options {
	var opts scan.Options
	if e.cfg != nil {
		opts.Hidden = e.cfg.ScanHidden()
		opts.Exclude = append(opts.Exclude, e.cfg.Scan.Exclude...)
	}
	if c.Flags().Changed(extension.FlagHidden) {
		opts.Hidden, _ = c.Flags().GetBool(extension.FlagHidden)
	}
	exclude, _ := c.Flags().GetStringArray(extension.FlagExclude)
	opts.Exclude = append(opts.Exclude, exclude...)

	noProgress, _ := c.Flags().GetBool(extension.FlagNoProgress)
	opts.Progress = cmd.Progress() && !noProgress
	return opts
}

func (e *Extension) runScan(c *cobra.Command, args []string) error {
	root := args[0]
	opts := e.options(c)

	res, err := scan.Run(c.Context(), root, opts)
	l := log.Event("scan:scan", "scan").
		Input(root).
		Detail("checked", res.Checked).
		Detail("findings", len(res.Findings))
	if err != nil {
		l.Write(err)
		return cmd.PrintJSONError(fmt.Errorf("scan %s: %w", root, err))
	}
	if !res.Portable() {
		l.Write(ErrNotPortable)
	} else {
		l.Write(nil)
	}

	if cmd.JSON() {
		if err := cmd.PrintJSON(res); err != nil {
			return err
		}
	} else if !cmd.Quiet() || !res.Portable() {
		format.Findings(cmd.Out(), res)
	}

	if !res.Portable() {
		c.SilenceErrors = true
		return fmt.Errorf("%w: %d entries", ErrNotPortable, len(res.Findings))
	}
	return nil
}

// mcpScan handles pathcheck_scan tool calls.
func (e *Extension) mcpScan(ctx context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := req.RequireString("root")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cfg := extCtx.Config()
	opts := scan.Options{
		Hidden:  req.GetBool("hidden", cfg.ScanHidden()),
		Exclude: append(append([]string(nil), cfg.Scan.Exclude...), req.GetStringSlice("exclude", nil)...),
	}

	res, err := scan.Run(ctx, root, opts)
	log.Event("mcp:pathcheck_scan", "scan").
		Input(root).
		Detail("checked", res.Checked).
		Detail("findings", len(res.Findings)).
		Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
