// serve.go implements the "pathcheck serve" command for MCP server operation.
//
// Unlike other commands that run and exit, serve blocks handling MCP
// requests over stdio until the client disconnects.

package core

import (
	"github.com/jpl-au/pathcheck/cmd"
	"github.com/jpl-au/pathcheck/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Claude Desktop / MCP client config:
  {"mcpServers": {"pathcheck": {"command": "pathcheck", "args": ["serve"]}}}

See 'pathcheck guide mcp' for the tool list.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	extCtx, err := cmd.ExtContext()
	if err != nil {
		return err
	}
	return mcp.Serve(extCtx)
}
