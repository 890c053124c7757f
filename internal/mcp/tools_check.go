// tools_check.go implements the MCP tools wrapping the rule engines and
// filesystem probes.

package mcp

import (
	"context"

	"github.com/jpl-au/pathcheck/internal/format"
	"github.com/jpl-au/pathcheck/internal/log"
	"github.com/jpl-au/pathcheck/internal/probe"
	"github.com/jpl-au/pathcheck/internal/validate"
	"github.com/mark3labs/mcp-go/mcp"
)

// check runs fn on the named argument, logs it and returns the verdict.
func check(req mcp.CallToolRequest, tool, param, action string, fn func(string) error) (*mcp.CallToolResult, error) {
	input, err := req.RequireString(param)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	verr := fn(input)
	log.Event("mcp:"+tool, action).Input(input).Write(verr)

	return jsonResult(format.NewVerdict(action, input, verr))
}

func checkFilename(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return check(req, "pathcheck_filename", "name", "filename", validate.Filename)
}

func checkPath(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return check(req, "pathcheck_path", "path", "path", validate.Path)
}

func checkReadable(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return check(req, "pathcheck_readable", "path", "readable", probe.ReadableFile)
}

func checkOutputDir(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return check(req, "pathcheck_outdir", "path", "outdir", probe.OutputDir)
}
