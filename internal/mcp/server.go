// Package mcp implements the Model Context Protocol server, exposing
// pathcheck's checks to LLMs. An assistant can ask whether a file name it is
// about to create is portable, and get a suggested replacement when it is not.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/pathcheck/extension"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio.
// Uses stdio transport for compatibility with Claude Desktop and other MCP clients.
func Serve(extCtx extension.Context) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := NewServer(extCtx)

	slog.Info("pathcheck MCP server ready", "version", Version, "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// NewServer builds the MCP server with the built-in tools and every tool
// contributed by registered extensions.
func NewServer(extCtx extension.Context) *server.MCPServer {
	s := server.NewMCPServer(
		"pathcheck",
		Version,
		server.WithToolCapabilities(true),
	)

	registerTools(s)

	for _, t := range extension.Tools() {
		h := t.Handler
		s.AddTool(t.Tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return h(ctx, extCtx, req)
		})
		slog.Debug("registered extension tool", "tool", t.Tool.Name)
	}
	return s
}

// registerTools exposes the checks as MCP tools for LLM invocation.
// Rejections are returned as ordinary results carrying a verdict, not as
// tool errors: a rejected name is a successful check.
func registerTools(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool("pathcheck_filename",
			mcp.WithDescription("Check that a single file or folder name (no separators) is valid on all major filesystems and operating systems"),
			mcp.WithString("name", mcp.Required(), mcp.Description("File or folder name, e.g. 'report.txt'")),
		),
		checkFilename,
	)

	s.AddTool(
		mcp.NewTool("pathcheck_path",
			mcp.WithDescription("Check that a relative or absolute path is portable: total length and every component"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Path to check, e.g. 'out/2024/report.txt'")),
		),
		checkPath,
	)

	s.AddTool(
		mcp.NewTool("pathcheck_readable",
			mcp.WithDescription("Check that a path names an existing, readable file (not a directory)"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Filesystem path")),
		),
		checkReadable,
	)

	s.AddTool(
		mcp.NewTool("pathcheck_outdir",
			mcp.WithDescription("Check that a path names a directory the current user can write to"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Directory path")),
		),
		checkOutputDir,
	)

	s.AddTool(
		mcp.NewTool("pathcheck_suggest",
			mcp.WithDescription("Suggest a portable replacement for a name or path"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Name or path to sanitise")),
			mcp.WithBoolean("path", mcp.Description("Treat input as a path and sanitise each component")),
		),
		suggest,
	)

	s.AddTool(
		mcp.NewTool("pathcheck_guide",
			mcp.WithDescription("Get help/guide content for pathcheck rules and commands"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g., 'rules', 'scan') or empty for index")),
		),
		getGuide,
	)
}
