// tools_suggest.go implements the MCP tool proposing portable replacements.

package mcp

import (
	"context"

	"github.com/jpl-au/pathcheck/internal/format"
	"github.com/jpl-au/pathcheck/internal/log"
	"github.com/jpl-au/pathcheck/internal/sanitize"
	"github.com/jpl-au/pathcheck/internal/validate"
	"github.com/mark3labs/mcp-go/mcp"
)

// suggestion is the pathcheck_suggest result: the verdict on the input and
// the proposed replacement.
type suggestion struct {
	format.Verdict
	Suggestion string `json:"suggestion"`
	Changed    bool   `json:"changed"`
}

// suggest handles pathcheck_suggest tool calls.
func suggest(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	asPath := getBool(req, "path", false)

	check, sanitized := "filename", sanitize.Name(input)
	verr := validate.Filename(input)
	if asPath {
		check, sanitized = "path", sanitize.Path(input)
		verr = validate.Path(input)
	}

	log.Event("mcp:pathcheck_suggest", "suggest").
		Input(input).
		Detail("suggestion", sanitized).
		Write(nil)

	return jsonResult(suggestion{
		Verdict:    format.NewVerdict(check, input, verr),
		Suggestion: sanitized,
		Changed:    sanitized != input,
	})
}
