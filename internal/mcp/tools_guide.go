// tools_guide.go implements the MCP tool for accessing help content.
//
// The guide tool gives LLMs the portability rules and command reference,
// so they can explain a rejection without external lookups.

package mcp

import (
	"context"
	"fmt"

	"github.com/jpl-au/pathcheck/guide"
	"github.com/jpl-au/pathcheck/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// getGuide handles pathcheck_guide tool calls.
func getGuide(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := getString(req, "topic", "")

	content, err := guide.Get(topic)

	log.Event("mcp:pathcheck_guide", "guide").Detail("topic", topic).Write(err)

	if err != nil {
		// If topic not found, return list of available topics
		topics, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return jsonResult(map[string]any{
			"error":            err.Error(),
			"available_topics": topics,
		})
	}

	return mcp.NewToolResultText(content), nil
}
