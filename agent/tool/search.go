package tool

import (
	"fmt"
	"strings"

	contractx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/contract"
)

// SearchResult is one entry from the stubbed generic search tool.
type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

func executeSearchTool(tool string, args map[string]any) (contractx.ToolResult, error) {
	rawQuery, ok := args["query"]
	if !ok {
		return contractx.ToolResult{Tool: tool, Error: "query is required"}, nil
	}
	query, ok := rawQuery.(string)
	if !ok || strings.TrimSpace(query) == "" {
		return contractx.ToolResult{Tool: tool, Error: "query must be a non-empty string"}, nil
	}

	return contractx.ToolResult{
		Tool: tool,
		Result: []SearchResult{
			{
				Title:   "Generic safety guidance",
				Snippet: fmt.Sprintf("High-level safety information for query: %s", query),
				Link:    "https://example.com/search",
			},
		},
	}, nil
}
