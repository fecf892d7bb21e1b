package tool

import (
	"context"
	"fmt"

	contractx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/contract"
)

// Catalog tool names. The planner lists guidance.generate and
// hotline.lookup as advisory metadata in its plan; the worker calls those
// collaborators directly rather than dispatching through the catalog.
const (
	ToolGuidanceGenerate = "guidance.generate"
	ToolHotlineLookup    = "hotline.lookup"
	ToolMathEvaluate     = "math.evaluate"
	ToolGenericSearch    = "search.generic"
)

type Executor func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error)

// NewExecutor returns the catalog executor. Unknown tools resolve to an
// unavailable result instead of an error.
func NewExecutor(hotlines contractx.HotlineDirectory) Executor {
	return func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error) {
		switch tool {
		case ToolMathEvaluate:
			return executeMathTool(tool, args)
		case ToolGenericSearch:
			return executeSearchTool(tool, args)
		case ToolHotlineLookup:
			return executeHotlineTool(tool, hotlines, args)
		default:
			return contractx.ToolResult{
				Tool:  tool,
				Error: fmt.Sprintf("tool=%s is unavailable", tool),
			}, nil
		}
	}
}

func executeHotlineTool(tool string, hotlines contractx.HotlineDirectory, args map[string]any) (contractx.ToolResult, error) {
	region, _ := args["region"].(string)
	return contractx.ToolResult{
		Tool:   tool,
		Result: hotlines.Lookup(region),
	}, nil
}
