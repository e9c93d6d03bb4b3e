package tools

import (
	"context"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
)

// Func is a tool implementation: JSON-encoded arguments in, text out.
// Domain failures belong in the returned string, not the error — the
// error is reserved for faults the registry should report itself.
type Func func(ctx context.Context, argumentsJSON string) (string, error)

// funcTool adapts a static spec plus a function into an eino tool.
type funcTool struct {
	info *schema.ToolInfo
	fn   Func
}

// NewTool pairs a tool's declared info with its implementation.
func NewTool(info *schema.ToolInfo, fn Func) tool.InvokableTool {
	return &funcTool{info: info, fn: fn}
}

func (t *funcTool) Info(ctx context.Context) (*schema.ToolInfo, error) {
	return t.info, nil
}

func (t *funcTool) InvokableRun(ctx context.Context, argumentsJSON string, _ ...tool.Option) (string, error) {
	return t.fn(ctx, argumentsJSON)
}
