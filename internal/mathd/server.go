// Package mathd implements the math tool server. Tools are published
// over MCP; domain failures (divide by zero, unparseable numbers) are
// returned as ordinary text results so the calling model can read them.
package mathd

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kestrelworks/kestrel/internal/pkg/calc"
	"github.com/kestrelworks/kestrel/pkg/logger"
)

// Server publishes the arithmetic tools.
type Server struct {
	mcp *server.MCPServer
}

// NewServer builds the math tool server with its full tool registry.
func NewServer() *Server {
	s := server.NewMCPServer("Math", "0.1.0", server.WithToolCapabilities(false))

	s.AddTool(binaryTool("add", "Add two numbers together"), handleAdd)
	s.AddTool(binaryTool("subtract", "Subtract second number from first number"), handleSubtract)
	s.AddTool(binaryTool("multiply", "Multiply two numbers together"), handleMultiply)
	s.AddTool(binaryTool("divide", "Divide first number by second number"), handleDivide)

	s.AddTool(mcp.NewTool("power",
		mcp.WithDescription("Raise base to the power of exponent"),
		mcp.WithNumber("base", mcp.Required(), mcp.Description("Base value")),
		mcp.WithNumber("exponent", mcp.Required(), mcp.Description("Exponent value")),
	), handlePower)

	s.AddTool(mcp.NewTool("calculate_average",
		mcp.WithDescription("Calculate average of comma-separated numbers"),
		mcp.WithString("numbers", mcp.Required(), mcp.Description("Comma-separated numbers like '1,2,3,4'")),
	), handleAverage)

	return &Server{mcp: s}
}

// ServeStdio serves the tool registry over stdin/stdout.
func (s *Server) ServeStdio() error {
	logger.Info("[mathd] serving on stdio")
	return server.ServeStdio(s.mcp)
}

// ServeSSE serves the tool registry over HTTP at addr.
func (s *Server) ServeSSE(addr string) error {
	logger.Info("[mathd] serving on http://%s", addr)
	return server.NewSSEServer(s.mcp).Start(addr)
}

func binaryTool(name, desc string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(desc),
		mcp.WithNumber("a", mcp.Required(), mcp.Description("First number")),
		mcp.WithNumber("b", mcp.Required(), mcp.Description("Second number")),
	)
}

func operands(req mcp.CallToolRequest) (a, b float64, errResult *mcp.CallToolResult) {
	a, err := req.RequireFloat("a")
	if err != nil {
		return 0, 0, mcp.NewToolResultError(err.Error())
	}
	b, err = req.RequireFloat("b")
	if err != nil {
		return 0, 0, mcp.NewToolResultError(err.Error())
	}
	return a, b, nil
}

func handleAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, b, errResult := operands(req)
	if errResult != nil {
		return errResult, nil
	}
	result := calc.FormatNumber(a + b)
	logger.Info("[mathd] add: %s + %s = %s", calc.FormatNumber(a), calc.FormatNumber(b), result)
	return mcp.NewToolResultText(result), nil
}

func handleSubtract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, b, errResult := operands(req)
	if errResult != nil {
		return errResult, nil
	}
	result := calc.FormatNumber(a - b)
	logger.Info("[mathd] subtract: %s - %s = %s", calc.FormatNumber(a), calc.FormatNumber(b), result)
	return mcp.NewToolResultText(result), nil
}

func handleMultiply(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, b, errResult := operands(req)
	if errResult != nil {
		return errResult, nil
	}
	result := calc.FormatNumber(a * b)
	logger.Info("[mathd] multiply: %s × %s = %s", calc.FormatNumber(a), calc.FormatNumber(b), result)
	return mcp.NewToolResultText(result), nil
}

func handleDivide(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, b, errResult := operands(req)
	if errResult != nil {
		return errResult, nil
	}
	result := calc.Divide(a, b)
	logger.Info("[mathd] divide: %s ÷ %s = %s", calc.FormatNumber(a), calc.FormatNumber(b), result)
	return mcp.NewToolResultText(result), nil
}

func handlePower(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	base, err := req.RequireFloat("base")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	exponent, err := req.RequireFloat("exponent")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result := calc.Apply(base, exponent, "power")
	logger.Info("[mathd] power: %s", result)
	return mcp.NewToolResultText(result), nil
}

func handleAverage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	numbers, err := req.RequireString("numbers")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result := calc.Average(numbers)
	logger.Info("[mathd] average(%s) = %s", numbers, result)
	return mcp.NewToolResultText(result), nil
}
