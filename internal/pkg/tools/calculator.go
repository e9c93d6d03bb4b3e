package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"github.com/kestrelworks/kestrel/internal/pkg/calc"
	"github.com/kestrelworks/kestrel/pkg/utils/json"
)

type calculateArgs struct {
	A         float64 `json:"a"`
	B         float64 `json:"b"`
	Operation string  `json:"operation"`
	Numbers   string  `json:"numbers"`
}

// NewCalculator returns the in-process arithmetic tool.
func NewCalculator() tool.InvokableTool {
	info := &schema.ToolInfo{
		Name: "calculate",
		Desc: "Perform mathematical calculations. Operations: add, subtract, multiply, divide, power, average. For average, pass the values as a comma-separated list in 'numbers'.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"a": {
				Type: schema.Number,
				Desc: "First operand",
			},
			"b": {
				Type: schema.Number,
				Desc: "Second operand",
			},
			"operation": {
				Type:     schema.String,
				Desc:     "Operation to perform: add, subtract, multiply, divide, power, average",
				Required: true,
			},
			"numbers": {
				Type: schema.String,
				Desc: "Comma-separated numbers for the average operation, like '1,2,3,4'",
			},
		}),
	}

	return NewTool(info, func(ctx context.Context, argumentsJSON string) (string, error) {
		var args calculateArgs
		if err := json.UnmarshalString(argumentsJSON, &args); err != nil {
			return fmt.Sprintf("Error: invalid arguments for calculate: %v", err), nil
		}
		if strings.EqualFold(strings.TrimSpace(args.Operation), "average") {
			numbers := args.Numbers
			if numbers == "" {
				numbers = fmt.Sprintf("%v,%v", args.A, args.B)
			}
			return calc.Average(numbers), nil
		}
		return calc.Apply(args.A, args.B, args.Operation), nil
	})
}
