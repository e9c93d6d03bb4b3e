package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"github.com/kestrelworks/kestrel/pkg/utils/json"
)

// cityFacts is tool-local data; the coordinates live in the gazetteer.
var cityFacts = map[string]string{
	"New York":     "Population: ~8.3M, Known for: Times Square, Statue of Liberty",
	"Los Angeles":  "Population: ~3.9M, Known for: Hollywood, Beaches",
	"Chicago":      "Population: ~2.7M, Known for: Deep dish pizza, Architecture",
	"Houston":      "Population: ~2.3M, Known for: Space Center, Oil industry",
	"Phoenix":      "Population: ~1.6M, Known for: Desert, Sunshine",
	"Philadelphia": "Population: ~1.6M, Known for: Liberty Bell, Cheesesteaks",
	"San Antonio":  "Population: ~1.5M, Known for: The Alamo, River Walk",
	"San Diego":    "Population: ~1.4M, Known for: Zoo, Perfect weather",
	"Dallas":       "Population: ~1.3M, Known for: Cowboys, BBQ",
	"Denver":       "Population: ~715K, Known for: Mountains, Mile high city",
}

type cityInfoArgs struct {
	CityName string `json:"city_name"`
}

// NewCityInfo returns the city facts lookup tool.
func NewCityInfo() tool.InvokableTool {
	info := &schema.ToolInfo{
		Name: "get_city_info",
		Desc: "Get basic information about major US cities.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"city_name": {
				Type:     schema.String,
				Desc:     "Name of the US city",
				Required: true,
			},
		}),
	}

	return NewTool(info, func(ctx context.Context, argumentsJSON string) (string, error) {
		var args cityInfoArgs
		if err := json.UnmarshalString(argumentsJSON, &args); err != nil {
			return fmt.Sprintf("Error: invalid arguments for get_city_info: %v", err), nil
		}

		for name, facts := range cityFacts {
			if strings.EqualFold(name, strings.TrimSpace(args.CityName)) {
				return fmt.Sprintf("%s: %s", name, facts), nil
			}
		}

		names := make([]string, 0, len(cityFacts))
		for name := range cityFacts {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Sprintf("City '%s' not found. Available cities: %s",
			args.CityName, strings.Join(names, ", ")), nil
	})
}
