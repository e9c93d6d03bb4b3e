package tools

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"github.com/kestrelworks/kestrel/internal/pkg/weather"
	"github.com/kestrelworks/kestrel/pkg/utils/json"
)

type cityWeatherArgs struct {
	CityName string `json:"city_name"`
}

// NewCityWeather returns the in-process weather forecast tool, backed by
// the shared weather service.
func NewCityWeather(svc *weather.Service) tool.InvokableTool {
	info := &schema.ToolInfo{
		Name: "get_city_weather",
		Desc: "Get current weather forecast for a US city.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"city_name": {
				Type:     schema.String,
				Desc:     "Name of the US city",
				Required: true,
			},
		}),
	}

	return NewTool(info, func(ctx context.Context, argumentsJSON string) (string, error) {
		var args cityWeatherArgs
		if err := json.UnmarshalString(argumentsJSON, &args); err != nil {
			return fmt.Sprintf("Error: invalid arguments for get_city_weather: %v", err), nil
		}
		return svc.BriefForecast(ctx, args.CityName), nil
	})
}

// NewLocalTools assembles the in-process tool registry used by the basic
// chat mode: weather, arithmetic, city facts.
func NewLocalTools(ctx context.Context, svc *weather.Service) (*Registry, error) {
	registry := NewRegistry()
	for _, t := range []tool.InvokableTool{
		NewCityWeather(svc),
		NewCalculator(),
		NewCityInfo(),
	} {
		if err := registry.Register(ctx, t, "local"); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
