// Package weatherd implements the weather tool server backed by the
// National Weather Service API. Like mathd, every tool result is text:
// upstream failures travel as readable strings, not protocol errors.
package weatherd

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kestrelworks/kestrel/internal/pkg/weather"
	"github.com/kestrelworks/kestrel/pkg/logger"
)

// Server publishes the weather tools.
type Server struct {
	mcp *server.MCPServer
	svc *weather.Service
}

// NewServer builds the weather tool server around the given service.
func NewServer(svc *weather.Service) *Server {
	s := &Server{
		mcp: server.NewMCPServer("Weather", "0.1.0", server.WithToolCapabilities(false)),
		svc: svc,
	}

	s.mcp.AddTool(coordinateTool("get_weather_forecast",
		"Get detailed weather forecast for a location using coordinates"), s.handleForecast)
	s.mcp.AddTool(coordinateTool("get_current_conditions",
		"Get current weather conditions for a location using coordinates"), s.handleConditions)
	s.mcp.AddTool(coordinateTool("get_weather_alerts",
		"Get active weather alerts for a location using coordinates"), s.handleAlerts)

	s.mcp.AddTool(mcp.NewTool("get_city_weather",
		mcp.WithDescription("Get weather forecast for a major US city by name"),
		mcp.WithString("city_name", mcp.Required(), mcp.Description("Name of a major US city")),
	), s.handleCityWeather)

	return s
}

// ServeStdio serves the tool registry over stdin/stdout.
func (s *Server) ServeStdio() error {
	logger.Info("[weatherd] serving on stdio")
	return server.ServeStdio(s.mcp)
}

// ServeSSE serves the tool registry over HTTP at addr.
func (s *Server) ServeSSE(addr string) error {
	logger.Info("[weatherd] serving on http://%s", addr)
	return server.NewSSEServer(s.mcp).Start(addr)
}

func coordinateTool(name, desc string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(desc),
		mcp.WithNumber("latitude", mcp.Required(), mcp.Description("Latitude of the location")),
		mcp.WithNumber("longitude", mcp.Required(), mcp.Description("Longitude of the location")),
		mcp.WithString("location_name", mcp.Description("Human-readable name for the location")),
	)
}

func coordinates(req mcp.CallToolRequest) (lat, lon float64, name string, errResult *mcp.CallToolResult) {
	lat, err := req.RequireFloat("latitude")
	if err != nil {
		return 0, 0, "", mcp.NewToolResultError(err.Error())
	}
	lon, err = req.RequireFloat("longitude")
	if err != nil {
		return 0, 0, "", mcp.NewToolResultError(err.Error())
	}
	return lat, lon, req.GetString("location_name", "Location"), nil
}

func (s *Server) handleForecast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lat, lon, name, errResult := coordinates(req)
	if errResult != nil {
		return errResult, nil
	}
	logger.Info("[weatherd] forecast for %s (%.4f, %.4f)", name, lat, lon)
	return mcp.NewToolResultText(s.svc.Forecast(ctx, lat, lon, name)), nil
}

func (s *Server) handleConditions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lat, lon, name, errResult := coordinates(req)
	if errResult != nil {
		return errResult, nil
	}
	logger.Info("[weatherd] current conditions for %s (%.4f, %.4f)", name, lat, lon)
	return mcp.NewToolResultText(s.svc.CurrentConditions(ctx, lat, lon, name)), nil
}

func (s *Server) handleAlerts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lat, lon, name, errResult := coordinates(req)
	if errResult != nil {
		return errResult, nil
	}
	logger.Info("[weatherd] alerts for %s (%.4f, %.4f)", name, lat, lon)
	return mcp.NewToolResultText(s.svc.Alerts(ctx, lat, lon, name)), nil
}

func (s *Server) handleCityWeather(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	city, err := req.RequireString("city_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	logger.Info("[weatherd] city weather for %q", city)
	return mcp.NewToolResultText(s.svc.CityWeather(ctx, city)), nil
}
