// Package weather formats NWS data into the text reports the weather tools
// return. Every method yields a string: upstream failures are folded into
// human-readable failure messages so they can be handed straight to a model.
package weather

import (
	"context"
	"fmt"
	"strings"

	"github.com/kestrelworks/kestrel/internal/pkg/gazetteer"
	"github.com/kestrelworks/kestrel/internal/pkg/nws"
)

const (
	fullForecastPeriods  = 5
	briefForecastPeriods = 3
	maxAlerts            = 5

	detailLimit      = 150
	descriptionLimit = 200
)

// Service renders weather reports from the NWS API.
type Service struct {
	client *nws.Client
}

// NewService creates a Service backed by the given NWS client.
func NewService(client *nws.Client) *Service {
	return &Service{client: client}
}

// Forecast returns a detailed forecast report for a coordinate: the
// responsible weather office, the grid reference, and the leading
// forecast periods with truncated detail text.
func (s *Service) Forecast(ctx context.Context, lat, lon float64, locationName string) string {
	points, err := s.client.Points(ctx, lat, lon)
	if err != nil {
		return fmt.Sprintf("Error fetching weather data: %v", err)
	}
	if points.Properties.Forecast == "" {
		return "Error parsing weather data: missing forecast URL"
	}

	forecast, err := s.client.Forecast(ctx, points.Properties.Forecast)
	if err != nil {
		return fmt.Sprintf("Error fetching weather data: %v", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Weather Forecast for %s\n", locationName)
	fmt.Fprintf(&b, "Weather Office: %s, Grid: (%d, %d)\n\n",
		points.Properties.GridID, points.Properties.GridX, points.Properties.GridY)

	for _, p := range leading(forecast.Properties.Periods, fullForecastPeriods) {
		fmt.Fprintf(&b, "%s: %d°%s\n", p.Name, p.Temperature, p.TemperatureUnit)
		fmt.Fprintf(&b, "  Conditions: %s\n", p.ShortForecast)
		fmt.Fprintf(&b, "  Details: %s\n\n", truncate(p.DetailedForecast, detailLimit))
	}

	return b.String()
}

// BriefForecast returns a compact three-period forecast for a named city.
// Unknown cities yield the gazetteer's failure message.
func (s *Service) BriefForecast(ctx context.Context, cityName string) string {
	name, coords, ok := gazetteer.Lookup(cityName)
	if !ok {
		return gazetteer.NotFoundMessage(cityName)
	}

	points, err := s.client.Points(ctx, coords.Latitude, coords.Longitude)
	if err != nil || points.Properties.Forecast == "" {
		return fmt.Sprintf("Unable to fetch forecast data for %s.", name)
	}

	forecast, err := s.client.Forecast(ctx, points.Properties.Forecast)
	if err != nil {
		return fmt.Sprintf("Unable to fetch detailed forecast for %s.", name)
	}

	rows := make([]string, 0, briefForecastPeriods)
	for _, p := range leading(forecast.Properties.Periods, briefForecastPeriods) {
		rows = append(rows, fmt.Sprintf("  %s: %d°%s - %s", p.Name, p.Temperature, p.TemperatureUnit, p.ShortForecast))
	}

	return fmt.Sprintf("%s Weather Forecast:\n%s", name, strings.Join(rows, "\n"))
}

// CurrentConditions returns the latest observation from the station
// nearest to the coordinate.
func (s *Service) CurrentConditions(ctx context.Context, lat, lon float64, locationName string) string {
	points, err := s.client.Points(ctx, lat, lon)
	if err != nil {
		return fmt.Sprintf("Error getting current conditions: %v", err)
	}

	stations, err := s.client.Stations(ctx, points.Properties.ObservationStations)
	if err != nil {
		return fmt.Sprintf("Error getting current conditions: %v", err)
	}
	if len(stations.Features) == 0 {
		return fmt.Sprintf("No observation stations found for %s", locationName)
	}

	station := stations.Features[0]
	obs, err := s.client.LatestObservation(ctx, station.ID)
	if err != nil {
		return fmt.Sprintf("Error getting current conditions: %v", err)
	}

	props := obs.Properties

	var b strings.Builder
	fmt.Fprintf(&b, "Current Conditions for %s\n", locationName)
	fmt.Fprintf(&b, "Station: %s\n", station.Properties.Name)

	timestamp := props.Timestamp
	if timestamp == "" {
		timestamp = "N/A"
	}
	fmt.Fprintf(&b, "Time: %s\n", timestamp)

	if props.Temperature.Value != nil {
		tempC := *props.Temperature.Value
		tempF := tempC*9/5 + 32
		fmt.Fprintf(&b, "Temperature: %.1f°F (%.1f°C)\n", tempF, tempC)
	}
	if props.TextDescription != "" {
		fmt.Fprintf(&b, "Conditions: %s\n", props.TextDescription)
	}
	if props.WindSpeed.Value != nil {
		fmt.Fprintf(&b, "Wind Speed: %.1f mph\n", *props.WindSpeed.Value*2.237)
	}
	if props.WindDirection.Value != nil {
		fmt.Fprintf(&b, "Wind Direction: %.0f°\n", *props.WindDirection.Value)
	}
	if props.RelativeHumidity.Value != nil {
		fmt.Fprintf(&b, "Humidity: %.1f%%\n", *props.RelativeHumidity.Value)
	}

	return b.String()
}

// Alerts returns the active alerts covering a coordinate. Zero active
// alerts is a successful, sentinel result — not a failure.
func (s *Service) Alerts(ctx context.Context, lat, lon float64, locationName string) string {
	alerts, err := s.client.ActiveAlerts(ctx, lat, lon)
	if err != nil {
		return fmt.Sprintf("Error getting weather alerts: %v", err)
	}

	if len(alerts.Features) == 0 {
		return fmt.Sprintf("No active weather alerts for %s", locationName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Active Weather Alerts for %s\n", locationName)
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	for _, alert := range leading(alerts.Features, maxAlerts) {
		props := alert.Properties
		fmt.Fprintf(&b, "Alert: %s\n", props.Event)
		fmt.Fprintf(&b, "Severity: %s\n", props.Severity)
		fmt.Fprintf(&b, "Urgency: %s\n", props.Urgency)
		fmt.Fprintf(&b, "Areas: %s\n", leadingAreas(props.AreaDesc, 3))

		if props.Headline != "" {
			fmt.Fprintf(&b, "Headline: %s\n", props.Headline)
		}
		if props.Description != "" {
			fmt.Fprintf(&b, "Description: %s\n", truncate(props.Description, descriptionLimit))
		}

		b.WriteString("\n" + strings.Repeat("-", 30) + "\n\n")
	}

	return b.String()
}

// CityWeather resolves a city through the gazetteer and returns its full
// forecast report.
func (s *Service) CityWeather(ctx context.Context, cityName string) string {
	name, coords, ok := gazetteer.Lookup(cityName)
	if !ok {
		return gazetteer.NotFoundMessage(cityName)
	}
	return s.Forecast(ctx, coords.Latitude, coords.Longitude, name)
}

func leading[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// truncate bounds descriptive text. The ellipsis is always appended,
// even when nothing was cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) > limit {
		s = string(runes[:limit])
	}
	return s + "..."
}

func leadingAreas(areaDesc string, n int) string {
	parts := strings.Split(areaDesc, ";")
	if len(parts) > n {
		parts = parts[:n]
	}
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
