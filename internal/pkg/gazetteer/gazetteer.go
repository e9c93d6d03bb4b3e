// Package gazetteer holds the fixed table of US cities the weather tools
// understand. The table is shared by every tool that resolves a city name,
// so the valid set is identical everywhere it is reported.
package gazetteer

import (
	"fmt"
	"sort"
	"strings"
)

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

var cities = map[string]Coordinates{
	"New York":      {40.7128, -74.0060},
	"Los Angeles":   {34.0522, -118.2437},
	"Chicago":       {41.8781, -87.6298},
	"Houston":       {29.7604, -95.3698},
	"Phoenix":       {33.4484, -112.0740},
	"Philadelphia":  {39.9526, -75.1652},
	"San Antonio":   {29.4241, -98.4936},
	"San Diego":     {32.7157, -117.1611},
	"Dallas":        {32.7767, -96.7970},
	"Denver":        {39.7392, -104.9903},
	"San Francisco": {37.7749, -122.4194},
	"Miami":         {25.7617, -80.1918},
	"Atlanta":       {33.7490, -84.3880},
	"Boston":        {42.3601, -71.0589},
	"Seattle":       {47.6062, -122.3321},
}

// byLower indexes the canonical names case-insensitively.
var byLower = func() map[string]string {
	m := make(map[string]string, len(cities))
	for name := range cities {
		m[strings.ToLower(name)] = name
	}
	return m
}()

// Lookup resolves a city name case-insensitively. It returns the canonical
// display name and coordinates, or ok=false when the city is unknown.
func Lookup(name string) (canonical string, coords Coordinates, ok bool) {
	canonical, ok = byLower[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", Coordinates{}, false
	}
	return canonical, cities[canonical], true
}

// Names returns every known city name, sorted for stable display.
func Names() []string {
	names := make([]string, 0, len(cities))
	for name := range cities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NotFoundMessage is the failure string returned for an unknown city.
// It lists the full valid set so the model can correct itself.
func NotFoundMessage(name string) string {
	return fmt.Sprintf("City '%s' not found. Available cities: %s", name, strings.Join(Names(), ", "))
}
