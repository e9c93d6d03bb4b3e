package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelworks/kestrel/internal/pkg/gazetteer"
	"github.com/kestrelworks/kestrel/internal/pkg/nws"
)

// fixtureServer serves a canned NWS API covering the point → grid →
// forecast/stations/observation chain for any coordinate.
func fixtureServer(t *testing.T, alerts string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	var srv *httptest.Server

	mux.HandleFunc("/points/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"properties":{
			"forecast":"%[1]s/gridpoints/BOU/62,61/forecast",
			"gridId":"BOU","gridX":62,"gridY":61,
			"observationStations":"%[1]s/gridpoints/BOU/62,61/stations"}}`, srv.URL)
	})
	mux.HandleFunc("/gridpoints/BOU/62,61/forecast", func(w http.ResponseWriter, r *http.Request) {
		long := strings.Repeat("x", 200)
		fmt.Fprintf(w, `{"properties":{"periods":[
			{"name":"Today","temperature":72,"temperatureUnit":"F","shortForecast":"Sunny","detailedForecast":"%s"},
			{"name":"Tonight","temperature":55,"temperatureUnit":"F","shortForecast":"Clear","detailedForecast":"Clear."},
			{"name":"Tuesday","temperature":80,"temperatureUnit":"F","shortForecast":"Hot","detailedForecast":"Hot."},
			{"name":"Tuesday Night","temperature":60,"temperatureUnit":"F","shortForecast":"Mild","detailedForecast":"Mild."},
			{"name":"Wednesday","temperature":78,"temperatureUnit":"F","shortForecast":"Breezy","detailedForecast":"Breezy."},
			{"name":"Wednesday Night","temperature":58,"temperatureUnit":"F","shortForecast":"Cool","detailedForecast":"Cool."}
		]}}`, long)
	})
	mux.HandleFunc("/gridpoints/BOU/62,61/stations", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"features":[{"id":"%s/stations/KBDU","properties":{"name":"Boulder Municipal Airport"}}]}`, srv.URL)
	})
	mux.HandleFunc("/stations/KBDU/observations/latest", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"properties":{"timestamp":"2026-08-23T12:00:00+00:00","textDescription":"Partly Cloudy",
			"temperature":{"value":20.0},"windSpeed":{"value":4.5},"windDirection":{"value":270},"relativeHumidity":{"value":40.5}}}`)
	})
	mux.HandleFunc("/alerts/active", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, alerts)
	})

	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newFixtureService(t *testing.T, alerts string) *Service {
	srv := fixtureServer(t, alerts)
	return NewService(nws.NewClient(srv.URL))
}

func TestForecastFormatsLeadingPeriods(t *testing.T) {
	s := newFixtureService(t, `{"features":[]}`)

	got := s.Forecast(context.Background(), 39.7392, -104.9903, "Denver")
	assert.Contains(t, got, "Weather Forecast for Denver")
	assert.Contains(t, got, "Weather Office: BOU, Grid: (62, 61)")
	assert.Contains(t, got, "Today: 72°F")
	assert.Contains(t, got, "Conditions: Sunny")
	// Detail text is truncated at 150 runes.
	assert.Contains(t, got, strings.Repeat("x", 150)+"...")
	// The ellipsis is appended even when the detail text is short.
	assert.Contains(t, got, "  Details: Clear....")
	// Five periods shown, the sixth dropped.
	assert.Contains(t, got, "Wednesday: 78°F")
	assert.NotContains(t, got, "Wednesday Night")
}

func TestBriefForecast(t *testing.T) {
	s := newFixtureService(t, `{"features":[]}`)

	got := s.BriefForecast(context.Background(), "denver")
	assert.True(t, strings.HasPrefix(got, "Denver Weather Forecast:\n"))
	assert.Contains(t, got, "  Today: 72°F - Sunny")
	assert.Contains(t, got, "  Tuesday: 80°F - Hot")
	// Three periods only.
	assert.NotContains(t, got, "Tuesday Night")
}

func TestBriefForecastUnknownCityListsValidSet(t *testing.T) {
	s := newFixtureService(t, `{"features":[]}`)

	got := s.BriefForecast(context.Background(), "Nowhereville")
	assert.Equal(t, gazetteer.NotFoundMessage("Nowhereville"), got)
}

func TestCurrentConditions(t *testing.T) {
	s := newFixtureService(t, `{"features":[]}`)

	got := s.CurrentConditions(context.Background(), 39.7392, -104.9903, "Denver")
	assert.Contains(t, got, "Current Conditions for Denver")
	assert.Contains(t, got, "Station: Boulder Municipal Airport")
	assert.Contains(t, got, "Temperature: 68.0°F (20.0°C)")
	assert.Contains(t, got, "Wind Speed: 10.1 mph")
	assert.Contains(t, got, "Humidity: 40.5%")
}

func TestAlertsSentinelWhenNoneActive(t *testing.T) {
	s := newFixtureService(t, `{"features":[]}`)

	got := s.Alerts(context.Background(), 39.7392, -104.9903, "Denver")
	assert.Equal(t, "No active weather alerts for Denver", got)
}

func TestAlertsFormatting(t *testing.T) {
	s := newFixtureService(t, `{"features":[{"properties":{
		"event":"Heat Advisory","severity":"Moderate","urgency":"Expected",
		"areaDesc":"Denver; Boulder; Jefferson; Adams",
		"headline":"Heat Advisory until 8 PM",
		"description":"Hot conditions expected."}}]}`)

	got := s.Alerts(context.Background(), 39.7392, -104.9903, "Denver")
	assert.Contains(t, got, "Active Weather Alerts for Denver")
	assert.Contains(t, got, "Alert: Heat Advisory")
	assert.Contains(t, got, "Severity: Moderate")
	assert.Contains(t, got, "Areas: Denver, Boulder, Jefferson")
	assert.NotContains(t, got, "Adams")
	assert.Contains(t, got, "Headline: Heat Advisory until 8 PM")
	assert.Contains(t, got, "Description: Hot conditions expected....")
}

func TestCityWeatherUnknownCity(t *testing.T) {
	s := newFixtureService(t, `{"features":[]}`)

	got := s.CityWeather(context.Background(), "Atlantis")
	assert.Contains(t, got, "City 'Atlantis' not found")
}

func TestForecastUpstreamFailureIsString(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	s := NewService(nws.NewClient(srv.URL))
	got := s.Forecast(context.Background(), 1, 2, "Denver")
	require.True(t, strings.HasPrefix(got, "Error fetching weather data:"), got)
}
