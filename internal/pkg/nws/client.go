// Package nws is a minimal read-only client for the National Weather
// Service API (api.weather.gov).
package nws

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kestrelworks/kestrel/pkg/utils/json"
)

const (
	// DefaultBaseURL is the public NWS API endpoint.
	DefaultBaseURL = "https://api.weather.gov"

	// userAgent identifies this application to the NWS, which requires a
	// User-Agent on every request.
	userAgent = "weather-app/1.0"

	defaultTimeout = 10 * time.Second
)

// Client issues GET requests against the NWS API.
type Client struct {
	baseURL string
	hc      *http.Client
}

// NewClient creates a client for the given base URL. An empty baseURL
// selects the public api.weather.gov endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: defaultTimeout},
	}
}

// Points resolves a coordinate to its forecast grid and station listing.
func (c *Client) Points(ctx context.Context, lat, lon float64) (*Points, error) {
	var out Points
	url := fmt.Sprintf("%s/points/%.4f,%.4f", c.baseURL, lat, lon)
	if err := c.get(ctx, url, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Forecast fetches a gridpoint forecast. The URL comes from a prior
// Points response and is followed verbatim.
func (c *Client) Forecast(ctx context.Context, url string) (*Forecast, error) {
	var out Forecast
	if err := c.get(ctx, url, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stations fetches the observation stations for a gridpoint. The URL
// comes from a prior Points response.
func (c *Client) Stations(ctx context.Context, url string) (*StationCollection, error) {
	var out StationCollection
	if err := c.get(ctx, url, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LatestObservation fetches the most recent observation for a station.
// stationURL is the station's self link from a Stations response.
func (c *Client) LatestObservation(ctx context.Context, stationURL string) (*Observation, error) {
	var out Observation
	if err := c.get(ctx, stationURL+"/observations/latest", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActiveAlerts fetches the active alerts covering a coordinate.
func (c *Client) ActiveAlerts(ctx context.Context, lat, lon float64) (*AlertCollection, error) {
	var out AlertCollection
	url := fmt.Sprintf("%s/alerts/active?point=%.4f,%.4f", c.baseURL, lat, lon)
	if err := c.get(ctx, url, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, url string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build NWS request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/geo+json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("NWS request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("NWS request %s returned status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read NWS response: %w", err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse NWS response: %w", err)
	}
	return nil
}
