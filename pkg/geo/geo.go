// Package geo is the thin geocoding collaborator: it turns a trip's
// free-text location into coordinates through the OpenCage API. The core
// never depends on it; callers deduplicate locations before asking.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.opencagedata.com/geocode/v1/json"

// ErrNoAPIKey is returned when the client has no key configured.
var ErrNoAPIKey = errors.New("geo: opencage api key not configured")

// Coordinates is the zero-or-one answer for a location query.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Client calls the OpenCage forward-geocoding endpoint.
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a Client using the given API key.
func New(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type response struct {
	Results []struct {
		Geometry Coordinates `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves a free-text location to its best-match coordinates. A
// location the service does not know yields (nil, nil), not an error.
func (c *Client) Geocode(ctx context.Context, location string) (*Coordinates, error) {
	if c.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}

	q := url.Values{}
	q.Set("q", location)
	q.Set("key", c.APIKey)
	q.Set("language", "en")
	q.Set("limit", "1")
	q.Set("no_annotations", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geo: build request: %w", err)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geo: geocode %q: %w", location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geo: geocode %q: unexpected status %s", location, resp.Status)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("geo: decode response: %w", err)
	}
	if len(body.Results) == 0 {
		return nil, nil
	}
	coords := body.Results[0].Geometry
	return &coords, nil
}
